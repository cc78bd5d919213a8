package generator

import (
	"context"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/crossword/internal/validator"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func shellExec(script string, timeout time.Duration) *Exec {
	return &Exec{
		Path:    "sh",
		Args:    []string{"-c", script},
		Timeout: timeout,
		Decoder: NewJSONDecoder(validator.New()),
	}
}

func TestExecDecodesStdout(t *testing.T) {
	requireShell(t)
	g := shellExec(`printf '{"myStringUnedited":"AB","answerArrayFlat":["A","B"],"legend":{"1":"x"}}'`, 0)

	p, err := g.Generate(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, `"AB"`, string(p.MyStringUnedited))
	assert.JSONEq(t, `["A","B"]`, string(p.AnswerArrayFlat))
}

func TestExecReportsLastStderrLine(t *testing.T) {
	requireShell(t)
	g := shellExec(`echo 'Traceback (most recent call last):' >&2; echo 'ValueError: boom' >&2; exit 1`, 0)

	_, err := g.Generate(context.Background())
	require.EqualError(t, err, "boom")
}

func TestExecPythonExceptionMessage(t *testing.T) {
	if _, err := exec.LookPath("python3"); err != nil {
		t.Skip("python3 not available")
	}
	g := &Exec{
		Path:    "python3",
		Args:    []string{"-c", "raise ValueError('boom')"},
		Decoder: NewJSONDecoder(validator.New()),
	}

	_, err := g.Generate(context.Background())
	require.EqualError(t, err, "boom")
}

func TestExceptionMessage(t *testing.T) {
	tests := map[string]string{
		"ValueError: boom":                     "boom",
		"json.decoder.JSONDecodeError: bad: x": "bad: x",
		"KeyError: 'legend'":                   "'legend'",
		"SystemExit: 2":                        "2",
		"RuntimeError: ":                       "RuntimeError: ",
		"grid too small":                       "grid too small",
		"error: generator crashed: ValueError": "error: generator crashed: ValueError",
	}
	for in, want := range tests {
		assert.Equal(t, want, exceptionMessage(in), in)
	}
}

func TestExecExitWithoutStderr(t *testing.T) {
	requireShell(t)
	_, err := shellExec(`exit 3`, 0).Generate(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exit status 3")
}

func TestExecTimeout(t *testing.T) {
	requireShell(t)
	_, err := shellExec(`exec sleep 5`, 50*time.Millisecond).Generate(context.Background())
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNewExecSplitsCommand(t *testing.T) {
	g, err := NewExec("python3 crossWord.py --json", "/srv/gen", time.Second, nil)
	require.NoError(t, err)
	assert.Equal(t, "python3", g.Path)
	assert.Equal(t, []string{"crossWord.py", "--json"}, g.Args)
	assert.Equal(t, "/srv/gen", g.Dir)

	_, err = NewExec("   ", "", 0, nil)
	assert.ErrorIs(t, err, errEmptyCommand)
}

func TestExecWithoutDecoder(t *testing.T) {
	_, err := (&Exec{Path: "true"}).Generate(context.Background())
	assert.ErrorIs(t, err, errNoDecoder)
}
