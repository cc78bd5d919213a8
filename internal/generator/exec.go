package generator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
	"time"

	"svw.info/crossword/internal/domain"
)

var errEmptyCommand = errors.New("generator: empty command")

// Exec runs an external generator program once per call and decodes its stdout.
type Exec struct {
	Path    string
	Args    []string
	Dir     string
	Timeout time.Duration
	Decoder Decoder
}

// NewExec splits command on whitespace into program and arguments.
func NewExec(command, dir string, timeout time.Duration, dec Decoder) (*Exec, error) {
	parts := strings.Fields(command)
	if len(parts) == 0 {
		return nil, errEmptyCommand
	}
	return &Exec{Path: parts[0], Args: parts[1:], Dir: dir, Timeout: timeout, Decoder: dec}, nil
}

func (g *Exec) Generate(ctx context.Context) (*domain.Payload, error) {
	if g.Decoder == nil {
		return nil, errNoDecoder
	}
	if g.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.Timeout)
		defer cancel()
	}
	cmd := exec.CommandContext(ctx, g.Path, g.Args...)
	cmd.Dir = g.Dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("generator %s: %w", g.Path, ctxErr)
		}
		if msg := exceptionMessage(lastLine(stderr.String())); msg != "" {
			return nil, errors.New(msg)
		}
		return nil, fmt.Errorf("generator %s: %w", g.Path, err)
	}
	return g.Decoder.Decode(ctx, stdout.Bytes())
}

// exceptionPrefix matches the "ValueError: " style type name Python puts in
// front of the message on the last traceback line.
var exceptionPrefix = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.]*(Error|Exception|Exit|Interrupt|Warning): `)

// exceptionMessage drops the exception type so the text matches str(e).
func exceptionMessage(line string) string {
	if loc := exceptionPrefix.FindStringIndex(line); loc != nil && loc[1] < len(line) {
		return line[loc[1]:]
	}
	return line
}

// lastLine picks the final non-empty line, which for a traceback is the error itself.
func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if l := strings.TrimSpace(lines[i]); l != "" {
			return l
		}
	}
	return ""
}
