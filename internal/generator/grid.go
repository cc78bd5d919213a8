package generator

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"svw.info/crossword/internal/domain"
	"svw.info/crossword/internal/ports"
)

// DefaultRevealCount is how many letters the legacy page pre-filled.
const DefaultRevealCount = 10

var errGridBlocks = errors.New("grid output: expected a solution block and a puzzle block")

// GridDecoder reads the plain-text layout older generator scripts print:
//
//	solution rows, cells separated by single spaces
//	<blank line>
//	puzzle rows, cells separated by single spaces; two spaces mark an empty cell
//	<blank line>
//	optional legend lines, "<key>: <clue>"
//
// The bare layout of the original script, solution rows directly followed by
// the same number of puzzle rows with no blank line between them, is also
// accepted.
type GridDecoder struct {
	Revealer    ports.Revealer
	RevealCount int
}

func NewGridDecoder(r ports.Revealer, revealCount int) *GridDecoder {
	return &GridDecoder{Revealer: r, RevealCount: revealCount}
}

func (d *GridDecoder) Decode(ctx context.Context, out []byte) (*domain.Payload, error) {
	blocks := splitBlocks(string(out))
	if len(blocks) == 1 {
		blocks = splitHalves(blocks[0])
	}
	if len(blocks) < 2 {
		return nil, errGridBlocks
	}
	answers := flattenSolution(blocks[0])
	puzzle := collapsePuzzle(blocks[1])
	if d.Revealer != nil {
		puzzle = d.Revealer.Reveal(puzzle, answers, d.RevealCount)
	}

	legend := map[string]string{}
	for _, b := range blocks[2:] {
		for _, line := range b {
			k, v, ok := strings.Cut(line, ":")
			if !ok {
				continue
			}
			legend[strings.TrimSpace(k)] = strings.TrimSpace(v)
		}
	}

	puzzleJSON, err := json.Marshal(puzzle)
	if err != nil {
		return nil, err
	}
	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return nil, err
	}
	legendJSON, err := json.Marshal(legend)
	if err != nil {
		return nil, err
	}
	return &domain.Payload{
		MyStringUnedited: puzzleJSON,
		AnswerArrayFlat:  answersJSON,
		Legend:           legendJSON,
	}, nil
}

// splitBlocks groups lines into runs separated by blank lines.
func splitBlocks(s string) [][]string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	var blocks [][]string
	var cur []string
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) == "" && !strings.Contains(line, "  ") {
			if len(cur) > 0 {
				blocks = append(blocks, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, line)
	}
	if len(cur) > 0 {
		blocks = append(blocks, cur)
	}
	return blocks
}

// splitHalves treats an unseparated block as solution rows then puzzle rows.
func splitHalves(lines []string) [][]string {
	if len(lines) < 2 || len(lines)%2 != 0 {
		return [][]string{lines}
	}
	half := len(lines) / 2
	return [][]string{lines[:half], lines[half:]}
}

func flattenSolution(rows []string) []string {
	cells := make([]string, 0, len(rows)*len(rows))
	for _, row := range rows {
		cells = append(cells, strings.Fields(row)...)
	}
	return cells
}

// collapsePuzzle keeps one rune per cell: double spaces become an empty
// cell (' '), every other whitespace run is a separator.
func collapsePuzzle(rows []string) string {
	var b strings.Builder
	for _, row := range rows {
		row = strings.ReplaceAll(row, "  ", "\x00")
		for _, r := range row {
			switch r {
			case '\x00':
				b.WriteRune(' ')
			case ' ', '\t':
			default:
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}
