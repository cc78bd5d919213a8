package hint

import (
	"math/rand/v2"
	"unicode"
)

// Revealer copies a handful of solution letters into a puzzle string so the
// player starts with a few cells filled in.
type Revealer struct {
	IntN func(n int) int
}

func NewRevealer() *Revealer { return &Revealer{IntN: rand.IntN} }

// Reveal writes the answer for up to n distinct eligible cells of puzzle.
// A cell is eligible when its puzzle rune is neither a block ('-') nor a clue
// number digit and answers has an entry at the same index.
func (h *Revealer) Reveal(puzzle string, answers []string, n int) string {
	if n <= 0 || puzzle == "" {
		return puzzle
	}
	cells := []rune(puzzle)
	eligible := make([]int, 0, len(cells))
	for i, r := range cells {
		if i >= len(answers) || answers[i] == "" {
			continue
		}
		if r == '-' || unicode.IsDigit(r) {
			continue
		}
		eligible = append(eligible, i)
	}
	if n > len(eligible) {
		n = len(eligible)
	}
	intn := h.IntN
	if intn == nil {
		intn = rand.IntN
	}
	// partial Fisher-Yates: the first n slots end up a uniform sample
	for i := 0; i < n; i++ {
		j := i + intn(len(eligible)-i)
		eligible[i], eligible[j] = eligible[j], eligible[i]
		idx := eligible[i]
		cells[idx] = []rune(answers[idx])[0]
	}
	return string(cells)
}
