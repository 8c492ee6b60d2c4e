package client

import (
	"errors"
	"strings"
	"unicode/utf8"
)

const MaxBudgetLength = 64

var ErrBudgetTooLong = errors.New("budget exceeds maximum length")

// Budget is the investor's own estimate, kept as typed ("50k-80k USD").
type Budget struct {
	text string
}

func NewBudget(s string) (Budget, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) > MaxBudgetLength {
		return Budget{}, ErrBudgetTooLong
	}
	return Budget{text: s}, nil
}

func (b Budget) String() string { return b.text }
