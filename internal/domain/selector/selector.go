// Package selector holds the bounded quantity counter that feeds add-to-cart.
//
// A State is either disabled (Max == 0, Quantity == 0) or active with
// Quantity in [1, Max]. All transitions are pure and return a new State.
package selector

import (
	"strconv"
	"strings"
	"unicode"
)

type State struct {
	Max      int `json:"max"`
	Quantity int `json:"quantity"`
}

// New returns the initial state for an available quantity.
func New(max int) State {
	if max <= 0 {
		return State{}
	}
	return State{Max: max, Quantity: 1}
}

func (s State) Disabled() bool { return s.Max <= 0 }

func (s State) Increment() State {
	if s.Disabled() || s.Quantity >= s.Max {
		return s
	}
	s.Quantity++
	return s
}

func (s State) Decrement() State {
	if s.Disabled() || s.Quantity <= 1 {
		return s
	}
	s.Quantity--
	return s
}

// Set clamps n into [1, Max]. It has no effect on a disabled selector.
func (s State) Set(n int) State {
	if s.Disabled() {
		return s
	}
	s.Quantity = min(max(n, 1), s.Max)
	return s
}

// Enter applies direct text entry. Input without a leading integer is ignored.
func (s State) Enter(text string) State {
	n, ok := parseLeadingInt(text)
	if !ok {
		return s
	}
	return s.Set(n)
}

// Rebase moves the selector onto a freshly computed maximum. A changed maximum
// resets the selection; an unchanged one keeps it.
func (s State) Rebase(max int) State {
	if max < 0 {
		max = 0
	}
	if max == s.Max {
		return s
	}
	return New(max)
}

func parseLeadingInt(text string) (int, bool) {
	text = strings.TrimSpace(text)
	end := 0
	if end < len(text) && (text[end] == '-' || text[end] == '+') {
		end++
	}
	digits := end
	for end < len(text) && unicode.IsDigit(rune(text[end])) {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.Atoi(text[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
