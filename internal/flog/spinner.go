package flog

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
)

// Spinner wraps github.com/briandowns/spinner in the manner of the
// level-builder's pkg/ui/spinner.go, re-pointed at puzzle-solving progress
// instead of level-build progress. It does not pause around logged lines;
// Start simply does nothing in quiet or verbose runs.
type Spinner struct {
	s     *spinner.Spinner
	quiet bool
}

// NewSpinner builds a spinner with msg as its initial suffix. When quiet is
// true, Start is a no-op.
func NewSpinner(msg string, quiet bool) *Spinner {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + msg
	_ = s.Color("green", "bold")
	return &Spinner{s: s, quiet: quiet}
}

// Start starts the spinner unless quiet or VerboseEnabled is set — verbose
// progress lines and a spinner don't mix, per the source wrapper's rule.
func (sp *Spinner) Start() {
	if !sp.quiet && !VerboseEnabled {
		sp.s.Start()
	}
}

// Stop stops the spinner unconditionally.
func (sp *Spinner) Stop() {
	sp.s.Stop()
}

// UpdatePuzzle sets the spinner's suffix to reflect the current puzzle
// index out of total.
func (sp *Spinner) UpdatePuzzle(index, total int) {
	sp.s.Suffix = fmt.Sprintf(" solving puzzle %d/%d", index+1, total)
}
