// Package flog is a small leveled logger for the strawberryfields CLI,
// modeled on the level-builder tool's pkg/common/log.go and
// pkg/ui/spinner.go conventions: a package-level verbosity flag,
// fmt.Sprintf-style formatting, warnings/errors always shown, and a spinner
// wrapper that is not started in quiet or verbose runs.
//
// The core engine packages (grid, rect, generator, matcher, slice, shade,
// localsearch) never import flog — they are pure functions of their inputs.
package flog
