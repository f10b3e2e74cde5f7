// Package strawberryfields implements the strawberryfields CLI, a
// cobra-based front end over solver.SolveAll and the puzzleio codec,
// grounded on the level-builder tool's cmd/root.go layering.
package main
