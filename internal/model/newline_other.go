//go:build !windows

package model

// Terminator is the line terminator written by the raw renderer.
const Terminator = "\n"

// stripCR controls whether SplitLines removes a CR paired with the LF.
const stripCR = false
