// Package terminal wraps a tcell screen behind a cell-buffer interface.
//
// Frames are composed as row-major []Cell and flushed in one call.
// Input arrives as Event values translated from tcell, so callers never
// import tcell directly.
package terminal
