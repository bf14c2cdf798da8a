// Package render turns the particle store into terminal cells.
//
// The pipeline splats point sprites additively into a float FrameBuffer,
// runs a bloom pass over it, and presents pixel pairs as half-block cells
// in a Buffer that the UI composites over before flushing.
package render
