// Package ui draws the control panel into a cell buffer and maps clicks back to actions.
package ui
