// Package input groups keyboard input handling for chatvim.
//
//   - key: host independent key events and key notation parsing
//   - mode: editing modes and their display names
//   - vim: the modal editing engine, registers and command buffer
package input
