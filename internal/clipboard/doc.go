// Package clipboard provides the platform clipboard capability used to
// mirror the "+" and "*" registers.
//
// Clipboard access is optional and platform specific. The editing engine
// talks to it only through the Clipboard interface and treats every write
// as best effort: a failed write is logged by the caller and never affects
// editing.
//
// Backends:
//   - System: the OS clipboard via github.com/atotto/clipboard
//   - OSC52: an OSC 52 terminal escape sequence, which also works over SSH
//   - Memory: an in-process clipboard for tests and headless hosts
//   - Nop: discards everything
package clipboard
