// Package terminal provides direct ANSI terminal control for braille
// grid rendering.
//
// Features:
//   - True color (24-bit) and 256-color palette support
//   - Full-grid paints and positioned single-cell writes for diffing
//   - Raw mode with clean restoration on exit/panic
//   - SIGWINCH resize detection
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI
// sequences. Target environments: Linux, macOS, BSDs with
// xterm-compatible terminals.
package terminal
