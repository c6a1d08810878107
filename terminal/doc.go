// Package terminal drives an xterm-compatible terminal directly with ANSI sequences.
//
// A Session scopes raw mode, the alternate screen and mouse reporting. Its Writer
// implements frame.Sink with cursor and SGR state tracking, emitting true color,
// 256-color or 16-color output per the detected ColorMode. A Reader decodes raw
// input (CSI, SS3, control bytes, UTF-8, SGR mouse) into events on an event.Queue.
//
// terminfo is not consulted. Target environments: Linux, macOS, BSDs.
package terminal
