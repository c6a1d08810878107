package terminal

// Backend abstracts the platform terminal device
type Backend interface {
	// Init enters raw mode
	Init() error

	// Fini restores the mode saved by Init and stops resize notification
	Fini()

	Size() (width, height int)

	// Write writes raw bytes to the terminal output
	Write(p []byte) (int, error)

	// Read blocks until input is available, stop is closed, or an error occurs.
	// It returns an empty slice on poll timeout so callers can resolve a pending ESC
	Read(stop <-chan struct{}) ([]byte, error)

	// SetResizeHandler registers a callback invoked after the window size changes
	SetResizeHandler(handler func(width, height int))
}
