package console

import "io"

// Capture is a scoped redirect of console output into an in-memory
// buffer. New output stops reaching the underlying stream until Close
// restores it.
type Capture struct {
	console *Console
	prevOut io.Writer
	prevRec bool
	prevBuf []string
	closed  bool
}

// Capture begins buffering output. The caller must Close the returned
// capture to restore the console; defer it immediately.
func (c *Console) Capture() *Capture {
	c.mu.Lock()
	defer c.mu.Unlock()

	cp := &Capture{
		console: c,
		prevOut: c.out,
		prevRec: c.record,
		prevBuf: c.buffer,
	}
	c.out = io.Discard
	c.record = true
	c.buffer = nil
	return cp
}

// Get returns everything written since the capture began.
func (cp *Capture) Get() string {
	cp.console.mu.Lock()
	defer cp.console.mu.Unlock()

	var out string
	for _, s := range cp.console.buffer {
		out += s
	}
	return out
}

// Close restores the console's stream and recording state. It is safe
// to call more than once.
func (cp *Capture) Close() {
	cp.console.mu.Lock()
	defer cp.console.mu.Unlock()

	if cp.closed {
		return
	}
	cp.closed = true
	cp.console.out = cp.prevOut
	cp.console.record = cp.prevRec
	cp.console.buffer = cp.prevBuf
}
