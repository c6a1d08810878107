package terminal

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/cellgrid/event"
)

// Reader pumps terminal input and window resizes into an event queue
type Reader struct {
	backend Backend
	queue   *event.Queue
	dec     *Decoder
}

// Reader creates the input pump for this session
func (s *Session) Reader(q *event.Queue) *Reader {
	return newReader(s.backend, q)
}

func newReader(b Backend, q *event.Queue) *Reader {
	return &Reader{backend: b, queue: q, dec: NewDecoder()}
}

func (r *Reader) push(ev event.Event) {
	r.queue.Push(ev)
}

// Run reads until ctx is cancelled or input fails. Run once per Reader.
// A panic while decoding restores the terminal and is returned as an error
func (r *Reader) Run(ctx context.Context) (err error) {
	defer func() {
		if p := recover(); p != nil {
			EmergencyReset(os.Stdout)
			log.Printf("input reader crashed: %v\n%s", p, debug.Stack())
			err = fmt.Errorf("terminal: input reader panic: %v", p)
		}
	}()

	r.backend.SetResizeHandler(func(w, h int) {
		r.push(event.NewResize(w, h))
	})

	for {
		data, err := r.backend.Read(ctx.Done())
		if err != nil {
			return fmt.Errorf("terminal: read input: %w", err)
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if len(data) == 0 {
			// Idle poll: a buffered ESC is the Escape key
			r.dec.Flush(r.push)
			continue
		}
		r.dec.Decode(data, r.push)
	}
}
