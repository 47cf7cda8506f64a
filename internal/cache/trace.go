package cache

import (
	"fmt"
	"io"
)

// Tracer emits action-trace lines to an io.Writer (stdout in production),
// one call per cache transfer.
type Tracer struct {
	w io.Writer
}

func NewTracer(w io.Writer) *Tracer {
	return &Tracer{w: w}
}

func (t *Tracer) word(action Action, addr int) {
	t.record(action, addr, addr)
}

func (t *Tracer) block(action Action, blockHead, blockSize int) {
	t.record(action, blockHead, blockHead+blockSize-1)
}

func (t *Tracer) record(action Action, lo, hi int) {
	source, destination := action.names()
	fmt.Fprintf(t.w, "@@@ transferring word [%d-%d] from the %s to the %s\n", lo, hi, source, destination)
}
