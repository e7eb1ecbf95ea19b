package render

import (
	"sync"

	"gol-torus/internal/core"
)

// Frame is a rendered round handed from the simulation goroutine to a viewer.
type Frame struct {
	Seq    uint64
	Pix    []byte
	Params core.ParameterSnapshot
}

// Exchange passes the most recent frame between one producer and one
// consumer. Publish copies the pixels, so the producer may reuse its buffer
// as soon as it returns.
type Exchange struct {
	mu     sync.Mutex
	latest Frame
}

// Publish stores a copy of pix as the newest frame.
func (e *Exchange) Publish(pix []byte, params core.ParameterSnapshot) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.latest.Seq++
	e.latest.Pix = append(e.latest.Pix[:0], pix...)
	e.latest.Params = params
}

// Latest copies the newest frame into dst if it is newer than dst.Seq and
// reports whether it did.
func (e *Exchange) Latest(dst *Frame) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.latest.Seq == dst.Seq {
		return false
	}
	dst.Seq = e.latest.Seq
	dst.Pix = append(dst.Pix[:0], e.latest.Pix...)
	dst.Params = e.latest.Params
	return true
}
