//go:build !tinygo

package hal

type hostTime struct {
	ch  chan uint64
	seq uint64
}

func newHostTime() *hostTime {
	return &hostTime{ch: make(chan uint64, 1)}
}

func (t *hostTime) VBlank() <-chan uint64 { return t.ch }

// frame is called by the runners once per displayed frame.
func (t *hostTime) frame() uint64 {
	t.seq++
	select {
	case t.ch <- t.seq:
	default:
	}
	return t.seq
}
