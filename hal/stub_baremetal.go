//go:build tinygo && baremetal

package hal

// stubKeyboard stands in for a keyboard that is not wired; it never reports.
type stubKeyboard struct{}

func (k *stubKeyboard) Events() <-chan KeyEvent { return nil }
