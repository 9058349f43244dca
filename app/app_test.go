package app

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"flipview/asset"
	"flipview/flip"
	"flipview/hal"
	"flipview/internal/buildinfo"
)

type fakeLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *fakeLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, s)
}

func (l *fakeLogger) WriteLineBytes(b []byte) { l.WriteLineString(string(b)) }

func (l *fakeLogger) contains(sub string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, line := range l.lines {
		if strings.Contains(line, sub) {
			n++
		}
	}
	return n
}

type fakeKeyboard struct{ ch chan hal.KeyEvent }

func (k fakeKeyboard) Events() <-chan hal.KeyEvent { return k.ch }

type fakeHAL struct {
	log    *fakeLogger
	top    *hal.MemFramebuffer
	bottom *hal.MemFramebuffer
	kbd    fakeKeyboard
	vblank chan uint64
}

func newFakeHAL(bottom *hal.MemFramebuffer) *fakeHAL {
	return &fakeHAL{
		log:    &fakeLogger{},
		top:    hal.NewMemFramebuffer(400, 240, hal.PixelFormatBGR888, true),
		bottom: bottom,
		kbd:    fakeKeyboard{ch: make(chan hal.KeyEvent, 16)},
		vblank: make(chan uint64, 16),
	}
}

func newBottom() *hal.MemFramebuffer {
	return hal.NewMemFramebuffer(asset.DefaultWidth, asset.DefaultHeight, hal.PixelFormatBGR888, true)
}

func (h *fakeHAL) Logger() hal.Logger   { return h.log }
func (h *fakeHAL) Display() hal.Display { return h }
func (h *fakeHAL) Input() hal.Input     { return h }
func (h *fakeHAL) Time() hal.Time       { return h }

func (h *fakeHAL) Top() hal.Framebuffer    { return h.top }
func (h *fakeHAL) Bottom() hal.Framebuffer { return h.bottom }
func (h *fakeHAL) Keyboard() hal.Keyboard  { return h.kbd }
func (h *fakeHAL) VBlank() <-chan uint64   { return h.vblank }

func (h *fakeHAL) tap(code hal.KeyCode) {
	h.kbd.ch <- hal.KeyEvent{Code: code, Press: true}
	h.kbd.ch <- hal.KeyEvent{Code: code, Press: false}
}

func testCardSet(t *testing.T) *flip.Set {
	t.Helper()
	card := asset.TestCard(asset.DefaultWidth, asset.DefaultHeight)
	set, err := flip.Derive(card.Pixels, card.Stride())
	if err != nil {
		t.Fatalf("Derive() err = %v", err)
	}
	return set
}

func TestNewPresentsOriginal(t *testing.T) {
	h := newFakeHAL(newBottom())
	step, err := New(h)
	if err != nil {
		t.Fatalf("New() err = %v", err)
	}
	if step == nil {
		t.Fatal("New() step = nil")
	}

	want := testCardSet(t).Select(flip.Original)
	if !bytes.Equal(h.bottom.Buffer(), want) {
		t.Fatal("bottom screen does not show the original image")
	}
	if got := h.bottom.Presents(); got != 1 {
		t.Fatalf("bottom Presents() = %d, want 1", got)
	}
	if got := h.top.Presents(); got == 0 {
		t.Fatal("instructions were never presented on the top screen")
	}
	lit := false
	for _, b := range h.top.Buffer() {
		if b != 0 {
			lit = true
			break
		}
	}
	if !lit {
		t.Fatal("top screen is blank, want instructions")
	}
	if h.log.contains("flipview: [") == 0 {
		t.Fatalf("log lines lack the session prefix: %q", h.log.lines)
	}
	if got := h.log.contains(buildinfo.String()); got != 1 {
		t.Fatalf("build info logged %d times, want 1", got)
	}
}

func TestStepToggles(t *testing.T) {
	h := newFakeHAL(newBottom())
	step, err := New(h)
	if err != nil {
		t.Fatalf("New() err = %v", err)
	}
	set := testCardSet(t)

	steps := []struct {
		press []hal.KeyCode
		want  flip.Orientation
	}{
		{nil, flip.Original},
		{[]hal.KeyCode{hal.KeyA}, flip.FlippedVertically},
		{[]hal.KeyCode{hal.KeyB}, flip.FlippedVerticallyAndHorizontally},
		{[]hal.KeyCode{hal.KeyA}, flip.FlippedHorizontally},
		{[]hal.KeyCode{hal.KeyA, hal.KeyB}, flip.FlippedVertically},
		{[]hal.KeyCode{hal.KeyX, hal.KeyY}, flip.FlippedVertically},
	}
	for i, s := range steps {
		for _, code := range s.press {
			h.tap(code)
		}
		if err := step(); err != nil {
			t.Fatalf("step %d: err = %v", i, err)
		}
		if !bytes.Equal(h.bottom.Buffer(), set.Select(s.want)) {
			t.Fatalf("step %d: bottom screen does not show %s", i, s.want)
		}
	}
	if got := h.log.contains("orientation: flipped vertically and horizontally"); got != 1 {
		t.Fatalf("logged diagonal orientation %d times, want 1", got)
	}
	if got := h.log.contains("orientation: flipped vertically"); got != 3 {
		t.Fatalf("logged vertical flips %d times, want 3", got)
	}
}

func TestStepStart(t *testing.T) {
	h := newFakeHAL(newBottom())
	step, err := New(h)
	if err != nil {
		t.Fatalf("New() err = %v", err)
	}
	h.tap(hal.KeyStart)
	if err := step(); !errors.Is(err, hal.ErrStop) {
		t.Fatalf("step() err = %v, want ErrStop", err)
	}
}

func TestNewRejectsMisalignedImage(t *testing.T) {
	dir := t.TempDir()
	raw := filepath.Join(dir, "odd.rgb")
	if err := os.WriteFile(raw, make([]byte, 100), 0o644); err != nil {
		t.Fatal(err)
	}

	h := newFakeHAL(newBottom())
	step, err := NewWithConfig(h, Config{Asset: asset.Source{Path: raw}})
	if !errors.Is(err, asset.ErrSize) {
		t.Fatalf("NewWithConfig() err = %v, want ErrSize", err)
	}
	if step != nil {
		t.Fatal("NewWithConfig() returned a step function on error")
	}
	if got := h.log.contains("fatal:"); got != 1 {
		t.Fatalf("fatal error logged %d times, want 1", got)
	}
	if r, g, b := hal.PixelRGB(h.bottom, h.bottom.Width()-1, h.bottom.Height()-1); r != 0xFF || g != 0xFF || b != 0xFF {
		t.Fatal("fatal screen not drawn on the bottom screen")
	}
}

func TestNewRejectsFramebuffer(t *testing.T) {
	cases := map[string]*hal.MemFramebuffer{
		"format": hal.NewMemFramebuffer(asset.DefaultWidth, asset.DefaultHeight, hal.PixelFormatRGB565, true),
		"size":   hal.NewMemFramebuffer(asset.DefaultWidth, asset.DefaultHeight-1, hal.PixelFormatBGR888, true),
		"layout": hal.NewMemFramebuffer(asset.DefaultWidth, asset.DefaultHeight, hal.PixelFormatBGR888, false),
	}
	for name, fb := range cases {
		h := newFakeHAL(fb)
		if _, err := New(h); !errors.Is(err, ErrFramebuffer) {
			t.Fatalf("%s: New() err = %v, want ErrFramebuffer", name, err)
		}
	}
}

func TestNewWithoutBottomScreen(t *testing.T) {
	h := newFakeHAL(nil)
	if _, err := New(&noBottom{h}); !errors.Is(err, ErrNoDisplay) {
		t.Fatalf("New() err = %v, want ErrNoDisplay", err)
	}
}

// noBottom hides the bottom screen behind a nil interface.
type noBottom struct{ *fakeHAL }

func (h *noBottom) Display() hal.Display    { return h }
func (h *noBottom) Bottom() hal.Framebuffer { return nil }

func TestRunStopsOnStart(t *testing.T) {
	h := newFakeHAL(newBottom())
	h.tap(hal.KeyA)
	h.vblank <- 1
	h.vblank <- 2
	go func() {
		h.tap(hal.KeyStart)
		h.vblank <- 3
	}()
	if err := Run(h, Config{}); err != nil {
		t.Fatalf("Run() err = %v", err)
	}
	if h.log.contains("exit") != 1 {
		t.Fatalf("exit not logged: %q", h.log.lines)
	}
}

func TestTakeRunes(t *testing.T) {
	prefix, rest := takeRunes("héllo", 2)
	if prefix != "hé" || rest != "llo" {
		t.Fatalf("takeRunes() = %q, %q", prefix, rest)
	}
	if prefix, rest := takeRunes("ab", 5); prefix != "ab" || rest != "" {
		t.Fatalf("takeRunes(short) = %q, %q", prefix, rest)
	}
}

// brokenInput panics when the viewer asks for its keyboard.
type brokenInput struct{ *fakeHAL }

func (h *brokenInput) Input() hal.Input { panic("keyboard bus fault") }

func TestRunRecoversStartupPanic(t *testing.T) {
	h := newFakeHAL(newBottom())
	err := Run(&brokenInput{h}, Config{})
	if err == nil || !strings.Contains(err.Error(), "keyboard bus fault") {
		t.Fatalf("Run() err = %v, want the panic value", err)
	}
	if h.log.contains("flipview: panic: keyboard bus fault") != 1 {
		t.Fatalf("panic not logged: %q", h.log.lines)
	}
	white := 0
	for y := 0; y < h.bottom.Height(); y++ {
		for x := 0; x < h.bottom.Width(); x++ {
			if r, g, b := hal.PixelRGB(h.bottom, x, y); r&g&b == 0xFF {
				white++
			}
		}
	}
	if white < h.bottom.Width()*h.bottom.Height()/2 {
		t.Fatalf("panic screen not drawn on the bottom screen (%d white pixels)", white)
	}
}

func TestNewWithoutTopScreen(t *testing.T) {
	h := newFakeHAL(newBottom())
	step, err := New(&noTop{h})
	if err != nil {
		t.Fatalf("New() err = %v", err)
	}
	h.tap(hal.KeyA)
	if err := step(); err != nil {
		t.Fatalf("step() err = %v", err)
	}
}

// noTop hides the top screen behind a nil interface.
type noTop struct{ *fakeHAL }

func (h *noTop) Display() hal.Display { return h }
func (h *noTop) Top() hal.Framebuffer { return nil }
