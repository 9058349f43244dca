package asset

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"flipview/flip"
)

func TestTestCardOrientationsDiffer(t *testing.T) {
	m := TestCard(DefaultWidth, DefaultHeight)
	if got, want := len(m.Pixels), Size(DefaultWidth, DefaultHeight); got != want {
		t.Fatalf("len(Pixels) = %d, want %d", got, want)
	}

	s, err := flip.Derive(m.Pixels, m.Stride())
	if err != nil {
		t.Fatalf("Derive() err = %v", err)
	}
	for i, a := range flip.Orientations {
		for _, b := range flip.Orientations[i+1:] {
			if bytes.Equal(s.Select(a), s.Select(b)) {
				t.Fatalf("%s and %s render the same image", a, b)
			}
		}
	}
}

func TestTestCardMarker(t *testing.T) {
	m := TestCard(32, 24)
	if r, g, b := m.At(0, 0); r != 0xFF || g != 0xFF || b != 0xFF {
		t.Fatalf("At(0, 0) = (%d, %d, %d), want white marker", r, g, b)
	}
	if r, g, b := m.At(31, 23); r == 0xFF && g == 0xFF && b == 0xFF {
		t.Fatal("At(31, 23) is white, marker must only be top-left")
	}
}

func TestRotatedLayout(t *testing.T) {
	m := Image{Pixels: make([]byte, Size(2, 3)), Width: 2, Height: 3}
	m.Set(0, 2, 1, 2, 3)
	if !bytes.Equal(m.Pixels[:3], []byte{3, 2, 1}) {
		t.Fatalf("bottom-left pixel not stored first: %v", m.Pixels[:3])
	}
	m.Set(1, 0, 4, 5, 6)
	if !bytes.Equal(m.Pixels[15:18], []byte{6, 5, 4}) {
		t.Fatalf("top-right pixel not stored last: %v", m.Pixels[15:18])
	}
}

func TestEncodeDecode(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			src.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), A: 0xFF})
		}
	}
	src.Set(0, 0, color.RGBA{R: 10, G: 20, B: 30, A: 0xFF})
	src.Set(3, 2, color.RGBA{R: 40, G: 50, B: 60, A: 0xFF})

	m := Encode(src)
	if m.Width != 4 || m.Height != 3 || m.Stride() != 3 {
		t.Fatalf("Encode() geometry = %dx%d stride %d, want 4x3 stride 3", m.Width, m.Height, m.Stride())
	}
	// Top-left pixel lands at the end of the first memory row, BGR.
	if got := m.Pixels[6:9]; !bytes.Equal(got, []byte{30, 20, 10}) {
		t.Fatalf("encoded top-left = %v, want [30 20 10]", got)
	}

	out := Decode(m)
	if !bytes.Equal(out.Pix, src.Pix) {
		t.Fatal("Decode(Encode(img)) differs from img")
	}
}

func writeFile(t *testing.T, dir, name string, b []byte) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, b, 0o644); err != nil {
		t.Fatalf("write %s: %v", p, err)
	}
	return p
}

func TestLoadRaw(t *testing.T) {
	dir := t.TempDir()
	card := TestCard(8, 6)
	p := writeFile(t, dir, "card.rgb", card.Pixels)

	m, err := LoadRaw(p, 8, 6)
	if err != nil {
		t.Fatalf("LoadRaw() err = %v", err)
	}
	if !bytes.Equal(m.Pixels, card.Pixels) {
		t.Fatal("LoadRaw() returned different pixels")
	}

	if _, err := LoadRaw(p, 8, 5); !errors.Is(err, ErrSize) {
		t.Fatalf("LoadRaw(wrong size) err = %v, want ErrSize", err)
	}
	if _, err := LoadRaw(filepath.Join(dir, "missing.rgb"), 8, 6); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("LoadRaw(missing) err = %v, want ErrNotExist", err)
	}
}

func TestManifestRoundTrip(t *testing.T) {
	dir := t.TempDir()
	card := TestCard(8, 6)
	writeFile(t, dir, "card.rgb", card.Pixels)

	var buf bytes.Buffer
	if err := WriteManifest(&buf, NewManifest("card.rgb", card)); err != nil {
		t.Fatalf("WriteManifest() err = %v", err)
	}
	if !strings.Contains(buf.String(), "crc32: "+Checksum(card.Pixels)) {
		t.Fatalf("manifest missing checksum:\n%s", buf.String())
	}
	p := writeFile(t, dir, "card.yml", buf.Bytes())

	m, err := LoadManifest(p)
	if err != nil {
		t.Fatalf("LoadManifest() err = %v", err)
	}
	if m.Width != 8 || m.Height != 6 || !bytes.Equal(m.Pixels, card.Pixels) {
		t.Fatal("LoadManifest() returned a different image")
	}
}

func TestManifestChecksumMismatch(t *testing.T) {
	dir := t.TempDir()
	card := TestCard(8, 6)
	writeFile(t, dir, "card.rgb", card.Pixels)
	p := writeFile(t, dir, "card.yml", []byte("file: card.rgb\nwidth: 8\nheight: 6\nformat: bgr888\ncrc32: 0xdeadbeef\n"))

	if _, err := LoadManifest(p); !errors.Is(err, ErrChecksum) {
		t.Fatalf("LoadManifest() err = %v, want ErrChecksum", err)
	}
}

func TestManifestRejectsFormat(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "card.yml", []byte("file: card.rgb\nwidth: 8\nheight: 6\nformat: rgb565\n"))
	if _, err := LoadManifest(p); !errors.Is(err, ErrFormat) {
		t.Fatalf("LoadManifest() err = %v, want ErrFormat", err)
	}
}

func TestReadManifestMissingFile(t *testing.T) {
	if _, err := ReadManifest(strings.NewReader("width: 8\nheight: 6\n")); err == nil {
		t.Fatal("ReadManifest() err = nil, want error for missing file")
	}
}

func TestOpen(t *testing.T) {
	m, err := Open(Source{})
	if err != nil {
		t.Fatalf("Open(default) err = %v", err)
	}
	if m.Width != DefaultWidth || m.Height != DefaultHeight {
		t.Fatalf("Open(default) = %dx%d, want %dx%d", m.Width, m.Height, DefaultWidth, DefaultHeight)
	}

	dir := t.TempDir()
	p := writeFile(t, dir, "short.rgb", make([]byte, 10))
	if _, err := Open(Source{Path: p, Width: 4, Height: 4}); !errors.Is(err, ErrSize) {
		t.Fatalf("Open(short raw) err = %v, want ErrSize", err)
	}
}

func TestNormalizeCRC(t *testing.T) {
	cases := map[string]string{
		"":           "",
		"0xDEADBEEF": "deadbeef",
		" 1f ":       "0000001f",
	}
	for in, want := range cases {
		if got := normalizeCRC(in); got != want {
			t.Fatalf("normalizeCRC(%q) = %q, want %q", in, got, want)
		}
	}
}
