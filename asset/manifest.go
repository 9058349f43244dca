package asset

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/snksoft/crc"
	yml "gopkg.in/yaml.v2"
)

// FormatBGR888 is the only pixel format a manifest may declare.
const FormatBGR888 = "bgr888"

// Manifest describes a raw image file stored next to it.
type Manifest struct {
	File   string `yaml:"file"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Format string `yaml:"format"`
	CRC32  string `yaml:"crc32,omitempty"`
}

// Checksum returns the CRC-32 (IEEE) of pixels as eight hex digits.
func Checksum(pixels []byte) string {
	return fmt.Sprintf("%08x", crc.CalculateCRC(crc.CRC32, pixels))
}

// NewManifest describes m stored in file.
func NewManifest(file string, m Image) Manifest {
	return Manifest{
		File:   file,
		Width:  m.Width,
		Height: m.Height,
		Format: FormatBGR888,
		CRC32:  Checksum(m.Pixels),
	}
}

// ReadManifest decodes a YAML manifest.
func ReadManifest(r io.Reader) (Manifest, error) {
	var mf Manifest
	if err := yml.NewDecoder(r).Decode(&mf); err != nil {
		return Manifest{}, fmt.Errorf("manifest: %w", err)
	}
	if mf.File == "" {
		return Manifest{}, fmt.Errorf("manifest: missing file")
	}
	if mf.Format == "" {
		mf.Format = FormatBGR888
	}
	return mf, nil
}

// WriteManifest encodes mf as YAML.
func WriteManifest(w io.Writer, mf Manifest) error {
	enc := yml.NewEncoder(w)
	if err := enc.Encode(mf); err != nil {
		return fmt.Errorf("manifest: %w", err)
	}
	return enc.Close()
}

// LoadManifest reads the manifest at path and the raw image it names, which is
// resolved relative to the manifest's directory.
func LoadManifest(path string) (Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return Image{}, fmt.Errorf("load %s: %w", path, err)
	}
	defer f.Close()

	mf, err := ReadManifest(f)
	if err != nil {
		return Image{}, fmt.Errorf("load %s: %w", path, err)
	}
	return mf.Load(filepath.Dir(path))
}

// Load reads the raw image described by mf from dir and verifies it.
func (mf Manifest) Load(dir string) (Image, error) {
	if !strings.EqualFold(mf.Format, FormatBGR888) {
		return Image{}, fmt.Errorf("load %s: format %q: %w", mf.File, mf.Format, ErrFormat)
	}
	raw := mf.File
	if !filepath.IsAbs(raw) {
		raw = filepath.Join(dir, raw)
	}
	m, err := LoadRaw(raw, mf.Width, mf.Height)
	if err != nil {
		return Image{}, err
	}
	if want := normalizeCRC(mf.CRC32); want != "" {
		if got := Checksum(m.Pixels); got != want {
			return Image{}, fmt.Errorf("load %s: crc32 %s, want %s: %w", raw, got, want, ErrChecksum)
		}
	}
	return m, nil
}

func normalizeCRC(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimPrefix(s, "0x")
	if s == "" {
		return ""
	}
	for len(s) < 8 {
		s = "0" + s
	}
	return s
}
