package config

import (
	"bytes"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("flipview", flag.ContinueOnError)
	d := Default()
	fs.String("config", DefaultFile, "")
	fs.Bool("headless", d.Headless, "")
	fs.Int("hz", d.Hz, "")
	fs.Uint64("ticks", d.Ticks, "")
	fs.Int("scale", d.Scale, "")
	fs.String("asset", d.Asset, "")
	fs.String("manifest", d.Manifest, "")
	fs.Int("width", d.Width, "")
	fs.Int("height", d.Height, "")
	return fs
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "flipview.yml")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadDefaults(t *testing.T) {
	c, err := Load("", nil)
	if err != nil {
		t.Fatalf("Load() err = %v", err)
	}
	if diff := cmp.Diff(Default(), c); diff != "" {
		t.Fatalf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadLayers(t *testing.T) {
	p := writeConfig(t, "hz: 30\nscale: 1\nmanifest: card.yml\n")
	fs := newFlagSet()
	if err := fs.Parse([]string{"-hz", "120", "-ticks", "10"}); err != nil {
		t.Fatal(err)
	}

	c, err := Load(p, fs)
	if err != nil {
		t.Fatalf("Load() err = %v", err)
	}
	want := Default()
	want.Hz = 120
	want.Ticks = 10
	want.Scale = 1
	want.Manifest = "card.yml"
	if diff := cmp.Diff(want, c); diff != "" {
		t.Fatalf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadUnsetFlagsKeepFile(t *testing.T) {
	p := writeConfig(t, "headless: true\n")
	fs := newFlagSet()
	if err := fs.Parse(nil); err != nil {
		t.Fatal(err)
	}
	c, err := Load(p, fs)
	if err != nil {
		t.Fatalf("Load() err = %v", err)
	}
	if !c.Headless {
		t.Fatal("unset -headless flag overrode the file")
	}
}

func TestLoadMissingFile(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	if _, err := Load(DefaultFile, nil); err != nil {
		t.Fatalf("Load(missing default) err = %v", err)
	}
	if _, err := Load("other.yml", nil); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Load(missing explicit) err = %v, want ErrNotExist", err)
	}
}

func TestLoadInvalid(t *testing.T) {
	cases := []string{
		"hz: 0\n",
		"scale: -1\n",
		"width: 0\n",
		"asset: a.rgb\nmanifest: a.yml\n",
	}
	for _, body := range cases {
		if _, err := Load(writeConfig(t, body), nil); !errors.Is(err, ErrInvalid) {
			t.Fatalf("Load(%q) err = %v, want ErrInvalid", body, err)
		}
	}
}

func TestDumpRoundTrip(t *testing.T) {
	c := Default()
	c.Asset = "card.rgb"
	var buf bytes.Buffer
	if err := Dump(&buf, c); err != nil {
		t.Fatalf("Dump() err = %v", err)
	}
	if !strings.Contains(buf.String(), "hz: 60") {
		t.Fatalf("Dump() output lacks hz:\n%s", buf.String())
	}

	got, err := Load(writeConfig(t, buf.String()), nil)
	if err != nil {
		t.Fatalf("Load(dump) err = %v", err)
	}
	if diff := cmp.Diff(c, got); diff != "" {
		t.Fatalf("dump round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSource(t *testing.T) {
	c := Default()
	c.Manifest = "m.yml"
	s := c.Source()
	if s.Manifest != "m.yml" || s.Width != c.Width || s.Height != c.Height {
		t.Fatalf("Source() = %+v", s)
	}
}
