package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"flipview/asset"

	"github.com/astrogo/fitsio"
	"github.com/theckman/yacspin"
)

func main() {
	var (
		outDir = flag.String("out", "", "Output directory for .rgb and .yml files.")
		width  = flag.Int("w", asset.DefaultWidth, "Required input width in pixels.")
		height = flag.Int("h", asset.DefaultHeight, "Required input height in pixels.")
		quiet  = flag.Bool("q", false, "Do not show progress.")
	)
	flag.Parse()

	if *outDir == "" || flag.NArg() == 0 {
		fatalf("usage: mkasset -out dir [-w 320] [-h 240] [-q] in.png|in.jpg|in.gif|in.fits...")
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fatalf("mkdir: %v", err)
	}

	var w io.Writer = os.Stderr
	if *quiet {
		w = io.Discard
	}
	spin, err := yacspin.New(yacspin.Config{
		Writer:            w,
		Frequency:         100 * time.Millisecond,
		CharSet:           yacspin.CharSets[14],
		Suffix:            " mkasset",
		SuffixAutoColon:   true,
		StopCharacter:     "ok",
		StopFailCharacter: "failed",
	})
	if err != nil {
		fatalf("spinner: %v", err)
	}
	_ = spin.Start()

	inputs := flag.Args()
	for i, in := range inputs {
		spin.Message(fmt.Sprintf("%d/%d %s", i+1, len(inputs), filepath.Base(in)))
		if err := convert(in, *outDir, *width, *height); err != nil {
			spin.StopFailMessage(err.Error())
			_ = spin.StopFail()
			os.Exit(2)
		}
	}
	spin.StopMessage(fmt.Sprintf("%d asset(s) written to %s", len(inputs), *outDir))
	_ = spin.Stop()
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

// convert encodes one input into <name>.rgb and its <name>.yml manifest.
func convert(in, outDir string, w, h int) error {
	img, err := decode(in)
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}
	b := img.Bounds()
	if b.Dx() != w || b.Dy() != h {
		return fmt.Errorf("%s: image is %dx%d, want %dx%d: %w", in, b.Dx(), b.Dy(), w, h, asset.ErrSize)
	}
	m := asset.Encode(img)

	name := strings.TrimSuffix(filepath.Base(in), filepath.Ext(in))
	raw := name + ".rgb"
	if err := os.WriteFile(filepath.Join(outDir, raw), m.Pixels, 0o644); err != nil {
		return err
	}

	f, err := os.Create(filepath.Join(outDir, name+".yml"))
	if err != nil {
		return err
	}
	if err := asset.WriteManifest(f, asset.NewManifest(raw, m)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".fits", ".fit", ".fts":
		return decodeFITS(f)
	}
	img, _, err := image.Decode(f)
	return img, err
}

// decodeFITS returns the primary HDU's image.
func decodeFITS(r io.Reader) (image.Image, error) {
	fits, err := fitsio.Open(r)
	if err != nil {
		return nil, err
	}
	defer fits.Close()

	hdu := fits.HDU(0)
	im, ok := hdu.(fitsio.Image)
	if !ok {
		return nil, errors.New("fits: primary HDU is not an image")
	}
	img := im.Image()
	if img == nil {
		return nil, errors.New("fits: image has no pixel data")
	}
	return img, nil
}
