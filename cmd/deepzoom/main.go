// Command deepzoom renders a view of the Mandelbrot set at arbitrary
// precision and writes it as PNG.
//
// Usage:
//
//	deepzoom -re -0.743643887037158704752191506114774 -im 0.131825904205311970493132056385139 \
//	    -span 1e-20 -limbs 3 -iter 20000 -output zoom.png
//
// The centre and span are decimal strings parsed at full precision. Press
// Ctrl-C to stop early; the rows finished so far are still written.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"log"
	"log/slog"
	"math/big"
	"os"
	"os/signal"

	"golang.org/x/image/draw"
	"golang.org/x/text/language"

	"github.com/gogpu/deepzoom"
	"github.com/gogpu/deepzoom/fixed"
	"github.com/gogpu/deepzoom/internal/vecmath"
)

type config struct {
	re, im, span  string
	width, height int
	limbs         int
	iter          int
	scale         int
	output        string
	caption       bool
	lang          string
	verbose       bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.re, "re", "-0.5", "real part of the centre")
	flag.StringVar(&cfg.im, "im", "0", "imaginary part of the centre")
	flag.StringVar(&cfg.span, "span", "3", "width of the view")
	flag.IntVar(&cfg.width, "width", 640, "image width before scaling")
	flag.IntVar(&cfg.height, "height", 480, "image height before scaling")
	flag.IntVar(&cfg.limbs, "limbs", 2, "31-bit limbs per coordinate")
	flag.IntVar(&cfg.iter, "iter", 1000, "target iteration count")
	flag.IntVar(&cfg.scale, "scale", 1, "upscaling factor for the output")
	flag.StringVar(&cfg.output, "output", "deepzoom.png", "output file")
	flag.BoolVar(&cfg.caption, "caption", true, "draw the view parameters onto the image")
	flag.StringVar(&cfg.lang, "lang", "en", "language for number formatting")
	flag.BoolVar(&cfg.verbose, "v", false, "debug logging to stderr")
	flag.Parse()

	if cfg.verbose {
		deepzoom.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatalf("deepzoom: %v", err)
	}
}

func run(ctx context.Context, cfg config) error {
	req, err := sectionRequest(cfg)
	if err != nil {
		return err
	}

	sec, err := deepzoom.RenderSection(ctx, req)
	if err != nil {
		return err
	}

	var img draw.Image = render(sec, int32(cfg.iter)) //nolint:gosec // validated by RenderSection
	if cfg.scale > 1 {
		img = upscale(img, cfg.scale)
	}
	if cfg.caption {
		drawCaption(img, captionLines(cfg, req.Format))
	}
	if err := savePNG(cfg.output, img); err != nil {
		return err
	}

	printStats(os.Stdout, language.Make(cfg.lang), cfg, sec)
	return nil
}

// sectionRequest derives pixel (0, 0) and the pixel spacing from the
// centre and span, keeping full precision throughout.
func sectionRequest(cfg config) (deepzoom.SectionRequest, error) {
	if cfg.width <= 0 || cfg.height <= 0 {
		return deepzoom.SectionRequest{}, errors.New("image size must be positive")
	}
	if cfg.iter < 1 || cfg.iter >= 1<<31-1 {
		return deepzoom.SectionRequest{}, fmt.Errorf("iteration count %d out of range", cfg.iter)
	}
	f, err := deepzoom.DefaultFormat(cfg.limbs)
	if err != nil {
		return deepzoom.SectionRequest{}, err
	}

	prec := uint(f.TotalBits()) + 64
	parse := func(name, s string) (*big.Float, error) {
		x, ok := new(big.Float).SetPrec(prec).SetString(s)
		if !ok {
			return nil, fmt.Errorf("-%s: cannot parse %q", name, s)
		}
		return x, nil
	}
	re, err := parse("re", cfg.re)
	if err != nil {
		return deepzoom.SectionRequest{}, err
	}
	im, err := parse("im", cfg.im)
	if err != nil {
		return deepzoom.SectionRequest{}, err
	}
	span, err := parse("span", cfg.span)
	if err != nil {
		return deepzoom.SectionRequest{}, err
	}

	delta := new(big.Float).SetPrec(prec).Quo(span, big.NewFloat(float64(cfg.width)))
	half := func(n int) *big.Float {
		return new(big.Float).SetPrec(prec).Mul(delta, big.NewFloat(float64(n)/2))
	}
	real0 := new(big.Float).SetPrec(prec).Sub(re, half(cfg.width))
	imag0 := new(big.Float).SetPrec(prec).Sub(im, half(cfg.height))

	values := make([]fixed.Value, 3)
	for i, x := range []*big.Float{real0, imag0, delta} {
		if values[i], err = fixed.FromBig(f, x); err != nil {
			return deepzoom.SectionRequest{}, err
		}
	}
	if values[2].IsZero() {
		return deepzoom.SectionRequest{}, fmt.Errorf("span %s is below the resolution of %d limbs", cfg.span, cfg.limbs)
	}

	return deepzoom.SectionRequest{
		Format: f,
		Real:   values[0],
		Imag:   values[1],
		Delta:  values[2],
		Width:  cfg.width,
		Height: cfg.height,
		Target: int32(cfg.iter), //nolint:gosec // checked above
	}, nil
}

func upscale(src image.Image, scale int) draw.Image {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encodePNG(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func captionLines(cfg config, f fixed.Format) []string {
	return []string{
		fmt.Sprintf("re %s", cfg.re),
		fmt.Sprintf("im %s", cfg.im),
		fmt.Sprintf("span %s  iter %d  format %s (%s, %s)",
			cfg.span, cfg.iter, f, vecmath.KindFor(f), vecmath.Capabilities()),
	}
}
