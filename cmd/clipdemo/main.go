// Command clipdemo demonstrates the polyclip library.
//
// It clips, offsets and rect-clips two star polygons with the native engine
// and renders every result side by side into a PNG.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"log/slog"
	"os"

	"golang.org/x/image/vector"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/polyclip"
	"github.com/gogpu/polyclip/backend/clipper2"
)

const (
	panelSize = 240
	margin    = 20
	scale     = 2
)

var (
	subjectFill = color.NRGBA{R: 0x40, G: 0x80, B: 0xff, A: 0x60}
	clipFill    = color.NRGBA{R: 0xff, G: 0x80, B: 0x40, A: 0x60}
	resultFill  = color.NRGBA{R: 0x20, G: 0xa0, B: 0x40, A: 0xd0}
	rectFill    = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0x40}
)

// panel is one rendered demonstration.
type panel struct {
	name   string
	layers []layer
}

type layer struct {
	paths *polyclip.Paths
	fill  color.Color
}

func main() {
	var (
		lib     = flag.String("lib", "", "path to the Clipper2 shared library (default $"+clipper2.EnvLibrary+")")
		output  = flag.String("output", "clipdemo.png", "output file")
		fill    = flag.String("fill", "nonzero", "fill rule: evenodd, nonzero, positive, negative")
		delta   = flag.Float64("delta", 6, "offset distance for the inflate panel")
		verbose = flag.Bool("v", false, "log engine calls")
	)
	flag.Parse()

	if *verbose {
		polyclip.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	if *lib != "" {
		clipper2.SetLibraryPath(*lib)
	}

	fr, ok := fillRules[*fill]
	if !ok {
		log.Fatalf("unknown fill rule %q", *fill)
	}

	if err := demo(polyclip.Default, fr, *delta, *output); err != nil {
		log.Fatal(err)
	}
}

// demo runs every panel on the engine returned by open, saves the PNG to
// output and prints a summary. The engine is closed before demo returns.
func demo(open func() (*polyclip.Engine, error), fr polyclip.FillRule, delta float64, output string) error {
	eng, err := open()
	if err != nil {
		return fmt.Errorf("start engine: %w", err)
	}
	defer eng.Close()

	panels, err := run(eng, fr, delta)
	if err != nil {
		return fmt.Errorf("demo failed: %w", err)
	}

	img := render(panels)
	if err := savePNG(output, img); err != nil {
		return fmt.Errorf("save: %w", err)
	}

	p := message.NewPrinter(language.English)
	p.Printf("%s %s\n", eng.Name(), eng.Version())
	for _, pn := range panels {
		res := pn.layers[len(pn.layers)-1].paths
		p.Printf("%-16s %d paths, %d points\n", pn.name, res.Len(), res.TotalPoints())
	}
	log.Printf("Demo saved to %s (%dx%d)", output, img.Bounds().Dx(), img.Bounds().Dy())
	return nil
}

var fillRules = map[string]polyclip.FillRule{
	"evenodd":  polyclip.EvenOdd,
	"nonzero":  polyclip.NonZero,
	"positive": polyclip.Positive,
	"negative": polyclip.Negative,
}

func star(coords ...float64) *polyclip.Paths {
	return polyclip.PathsOf(polyclip.MustPath(coords...))
}

// run performs every engine operation shown by the demo.
func run(eng *polyclip.Engine, fr polyclip.FillRule, delta float64) ([]panel, error) {
	subject := star(100, 50, 10, 79, 65, 2, 65, 98, 10, 21)
	clip := star(98, 63, 4, 68, 77, 8, 52, 100, 19, 12)

	inter, _, err := eng.Intersect(subject, clip, polyclip.WithFillRule(fr))
	if err != nil {
		return nil, err
	}
	xor, _, err := eng.Xor(subject, clip, polyclip.WithFillRule(fr))
	if err != nil {
		return nil, err
	}

	union, _, err := eng.Union(subject, clip, polyclip.WithFillRule(fr))
	if err != nil {
		return nil, err
	}
	grown, err := eng.InflatePaths(union, delta,
		polyclip.WithJoinType(polyclip.JoinRound))
	if err != nil {
		return nil, err
	}

	window := polyclip.NewRect(25, 25, 75, 75)
	boxed, err := eng.RectClip(window, union)
	if err != nil {
		return nil, err
	}

	zigzag := polyclip.PathsOf(polyclip.MustPath(0, 10, 20, 90, 40, 10, 60, 90, 80, 10, 100, 90))
	cut, err := eng.RectClipLines(window, zigzag)
	if err != nil {
		return nil, err
	}
	// Open results have no area; offset them into strokes for drawing.
	strokes, err := eng.InflatePaths(cut, 1.5,
		polyclip.WithJoinType(polyclip.JoinRound),
		polyclip.WithEndType(polyclip.EndRound))
	if err != nil {
		return nil, err
	}

	windowPaths := polyclip.PathsOf(polyclip.PathOf(
		polyclip.Pt(window.Left, window.Top), polyclip.Pt(window.Right, window.Top),
		polyclip.Pt(window.Right, window.Bottom), polyclip.Pt(window.Left, window.Bottom)))

	return []panel{
		{"intersection", []layer{{subject, subjectFill}, {clip, clipFill}, {inter, resultFill}}},
		{"xor", []layer{{subject, subjectFill}, {clip, clipFill}, {xor, resultFill}}},
		{"inflate", []layer{{grown, clipFill}, {union, resultFill}}},
		{"rect-clip", []layer{{union, subjectFill}, {windowPaths, rectFill}, {boxed, resultFill}}},
		{"rect-clip-lines", []layer{{windowPaths, rectFill}, {strokes, resultFill}}},
	}, nil
}

// render draws the panels left to right on a white background.
func render(panels []panel) *image.NRGBA {
	bounds := image.Rect(0, 0, panelSize*len(panels), panelSize)
	img := image.NewNRGBA(bounds)
	draw.Draw(img, bounds, image.White, image.Point{}, draw.Src)

	for i, pn := range panels {
		origin := float32(i*panelSize + margin)
		for _, l := range pn.layers {
			fillPaths(img, l.paths, origin, margin, l.fill)
		}
	}
	return img
}

// fillPaths rasterizes ps under the non-zero rule, offset by (ox, oy).
func fillPaths(dst draw.Image, ps *polyclip.Paths, ox, oy float32, c color.Color) {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	for i := 0; i < ps.Len(); i++ {
		n := ps.PathLen(i)
		if n < 3 {
			continue
		}
		for j := 0; j < n; j++ {
			p := ps.Point(i, j)
			x, y := ox+float32(p.X)*scale, oy+float32(p.Y)*scale
			if j == 0 {
				z.MoveTo(x, y)
			} else {
				z.LineTo(x, y)
			}
		}
		z.ClosePath()
	}
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
