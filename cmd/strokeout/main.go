// Command strokeout strokes SVG path data or a line of text and prints the
// outline of the stroke as SVG path data.
//
// Usage:
//
//	strokeout -d "M 10 10 C 40 0 60 40 90 10" -width 6 -cap round
//	strokeout -text Hello -font-size 48 -width 2 -png hello.png
//
// Style fields can also come from a TOML file given with -style; flags that
// are set explicitly override the file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/stroker"
	"github.com/gogpu/stroker/coverage"
	"github.com/gogpu/stroker/glyph"
	"github.com/gogpu/stroker/path"
	"github.com/gogpu/stroker/svgpath"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "strokeout:", err)
		}
		os.Exit(1)
	}
}

// styleFile is the TOML form of the stroke flags.
type styleFile struct {
	Width      float64          `toml:"width"`
	Cap        stroker.LineCap  `toml:"cap"`
	Join       stroker.LineJoin `toml:"join"`
	MiterLimit float64          `toml:"miter_limit"`
	Dash       []float64        `toml:"dash"`
	Phase      float64          `toml:"phase"`
	Tolerance  float64          `toml:"tolerance"`
}

type config struct {
	style     styleFile
	d         string
	text      string
	fontSize  float64
	dash      string
	stylePath string
	pngPath   string
	size      int
	prec      int
	verbose   bool
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cfg.verbose {
		level = slog.LevelDebug
	}
	stroker.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	defer stroker.SetLogger(nil)

	src, err := source(cfg, stdin)
	if err != nil {
		return err
	}

	st := stroker.Stroke{
		Width:      cfg.style.Width,
		Cap:        cfg.style.Cap,
		Join:       cfg.style.Join,
		MiterLimit: cfg.style.MiterLimit,
	}
	if len(cfg.style.Dash) > 0 {
		st.Dash = stroker.NewDash(cfg.style.Dash...).WithOffset(cfg.style.Phase)
	}

	var opts []stroker.Option
	if cfg.style.Tolerance > 0 {
		opts = append(opts,
			stroker.WithTolerance(cfg.style.Tolerance),
			stroker.WithFlatness(cfg.style.Tolerance),
			stroker.WithFlattenOutput(true))
	}

	out, err := stroker.StrokePath(src, st, opts...)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(stdout, svgpath.Format(out, cfg.prec)); err != nil {
		return err
	}

	if cfg.pngPath != "" {
		return writePNG(cfg.pngPath, cfg.size, out)
	}
	return nil
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	cfg := &config{}
	def := stroker.DefaultStroke()

	fs := flag.NewFlagSet("strokeout", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.d, "d", "", "SVG path data to stroke (read from stdin when empty and -text is not set)")
	fs.StringVar(&cfg.text, "text", "", "text to stroke, set in Go Regular")
	fs.Float64Var(&cfg.fontSize, "font-size", 32, "font size in pixels per em for -text")
	fs.Float64Var(&cfg.style.Width, "width", def.Width, "stroke width")
	fs.TextVar(&cfg.style.Cap, "cap", def.Cap, "line cap: butt, round or square")
	fs.TextVar(&cfg.style.Join, "join", def.Join, "line join: miter, round or bevel")
	fs.Float64Var(&cfg.style.MiterLimit, "miter", def.MiterLimit, "miter limit as a multiple of half the width")
	fs.StringVar(&cfg.dash, "dash", "", "comma-separated dash lengths")
	fs.Float64Var(&cfg.style.Phase, "phase", 0, "dash phase")
	fs.Float64Var(&cfg.style.Tolerance, "tolerance", 0, "curve flattening tolerance (0 keeps curves)")
	fs.StringVar(&cfg.stylePath, "style", "", "TOML file with stroke fields")
	fs.StringVar(&cfg.pngPath, "png", "", "also write the filled outline to this PNG file")
	fs.IntVar(&cfg.size, "size", 256, "PNG width and height in pixels")
	fs.IntVar(&cfg.prec, "prec", 3, "digits after the decimal point in the output, -1 for exact")
	fs.BoolVar(&cfg.verbose, "v", false, "log pipeline details to stderr")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if cfg.dash != "" {
		lengths, err := parseLengths(cfg.dash)
		if err != nil {
			return nil, err
		}
		cfg.style.Dash = lengths
	}

	if cfg.stylePath != "" {
		if err := cfg.loadStyle(set); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// loadStyle reads the style file and keeps the flags in set.
func (cfg *config) loadStyle(set map[string]bool) error {
	data, err := os.ReadFile(cfg.stylePath)
	if err != nil {
		return err
	}
	file := cfg.style
	if err := toml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("style %s: %w", cfg.stylePath, err)
	}

	if !set["width"] {
		cfg.style.Width = file.Width
	}
	if !set["cap"] {
		cfg.style.Cap = file.Cap
	}
	if !set["join"] {
		cfg.style.Join = file.Join
	}
	if !set["miter"] {
		cfg.style.MiterLimit = file.MiterLimit
	}
	if !set["dash"] {
		cfg.style.Dash = file.Dash
	}
	if !set["phase"] {
		cfg.style.Phase = file.Phase
	}
	if !set["tolerance"] {
		cfg.style.Tolerance = file.Tolerance
	}
	return nil
}

func parseLengths(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	lengths := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("dash: %w", err)
		}
		lengths = append(lengths, v)
	}
	return lengths, nil
}

func source(cfg *config, stdin io.Reader) (*path.Path, error) {
	if cfg.text != "" {
		face, err := glyph.NewFace(goregular.TTF, cfg.fontSize)
		if err != nil {
			return nil, err
		}
		col := path.NewCollector()
		// Put the baseline one em down so the text starts inside the image.
		if _, err := face.FeedText(cfg.text, path.Point{X: 0, Y: cfg.fontSize}, col); err != nil {
			return nil, err
		}
		return col.Path(), nil
	}

	d := cfg.d
	if d == "" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, err
		}
		d = string(data)
	}
	return svgpath.ParsePath(strings.TrimSpace(d))
}

func writePNG(name string, size int, p *path.Path) error {
	c := coverage.New(size, size)
	path.Feed(p, c)

	f, err := os.Create(name) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, c.Image()); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
