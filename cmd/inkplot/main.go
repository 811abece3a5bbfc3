// Command inkplot turns GeoJSON feature collections into plot-ready,
// layer-grouped SVG.
//
// Usage:
//
//	inkplot -width 100 -height 100 -out plot [flags] input.geojson...
//
// Each input file is ingested, the combined geometry is fitted and clipped
// to the canvas, bucketed into per-color layers, and written as SVG. With
// -split, one SVG per layer is written alongside the combined file, for a
// downstream pen sequencer.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/inkplot/inkplot/canvas"
	"github.com/inkplot/inkplot/geojson"
	"github.com/inkplot/inkplot/geom"
)

type config struct {
	width      float64
	height     float64
	margin     float64
	out        string
	colorProp  string
	defCol     string
	layerOrder []string
	projection geojson.Projection
	split      bool
	preview    bool
	strict     bool
}

func main() {
	var cfg config
	var layerOrder, projection string
	var verbose bool
	flag.Float64Var(&cfg.width, "width", 100, "Canvas width.")
	flag.Float64Var(&cfg.height, "height", 100, "Canvas height.")
	flag.Float64Var(&cfg.margin, "margin", 0.1, "Margin fraction reserved as border on each side.")
	flag.StringVar(&cfg.out, "out", "plot", "Output prefix; the combined file is <prefix>_all.svg or <prefix>.svg.")
	flag.StringVar(&cfg.colorProp, "color-prop", "color", "GeoJSON property holding a feature's color.")
	flag.StringVar(&cfg.defCol, "default-color", "black", "Color for features without a matching property.")
	flag.StringVar(&layerOrder, "layer-order", "", "Comma-separated colors drawn first, in order.")
	flag.StringVar(&projection, "projection", "planar", "Coordinate projection: planar or mercator.")
	flag.BoolVar(&cfg.split, "split", false, "Also write one SVG per layer plus a frame file.")
	flag.BoolVar(&cfg.preview, "preview", false, "Also write a <prefix>.png raster proof.")
	flag.BoolVar(&cfg.strict, "strict", false, "Abort the run on the first bad input file instead of skipping it.")
	flag.BoolVar(&verbose, "v", false, "Verbose logging.")
	flag.Parse()

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "error: no input files")
		flag.Usage()
		os.Exit(2)
	}
	if layerOrder != "" {
		cfg.layerOrder = strings.Split(layerOrder, ",")
	}
	switch projection {
	case "planar":
		cfg.projection = geojson.Planar
	case "mercator":
		cfg.projection = geojson.Mercator
	default:
		fmt.Fprintf(os.Stderr, "error: unknown projection %q\n", projection)
		os.Exit(2)
	}

	if err := run(cfg, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(cfg config, paths []string) error {
	opts := geojson.Options{
		ColorProp:    cfg.colorProp,
		DefaultColor: cfg.defCol,
		Projection:   cfg.projection,
	}

	var objects []geom.Object
	for _, path := range paths {
		objs, err := geojson.DecodeFile(path, opts)
		if err != nil {
			if !cfg.strict && (errors.Is(err, geojson.ErrParse) ||
				errors.Is(err, geojson.ErrUnsupportedGeometry) ||
				errors.Is(err, geom.ErrInvalidGeometry)) {
				slog.Warn("skipping input", "path", path, "err", err)
				continue
			}
			return err
		}
		slog.Debug("ingested", "path", path, "objects", len(objs))
		objects = append(objects, objs...)
	}
	if len(objects) == 0 {
		return fmt.Errorf("no usable geometry in %d input file(s)", len(paths))
	}

	scene := canvas.Scene{
		Frame:   canvas.Frame{Width: cfg.width, Height: cfg.height, Margin: cfg.margin},
		Objects: objects,
	}
	scene, err := scene.Fit()
	if err != nil {
		return err
	}
	scene, err = scene.Clip(geom.Tolerance{})
	if err != nil {
		return err
	}
	slog.Debug("scene ready", "objects", len(scene.Objects), "layers", len(scene.Layers(cfg.layerOrder)))

	prefix := filepath.Base(cfg.out)
	if cfg.split {
		dir := filepath.Dir(cfg.out)
		written, err := scene.WriteLayerFiles(dir, prefix, cfg.layerOrder)
		if err != nil {
			return err
		}
		for _, p := range written {
			slog.Info("wrote", "path", p)
		}
	} else {
		path := cfg.out + ".svg"
		if err := scene.WriteFile(path, prefix, cfg.layerOrder); err != nil {
			return err
		}
		slog.Info("wrote", "path", path)
	}

	if cfg.preview {
		path := cfg.out + ".png"
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := scene.WritePNG(f, 4); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		slog.Info("wrote", "path", path)
	}
	return nil
}
