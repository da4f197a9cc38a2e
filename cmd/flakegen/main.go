// Command flakegen generates a snowflake solid and writes it as STL, with an
// optional PNG preview.
package main

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gogpu/flake"
	"github.com/gogpu/flake/export"
	"github.com/gogpu/flake/preview"
)

func main() {
	var (
		seed       = flag.String("seed", "snow", "seed text")
		complexity = flag.Int("complexity", flake.DefaultComplexity, "branching complexity (1-10)")
		thickness  = flag.Float64("thickness", flake.DefaultThickness, "stroke thickness (2-20)")
		size       = flag.Float64("size", flake.DefaultSizeInches, "target diameter in inches")
		resolution = flag.Int("resolution", flake.DefaultResolution, "distance field cells along the longer axis")
		depth      = flag.Float64("depth-ratio", flake.DefaultDepthRatio, "total depth as a fraction of the diameter")
		tuningPath = flag.String("tuning", "", "YAML tuning file")
		outDir     = flag.String("out", ".", "output directory")
		ascii      = flag.Bool("ascii", false, "write ASCII STL instead of binary")
		compress   = flag.Bool("gzip", false, "gzip the binary STL")
		png        = flag.Int("preview", 0, "also write a PNG preview of this size in pixels")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	flake.SetLogger(logger)

	opts := []flake.Option{
		flake.WithResolution(*resolution),
		flake.WithDepthRatio(*depth),
	}
	if *tuningPath != "" {
		t, err := flake.LoadTuning(*tuningPath)
		if err != nil {
			fatal(logger, "load tuning", err)
		}
		opts = append(opts, flake.WithTuning(t))
	}

	res := flake.Generate(flake.Params{
		Seed:       *seed,
		Complexity: *complexity,
		Thickness:  *thickness,
		SizeInches: *size,
	}, opts...)

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fatal(logger, "create output directory", err)
	}

	ext := "stl"
	if *compress && !*ascii {
		ext = "stl.gz"
	}
	meshPath := filepath.Join(*outDir, export.FileName(res.Params, ext))
	if err := writeMesh(meshPath, res, *ascii, *compress); err != nil {
		fatal(logger, "write mesh", err)
	}
	logger.Info("mesh written", "path", meshPath,
		"faces", res.Mesh.FaceCount(), "diameter_mm", res.Mesh.Diameter(), "fallback", res.Fallback)

	if *png > 0 {
		img, err := preview.Render(res, *png)
		if err != nil {
			fatal(logger, "render preview", err)
		}
		pngPath := filepath.Join(*outDir, export.FileName(res.Params, "png"))
		if err := preview.SavePNG(pngPath, img); err != nil {
			fatal(logger, "write preview", err)
		}
		logger.Info("preview written", "path", pngPath)
	}
}

func writeMesh(path string, res *flake.Result, ascii, compress bool) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	switch {
	case ascii:
		err = export.WriteASCIISTL(f, res.Mesh, export.SeedSlug(res.Params.Seed))
	case compress:
		err = export.WriteSTLGzip(f, res.Mesh)
	default:
		err = export.WriteSTL(f, res.Mesh)
	}
	if err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func fatal(logger *slog.Logger, msg string, err error) {
	logger.Error(msg, "err", err)
	os.Exit(1)
}
