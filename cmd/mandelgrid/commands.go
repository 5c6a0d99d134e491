package main

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ahalverson/mandelgrid/config"
	"github.com/ahalverson/mandelgrid/mandel"
	"github.com/ahalverson/mandelgrid/perf"
	"github.com/ahalverson/mandelgrid/raster"
)

var (
	configPath  string
	workers     int
	paletteName string

	rootCmd = &cobra.Command{
		Use:           "mandelgrid",
		Short:         "Render Mandelbrot rasters and benchmark the collection pipeline",
		SilenceErrors: true,
	}

	renderCmd = &cobra.Command{
		Use:   "render [outfile width height max_iters view_left view_bottom view_height]",
		Short: "Render an escape-time raster to a PNG file",
		Long: `Render computes one escape-time sample per pixel over the given viewport
and writes the result as an 8-bit RGB PNG.

The seven positional arguments may be replaced by a YAML job file:

  mandelgrid render --config job.yaml`,
		Example: "  mandelgrid render mandelbrot.png 1024 1024 4096 -2.0 -2.0 4.0",
		RunE:    runRender,
	}

	perfCmd = &cobra.Command{
		Use:   "perf <outfile.csv> <size...>",
		Short: "Time generate/zip/reduce over random collections and write a CSV report",
		Args:  cobra.MinimumNArgs(2),
		RunE:  runPerf,
	}
)

func init() {
	renderCmd.Flags().StringVar(&configPath, "config", "", "YAML render job file replacing the positional arguments")
	renderCmd.Flags().IntVar(&workers, "workers", 1, "goroutines used to compute pixels (values below 2 render sequentially)")
	renderCmd.Flags().StringVar(&paletteName, "palette", config.PaletteEscape, "color mapping: escape or smooth")
	// Stop flag parsing at the first positional so negative view
	// coordinates like -2.0 are not mistaken for shorthand flags.
	renderCmd.Flags().SetInterspersed(false)

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(perfCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	job, err := renderJob(cmd, args)
	if err != nil {
		return err
	}

	var palette raster.Palette
	if job.Palette == config.PaletteSmooth {
		palette = raster.SmoothPalette()
	}

	renderer := mandel.Renderer{
		View:    mandel.Viewport{Left: job.Left, Bottom: job.Bottom, Height: job.ViewHeight},
		Workers: job.Workers,
		Palette: palette,
	}

	slog.Info("rendering",
		"outfile", job.OutFile,
		"width", job.Width, "height", job.Height,
		"max_iters", job.MaxIters, "workers", job.Workers)

	img := renderer.Render(job.Width, job.Height, job.MaxIters)

	sink := raster.PNGFile{Path: job.OutFile}
	if err := sink.Write(job.Width, job.Height, img.All()); err != nil {
		// Sink failures are fatal and non-retryable; propagate unchanged.
		return err
	}

	fmt.Printf("Successfully created PNG file: %s\n", job.OutFile)
	return nil
}

// renderJob assembles the render configuration from either the --config file
// or the seven positional arguments, then applies flag overrides.
func renderJob(cmd *cobra.Command, args []string) (config.Render, error) {
	var job config.Render
	var err error

	switch {
	case configPath != "":
		if len(args) != 0 {
			return job, fmt.Errorf("positional arguments and --config are mutually exclusive")
		}
		job, err = config.Load(configPath)
		if err != nil {
			return job, err
		}
	case len(args) == 7:
		if job.OutFile = args[0]; job.OutFile == "" {
			return job, fmt.Errorf("outfile must not be empty")
		}
		if job.Width, err = strconv.Atoi(args[1]); err != nil {
			return job, fmt.Errorf("width: %w", err)
		}
		if job.Height, err = strconv.Atoi(args[2]); err != nil {
			return job, fmt.Errorf("height: %w", err)
		}
		maxIters, err := strconv.ParseUint(args[3], 10, 32)
		if err != nil {
			return job, fmt.Errorf("max_iters: %w", err)
		}
		job.MaxIters = uint(maxIters)
		if job.Left, err = strconv.ParseFloat(args[4], 64); err != nil {
			return job, fmt.Errorf("view_left: %w", err)
		}
		if job.Bottom, err = strconv.ParseFloat(args[5], 64); err != nil {
			return job, fmt.Errorf("view_bottom: %w", err)
		}
		if job.ViewHeight, err = strconv.ParseFloat(args[6], 64); err != nil {
			return job, fmt.Errorf("view_height: %w", err)
		}
	default:
		return job, fmt.Errorf("expected 7 positional arguments or --config, got %d", len(args))
	}

	if cmd.Flags().Changed("workers") || job.Workers == 0 {
		job.Workers = workers
	}
	if cmd.Flags().Changed("palette") || job.Palette == "" {
		job.Palette = paletteName
	}

	if err := job.Validate(); err != nil {
		return job, err
	}
	return job, nil
}

func runPerf(cmd *cobra.Command, args []string) error {
	outFile := args[0]
	sizes := make([]int, 0, len(args)-1)
	for _, arg := range args[1:] {
		size, err := strconv.Atoi(arg)
		if err != nil || size < 0 {
			return fmt.Errorf("size %q: must be a non-negative integer", arg)
		}
		sizes = append(sizes, size)
	}

	results := perf.Run(sizes, func(int) float64 { return rand.Float64() })
	for _, res := range results {
		perf.Report(slog.Default(), res)
	}

	f, err := os.Create(outFile)
	if err != nil {
		return fmt.Errorf("open output file: %w", err)
	}
	defer f.Close()

	if err := perf.WriteCSV(f, results); err != nil {
		return err
	}

	fmt.Printf("Wrote %d results to %s\n", len(results), outFile)
	return nil
}
