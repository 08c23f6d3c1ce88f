package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"

	himage "github.com/mmuldo/huepick/image"
	"github.com/mmuldo/huepick/palette"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
)

const (
	swatchSize = 200
	swatchRow  = 4
)

var (
	count      int
	format     string
	swatchPath string
	preview    bool
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract PATH...",
	Short: "Extracts representative colors from images",
	Long: `Extracts the most salient, mutually distinguishable colors of each image.
Several images are processed concurrently; results keep argument order.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if format != "hex" && format != "json" {
			return fmt.Errorf("'%s' is not a supported format", format)
		}
		if swatchPath != "" && len(args) > 1 {
			return errors.New("--swatch needs exactly one image")
		}

		results, e := extractAll(context.Background(), args, count, newLogger())
		if e != nil {
			return e
		}

		if e := printResults(cmd.OutOrStdout(), results); e != nil {
			return e
		}

		if swatchPath != "" {
			return writeSwatch(swatchPath, results[0].Colors)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().IntVarP(&count, "count", "n", 8, "number of colors to extract")
	extractCmd.Flags().StringVarP(&format, "format", "f", "hex", "output format (hex, json)")
	extractCmd.Flags().StringVar(&swatchPath, "swatch", "", "write a PNG swatch of the colors to this path")
	extractCmd.Flags().BoolVarP(&preview, "preview", "p", false, "print a colored block next to each color")
	extractCmd.Flags().Int("concurrency", 4, "images processed at once")
	if err := viper.BindPFlag("concurrency", extractCmd.Flags().Lookup("concurrency")); err != nil {
		panic(err)
	}
}

// Result is the extracted palette of one image.
type Result struct {
	Path   string          `json:"path"`
	Colors []palette.Color `json:"-"`
	Hex    []string        `json:"colors"`
}

func extractAll(ctx context.Context, paths []string, n int, logger *slog.Logger) ([]Result, error) {
	results := make([]Result, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, viper.GetInt("concurrency")))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			_, colors, e := extractFile(ctx, path, n, logger.With("path", path))
			if e != nil {
				return e
			}

			hex := make([]string, len(colors))
			for j, c := range colors {
				hex[j] = c.Hex()
			}
			results[i] = Result{Path: path, Colors: colors, Hex: hex}
			return nil
		})
	}

	if e := g.Wait(); e != nil {
		return nil, e
	}
	return results, nil
}

// extractFile runs the whole pipeline on one image: decode, optional downscale and
// quantization, palette building, extraction.
func extractFile(ctx context.Context, path string, n int, logger *slog.Logger) (*himage.Palette, []palette.Color, error) {
	bg, e := background()
	if e != nil {
		return nil, nil, e
	}
	cfg, e := extractorConfig()
	if e != nil {
		return nil, nil, e
	}

	b, e := himage.Load(path)
	if e != nil {
		return nil, nil, e
	}
	b = himage.Downscale(b, viper.GetInt("max-dimension"))
	b = himage.Quantize(b, viper.GetInt("quantize"))

	p := himage.BuildPalette(b, bg)
	logger.Info("built palette", "width", b.Width, "height", b.Height, "unique", p.Len())

	ex := palette.NewExtractor(p, palette.WithConfig(cfg), palette.WithLogger(logger))
	colors, e := ex.ExtractContext(ctx, n)
	if e != nil {
		return nil, nil, e
	}
	return p, colors, nil
}

func printResults(w io.Writer, results []Result) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	for _, r := range results {
		if len(results) > 1 {
			fmt.Fprintf(w, "%s:\n", r.Path)
		}
		for _, c := range r.Colors {
			if preview {
				rgb := c.RGB()
				fmt.Fprintf(w, "\033[48;2;%d;%d;%dm    \033[0m %s\n", rgb.R, rgb.G, rgb.B, c.Hex())
			} else {
				fmt.Fprintln(w, c.Hex())
			}
		}
	}
	return nil
}

// writeSwatch draws the colors as a grid of squares, four per row.
func writeSwatch(path string, colors []palette.Color) error {
	rows := (len(colors) + swatchRow - 1) / swatchRow
	img := image.NewRGBA(image.Rect(0, 0, swatchRow*swatchSize, max(1, rows)*swatchSize))

	x, y := 0, 0
	for _, c := range colors {
		for w := x; w-x < swatchSize; w++ {
			for h := y; h-y < swatchSize; h++ {
				img.Set(w, h, c)
			}
		}
		x = (x + swatchSize) % (swatchRow * swatchSize)
		if x == 0 {
			y += swatchSize
		}
	}

	f, e := os.Create(path)
	if e != nil {
		return e
	}
	defer f.Close()

	return png.Encode(f, img)
}
