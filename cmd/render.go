package cmd

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

var renderFlags struct {
	output   string
	format   string
	text     string
	codePage string
	zoom     int
	printout bool
}

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render a printer stream to an image of the paper",
	Long: `Render prints the stream read from file, standard input or --text on a
fresh paper roll and writes the result as a png, bmp or tiff image.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f := renderFlags
		page, err := parseCodePage(f.codePage)
		if err != nil {
			return err
		}
		data, err := readInput(args, f.text, page)
		if err != nil {
			return err
		}

		g := cfg.Paper
		if cmd.Flags().Changed("zoom") {
			g.Zoom = f.zoom
		}
		s, err := printSession(g, data)
		if err != nil {
			return err
		}

		var img image.Image = s.Paint()
		if f.printout {
			img = s.Printout()
		}
		logger.Info("Rendered paper",
			"bytes", len(data),
			"lines", s.LineCount(),
			"size", img.Bounds().Size(),
		)

		format := f.format
		if format == "" {
			format = formatFromName(f.output)
		}
		if f.output == "" || f.output == "-" {
			return encodeImage(os.Stdout, img, format)
		}
		out, err := os.Create(f.output)
		if err != nil {
			return fmt.Errorf("Couldn't create output file:\n%w", err)
		}
		if err := encodeImage(out, img, format); err != nil {
			out.Close()
			return err
		}
		return out.Close()
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderFlags.output, "output", "o", "", "output file (default is standard output)")
	renderCmd.Flags().StringVarP(&renderFlags.format, "format", "f", "", "png, bmp or tiff (default from the output file name, else png)")
	renderCmd.Flags().StringVarP(&renderFlags.text, "text", "t", "", "print this text instead of reading a stream")
	renderCmd.Flags().StringVar(&renderFlags.codePage, "code-page", "roman8", "code page for --text: roman8 or ecma94")
	renderCmd.Flags().IntVarP(&renderFlags.zoom, "zoom", "z", 1, "pixels per printer dot")
	renderCmd.Flags().BoolVar(&renderFlags.printout, "printout", false, "render only the printed part, one pixel per dot, without margins")
	rootCmd.AddCommand(renderCmd)
}

func formatFromName(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".bmp":
		return "bmp"
	case ".tif", ".tiff":
		return "tiff"
	default:
		return "png"
	}
}

func encodeImage(w io.Writer, img image.Image, format string) error {
	var err error
	switch format {
	case "png":
		err = png.Encode(w, img)
	case "bmp":
		err = bmp.Encode(w, img)
	case "tiff":
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("Unknown image format %q", format)
	}
	if err != nil {
		return fmt.Errorf("Couldn't encode %s image:\n%w", format, err)
	}
	return nil
}
