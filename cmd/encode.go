package cmd

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/spf13/cobra"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"tomgalvin.uk/hp82240/internal/graphics"
)

var encodeFlags struct {
	width int
	gamma float64
}

var encodeCmd = &cobra.Command{
	Use:   "encode [image]",
	Short: "Convert an image into printer graphics bytes",
	Long: `Encode dithers an image down to black and white and writes the graphics
commands that print it to standard output, ready to be piped into render,
view or the /print endpoint.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var r io.Reader = os.Stdin
		if len(args) == 1 && args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("Couldn't open image:\n%w", err)
			}
			defer f.Close()
			r = f
		}
		img, format, err := image.Decode(r)
		if err != nil {
			return fmt.Errorf("Couldn't decode image:\n%w", err)
		}

		o := graphics.Options{Width: encodeFlags.width, Gamma: encodeFlags.gamma}
		data, err := graphics.Encode(img, o)
		if err != nil {
			return err
		}
		logger.Info("Encoded image",
			"format", format,
			"size", img.Bounds().Size(),
			"bytes", len(data),
		)
		_, err = os.Stdout.Write(data)
		return err
	},
}

func init() {
	o := graphics.DefaultOptions()
	encodeCmd.Flags().IntVarP(&encodeFlags.width, "width", "w", o.Width, "widest the image may be printed, in dots")
	encodeCmd.Flags().Float64VarP(&encodeFlags.gamma, "gamma", "g", o.Gamma, "gamma applied before dithering")
	rootCmd.AddCommand(encodeCmd)
}
