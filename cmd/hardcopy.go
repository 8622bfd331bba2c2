package cmd

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"tomgalvin.uk/hp82240/internal/bitmap"
	"tomgalvin.uk/hp82240/internal/caption"
)

var hardcopyFlags struct {
	text     string
	codePage string
	name     string
	caption  string
}

var hardcopyCmd = &cobra.Command{
	Use:   "hardcopy [file]",
	Short: "Print a printer stream on a Phomemo thermal printer",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		f := hardcopyFlags
		page, err := parseCodePage(f.codePage)
		if err != nil {
			return err
		}
		data, err := readInput(args, f.text, page)
		if err != nil {
			return err
		}
		s, err := printSession(cfg.Paper, data)
		if err != nil {
			return err
		}
		printout := s.Printout()
		if printout.Rect.Empty() {
			logger.Warn("Nothing to print")
			return nil
		}
		c, err := caption.Render(f.caption, printout.Rect.Dx(), caption.DefaultOptions())
		if err != nil {
			return err
		}
		b, err := bitmap.FromPaletted(caption.Above(c, printout))
		if err != nil {
			return err
		}

		if f.name != "" {
			cfg.Printer.Name = f.name
		}
		if cfg.Printer.Name == "" {
			cfg.Printer.Name = "T02"
		}
		conn, err := connectPrinter(ctx)
		if err != nil {
			return err
		}
		defer conn.Disconnect()

		if err := conn.Printer().Print(ctx, b); err != nil {
			return err
		}
		logger.Info("Printed hardcopy", "rows", b.Height())
		return nil
	},
}

func init() {
	hardcopyCmd.Flags().StringVarP(&hardcopyFlags.text, "text", "t", "", "print this text instead of reading a stream")
	hardcopyCmd.Flags().StringVar(&hardcopyFlags.codePage, "code-page", "roman8", "code page for --text: roman8 or ecma94")
	hardcopyCmd.Flags().StringVarP(&hardcopyFlags.name, "name", "n", "", "bluetooth name of the printer (default from the configuration, else T02)")
	hardcopyCmd.Flags().StringVarP(&hardcopyFlags.caption, "caption", "c", "", "text printed above the paper")
	rootCmd.AddCommand(hardcopyCmd)
}
