package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"tomgalvin.uk/hp82240/internal/journal"
	"tomgalvin.uk/hp82240/internal/paper"
	"tomgalvin.uk/hp82240/internal/printer"
	"tomgalvin.uk/hp82240/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a virtual paper roll over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		if cmd.Flags().Changed("addr") {
			cfg.Server.Addr = serveAddr
		}

		session, err := paper.NewSession(logger.With("src", "paper"), cfg.Paper)
		if err != nil {
			return err
		}
		session.OnSelfTest = func() {
			logger.Info("Self test requested")
		}

		var j *journal.Journal
		if cfg.Journal.Path != "" {
			if j, err = journal.Open(cfg.Journal.Path); err != nil {
				return err
			}
			defer j.Close()
		}

		var hardcopier server.Hardcopier
		if cfg.Printer.Name != "" {
			conn, err := connectPrinter(ctx)
			if err != nil {
				// the emulator is still useful without hardcopies
				logger.Error("Couldn't connect to printer", "name", cfg.Printer.Name, "error", err)
			} else {
				defer conn.Disconnect()
				hardcopier = conn.Printer()
			}
		}

		srv, err := server.NewServer(logger.With("src", "server"), session, j, hardcopier)
		if err != nil {
			return err
		}
		httpServer := &http.Server{
			Addr:              cfg.Server.Addr,
			Handler:           srv.Handler(),
			ReadHeaderTimeout: 10 * time.Second,
		}
		go func() {
			<-ctx.Done()
			shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			httpServer.Shutdown(shutdown)
		}()

		logger.Info("Starting server", "addr", cfg.Server.Addr)
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("Couldn't start server:\n%w", err)
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "address to listen on (default from the configuration)")
	rootCmd.AddCommand(serveCmd)
}

// printerOptions are the controller options the configuration asks for.
func printerOptions() printer.Options {
	o := printer.DefaultOptions()
	o.Timeout = time.Duration(cfg.Printer.TimeoutSeconds) * time.Second
	o.Intensity = printer.LaserIntensity(cfg.Printer.Intensity)
	return o
}

func connectPrinter(ctx context.Context) (*printer.BluetoothConnection, error) {
	l := logger.With("src", "printer")
	o := printerOptions()

	scan, cancel := context.WithTimeout(ctx, o.Timeout)
	defer cancel()
	l.Info("Scanning for printer", "name", cfg.Printer.Name)
	conn, err := printer.FromBluetoothName(scan, l, cfg.Printer.Name, o)
	if err != nil {
		return nil, err
	}
	if err := conn.Connect(scan); err != nil {
		return nil, err
	}
	return conn, nil
}
