package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"departure-board/core/config"
	"departure-board/core/logger"
	"departure-board/core/server"
	"departure-board/feature/static"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve [port]",
	Short: "Serve the departure display on the local network",
	Long: `Starts a static file server on all interfaces (port 8000 unless given)
with open CORS headers, prints the local and network URLs and opens a browser
when a desktop session is detected.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Command-line port is strict; the configured one falls back
		var argPort int
		if len(args) == 1 {
			p, err := server.ParsePort(args[0])
			if err != nil {
				return err
			}
			argPort = p
		}

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()

		port, fellBack := cfg.Server.ResolvePort()
		if fellBack {
			logg.Warn("Invalid configured port, using default", zap.String("port", cfg.Server.Port), zap.Int("default", server.DefaultPort))
		}
		if argPort != 0 {
			port = argPort
		}

		if cmd.Flags().Changed("root") {
			cfg.Server.Root, _ = cmd.Flags().GetString("root")
		}
		if noBrowser, _ := cmd.Flags().GetBool("no-browser"); noBrowser {
			cfg.Server.OpenBrowser = false
		}

		site := static.NewFeature(cfg.Server.Root, logg)
		srv, err := server.New(logg, site)
		if err != nil {
			return err
		}

		ln, err := server.Listen(cfg.Server.Host, port)
		if err != nil {
			return err
		}

		root, _ := site.Root()
		localURL := fmt.Sprintf("http://localhost:%d", port)
		networkURL := fmt.Sprintf("http://%s:%d", server.LocalIP(), port)

		fmt.Println("Starting SL Departure App server...")
		fmt.Printf("Serving files from: %s\n", root)
		fmt.Println("Server URLs:")
		fmt.Printf("   Local:    %s\n", localURL)
		fmt.Printf("   Network:  %s\n", networkURL)
		fmt.Println()
		fmt.Printf("Other devices can access: %s\n", networkURL)
		fmt.Println("Press Ctrl+C to stop the server")
		fmt.Println()

		logg.Info("Server listening", zap.String("addr", ln.Addr().String()), zap.String("root", root))

		if cfg.Server.OpenBrowser && server.IsDesktop(os.Getenv, runtime.GOOS) {
			fmt.Println("Opening browser...")
			if err := server.OpenBrowser(localURL); err != nil {
				logg.Warn("Failed to open browser", zap.Error(err))
			}
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := srv.Serve(ctx, ln); err != nil {
			return err
		}

		fmt.Println("\nServer stopped by user")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("root", ".", "Directory to serve")
	serveCmd.Flags().Bool("no-browser", false, "Never open a browser")
}
