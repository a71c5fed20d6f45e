package cmd

import (
	"fmt"

	"departure-board/core/config"
	"departure-board/core/logger"
	"departure-board/core/storage"
	"departure-board/feature/icons"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// iconsCmd represents the icons command
var iconsCmd = &cobra.Command{
	Use:   "icons",
	Short: "Generate and manage the PWA icon set",
}

// iconsGenerateCmd represents the icons generate command
var iconsGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the PWA icons",
	Long: `Writes one icon per PWA size into the output directory. PNG icons are
rendered when the raster renderer is available, SVG icons otherwise.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := loadIconsConfig(cmd)
		if err != nil {
			return err
		}
		defer logg.Sync()

		// Resolved once; every icon of the run uses the same path
		raster, err := icons.DetectRaster(cfg.Icons.Renderer)
		if err != nil {
			return err
		}

		gen, err := icons.NewGenerator(cfg.Icons, icons.DefaultSizes, raster, logg)
		if err != nil {
			return err
		}

		fmt.Println("Generating PWA icons for SL Departure App...")
		result, err := gen.Generate()
		if err != nil {
			return err
		}

		if result.UsedFallback() {
			fmt.Println("\nNote: raster renderer not available, created SVG icons instead.")
			fmt.Println("   To convert to PNG, run: departure-board icons convert")
			fmt.Println("   Or use any SVG to PNG converter")
		}

		fmt.Printf("\nGenerated %d icon sizes\n", len(result.Files))
		fmt.Println("Your PWA is now ready for installation on mobile devices!")
		return nil
	},
}

// iconsConvertCmd represents the icons convert command
var iconsConvertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Rasterize SVG icons to PNG",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := loadIconsConfig(cmd)
		if err != nil {
			return err
		}
		defer logg.Sync()

		converted, err := icons.Convert(cfg.Icons.OutputDir, logg)
		if err != nil {
			return err
		}

		fmt.Printf("Converted %d icons\n", len(converted))
		return nil
	},
}

// iconsPublishCmd represents the icons publish command
var iconsPublishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Upload the icon set to object storage",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := loadIconsConfig(cmd)
		if err != nil {
			return err
		}
		defer logg.Sync()

		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}

		prefix, _ := cmd.Flags().GetString("prefix")
		keys, err := icons.NewPublisher(client, cfg.Storage.Bucket, logg).Publish(cmd.Context(), cfg.Icons.OutputDir, prefix)
		if err != nil {
			return err
		}

		logg.Info("Icons published", zap.String("bucket", cfg.Storage.Bucket), zap.Int("count", len(keys)))
		return nil
	},
}

// loadIconsConfig loads the configuration and applies the shared icons flags.
func loadIconsConfig(cmd *cobra.Command) (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("out") {
		cfg.Icons.OutputDir, _ = cmd.Flags().GetString("out")
	}
	if cmd.Flags().Changed("renderer") {
		cfg.Icons.Renderer, _ = cmd.Flags().GetString("renderer")
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return cfg, logg, nil
}

func init() {
	RootCmd.AddCommand(iconsCmd)
	iconsCmd.AddCommand(iconsGenerateCmd, iconsConvertCmd, iconsPublishCmd)

	iconsCmd.PersistentFlags().String("out", "icons", "Output directory for the icons")
	iconsGenerateCmd.Flags().String("renderer", icons.RendererAuto, "Renderer to use (auto, raster, vector)")
	iconsPublishCmd.Flags().String("prefix", "icons", "Object key prefix in the bucket")
}
