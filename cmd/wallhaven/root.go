package main

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/dixieflatline76/wallhaven/config"
	"github.com/dixieflatline76/wallhaven/pkg/wallhaven"
)

var (
	apiKeyFlag string

	cfg    *config.Config
	client *wallhaven.Client
)

var rootCmd = &cobra.Command{
	Use:   "wallhaven",
	Short: "Browse and download wallpapers from wallhaven.cc",
	Long: `wallhaven is a command line client for the wallhaven.cc API.

It searches wallpapers, looks up tags and collections, and downloads
full-resolution image files. An API key (flag --api-key or environment
variable WALLHAVEN_API_KEY) unlocks NSFW content, user settings and
private collections.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiKeyFlag, "api-key", "", "wallhaven.cc API key (overrides WALLHAVEN_API_KEY)")
}

// setup loads the environment config and builds the shared client before
// any subcommand runs.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return err
	}
	if apiKeyFlag != "" {
		cfg.APIKey = apiKeyFlag
	}

	client = wallhaven.New(
		wallhaven.WithAPIKey(cfg.APIKey),
		wallhaven.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
	)
	return nil
}
