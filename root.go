package main

import (
	"github.com/rohanthewiz/logger"
	"github.com/spf13/cobra"

	"bannerkit/config"
	"bannerkit/stories"
	"bannerkit/web/pages/shared"
)

// app is what every subcommand runs against.
type app struct {
	configDir string
	cfg       *config.Config
	catalog   *stories.Catalog
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "bannerkit",
		Short:         "bannerkit renders and checks design-system banners",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
	}

	cmd.PersistentFlags().StringVar(&a.configDir, "config-dir", ".", "Directory holding an optional .env file")

	cmd.AddCommand(newServeCmd(a))
	cmd.AddCommand(newStoriesCmd(a))
	cmd.AddCommand(newRenderCmd(a))
	cmd.AddCommand(newCheckCmd(a))

	return cmd
}

func (a *app) load() error {
	cfg, err := config.Load(a.configDir)
	if err != nil {
		return err
	}
	logger.SetLogLevel(cfg.LogLevel)

	catalog, err := stories.Load(cfg.StoriesDir)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.catalog = catalog
	return nil
}

func (a *app) site() shared.Site {
	return shared.NewSite(a.cfg, a.catalog.All())
}
