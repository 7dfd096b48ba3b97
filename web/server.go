package web

import (
	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"

	"bannerkit/config"
	"bannerkit/stories"
	"bannerkit/ui/banner"
)

// NewServer creates and configures the gallery server.
// opts are applied to every banner the story pages mount.
func NewServer(cfg *config.Config, catalog *stories.Catalog, opts ...banner.Option) *rweb.Server {
	s := rweb.NewServer(rweb.ServerOptions{
		Address: cfg.Address,
		Verbose: !cfg.Production(),
	})

	// Apply middleware
	s.Use(SecurityHeadersMiddleware) // Security headers
	s.Use(LoggingMiddleware)         // Request logging

	g := &gallery{cfg: cfg, catalog: catalog, bannerOpts: opts}
	setupRoutes(s, g)

	// Serve static files using embedded FS
	SetupStaticFiles(s)

	return s
}

// Run starts the server
func Run(s *rweb.Server, cfg *config.Config) error {
	logger.Info("bannerkit gallery starting", "address", cfg.Address,
		"env", cfg.Environment, "checks", cfg.Checks)
	return s.Run()
}
