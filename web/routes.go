package web

import (
	"github.com/rohanthewiz/rweb"

	"bannerkit/web/pages"
)

// setupRoutes configures all gallery routes
func setupRoutes(s *rweb.Server, g *gallery) {
	// Page routes - HTML responses
	s.Get("/", g.home)
	s.Get("/stories/:name", g.story)

	// Target of dismissible banners (hx-post)
	s.Post(pages.DismissPath, g.dismiss)

	s.Get("/health", g.health)

	// Generated from the theme tokens
	s.Get("/styles/banner.css", g.stylesheet)
}
