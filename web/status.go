package web

import (
	"github.com/rohanthewiz/rweb"
)

// health returns the health status of the gallery
func (g *gallery) health(c rweb.Context) error {
	return c.WriteJSON(map[string]interface{}{
		"status":  "healthy",
		"service": "bannerkit",
		"env":     g.cfg.Environment,
		"checks":  g.cfg.Checks,
		"stories": len(g.catalog.All()),
	})
}

// writeError answers with the error message, as JSON when the client asks
// for it
func writeError(c rweb.Context, err error, code int) error {
	if c.Request().Header("Accept") == "application/json" {
		c.SetStatus(code)
		return c.WriteJSON(map[string]string{
			"error": err.Error(),
		})
	}
	return c.WriteError(err, code)
}
