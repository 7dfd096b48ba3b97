package web

import (
	"embed"
	"errors"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
	"github.com/rohanthewiz/serr"
)

//go:embed static
var staticFiles embed.FS

const faviconSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 16 16"><rect width="16" height="16" rx="3" fill="#0969da"/><rect x="3" y="4" width="10" height="2" rx="1" fill="white"/><rect x="3" y="8" width="7" height="2" rx="1" fill="white" fill-opacity=".7"/></svg>`

// staticTypes lists what /static/ serves. The gallery only ships stylesheets.
var staticTypes = map[string]string{
	".css": "text/css; charset=utf-8",
}

// SetupStaticFiles serves the gallery's embedded stylesheets and its favicon
func SetupStaticFiles(s *rweb.Server) {
	s.Get("/favicon.ico", favicon)
	s.Get("/static/*", staticFile)
}

func favicon(c rweb.Context) error {
	c.Response().SetHeader("Content-Type", "image/svg+xml")
	c.Response().SetHeader("Cache-Control", "public, max-age=86400")
	return c.Bytes([]byte(faviconSVG))
}

func staticFile(c rweb.Context) error {
	name := strings.TrimPrefix(c.Request().Path(), "/static/")
	contentType, ok := staticTypes[path.Ext(name)]
	if !ok {
		return writeError(c, serr.New("static file not found", "path", name), http.StatusNotFound)
	}

	content, err := fs.ReadFile(staticFiles, path.Join("static", name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return writeError(c, serr.New("static file not found", "path", name), http.StatusNotFound)
		}
		err = serr.Wrap(err, "failed to read static file", "path", name)
		logger.LogErr(err)
		return writeError(c, err, http.StatusInternalServerError)
	}

	c.Response().SetHeader("Content-Type", contentType)
	// Stylesheets change with releases, so keep them short-lived
	c.Response().SetHeader("Cache-Control", "public, max-age=3600")
	return c.Bytes(content)
}
