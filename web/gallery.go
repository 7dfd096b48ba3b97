package web

import (
	"net/http"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
	"github.com/rohanthewiz/serr"

	"bannerkit/config"
	"bannerkit/stories"
	"bannerkit/ui/banner"
	"bannerkit/web/pages"
	"bannerkit/web/pages/shared"
)

// gallery holds what the page handlers share.
type gallery struct {
	cfg        *config.Config
	catalog    *stories.Catalog
	bannerOpts []banner.Option
}

func (g *gallery) site() shared.Site {
	return shared.NewSite(g.cfg, g.catalog.All())
}

func (g *gallery) home(ctx rweb.Context) error {
	return ctx.WriteHTML(pages.NewHome(g.site(), g.catalog.All()).Render())
}

func (g *gallery) story(ctx rweb.Context) error {
	name := ctx.Request().Param("name")
	st, ok := g.catalog.Get(name)
	if !ok {
		return writeError(ctx, serr.New("story not found", "story", name), http.StatusNotFound)
	}

	page, err := pages.NewStoryPage(g.site(), st, g.bannerOpts...)
	if err != nil {
		logger.LogErr(err, "unable to mount story")
		return writeError(ctx, err, http.StatusInternalServerError)
	}

	out, err := page.Render()
	if err != nil {
		logger.LogErr(err, "story failed to render", "story", name)
		return writeError(ctx, err, http.StatusInternalServerError)
	}
	return ctx.WriteHTML(out)
}

// dismiss answers with an empty body, which htmx swaps in for the banner.
// Nothing is recorded.
func (g *gallery) dismiss(ctx rweb.Context) error {
	logger.Info("Banner dismissed", "id", ctx.Request().QueryParam("id"))
	ctx.SetStatus(http.StatusOK)
	return ctx.WriteHTML("")
}

func (g *gallery) stylesheet(ctx rweb.Context) error {
	ctx.Response().SetHeader("Content-Type", "text/css; charset=utf-8")
	ctx.Response().SetHeader("Cache-Control", "public, max-age=3600")
	return ctx.Bytes([]byte(banner.Stylesheet()))
}
