package banner

import (
	"strings"

	"bannerkit/ui/theme"
)

const baseCSS = `.Banner {
  display: grid;
  grid-template-columns: auto minmax(0, 1fr) auto;
  align-items: start;
  gap: 8px;
  padding: 12px 16px;
  border: 1px solid;
  border-radius: 6px;
  color: %FG%;
}
.BannerIcon { display: flex; padding-top: 2px; }
.BannerContainer { display: flex; flex-wrap: wrap; gap: 8px 16px; align-items: center; justify-content: space-between; }
.BannerContent { flex: 1 1 auto; }
.BannerTitle { margin: 0; font-size: 14px; font-weight: 600; }
.BannerDescription { font-size: 14px; }
.BannerActions { display: flex; gap: 8px; }
.BannerActionsContainer { display: flex; gap: 8px; }
.BannerDismiss { margin: -4px -8px -4px 0; }
.sr-only,
.Banner[data-title-hidden] .BannerTitle {
  position: absolute; width: 1px; height: 1px; padding: 0; margin: -1px;
  overflow: hidden; clip: rect(0, 0, 0, 0); white-space: nowrap; border: 0;
}
`

// Stylesheet generates the banner CSS: layout, per-variant colours from the
// theme, and the breakpoint rules that pick one action arrangement.
func Stylesheet() string {
	var sb strings.Builder
	sb.WriteString(strings.Replace(baseCSS, "%FG%", theme.CSS("fg.default"), 1))

	for _, v := range Variants() {
		app := Resolve(v)
		sel := `.Banner[data-variant="` + v.String() + `"]`
		sb.WriteString(sel + " { background-color: " + theme.CSS(app.Background()) +
			"; border-color: " + theme.CSS(app.Border()) + "; }\n")
		sb.WriteString(sel + " .BannerIcon { color: " + theme.CSS(app.IconColor()) + "; }\n")
	}

	bp := ActionLayout.Breakpoint
	for _, arr := range ActionLayout.Arrangements {
		query := bp.MaxWidth()
		if arr.HiddenAt == bp.Name {
			query = bp.MinWidth()
		}
		sb.WriteString(query + " {\n  .BannerActionsContainer[data-hidden-at=\"" + arr.HiddenAt + "\"] { display: none; }\n}\n")
	}
	return sb.String()
}
