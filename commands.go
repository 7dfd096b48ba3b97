package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/serr"
	"github.com/spf13/cobra"

	"bannerkit/web"
	"bannerkit/web/pages"
	"bannerkit/web/pages/shared"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the story gallery",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return web.Run(web.NewServer(a.cfg, a.catalog), a.cfg)
		},
	}
}

func newStoriesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stories",
		Short: "List the available stories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tTITLE\tBANNERS\tSOURCE")
			for _, st := range a.catalog.All() {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", st.Name, st.Title, len(st.Banners), st.Source)
			}
			return w.Flush()
		},
	}
}

type renderOptions struct {
	noChecks bool
}

func newRenderCmd(a *app) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <story>",
		Short: "Print the HTML page of a story",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			site := a.site()
			if opts.noChecks {
				site.Checks = false
			}
			out, err := renderStory(a, site, args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().BoolVar(&opts.noChecks, "no-checks", false, "Skip the accessible title check")

	return cmd
}

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check [story...]",
		Short: "Render stories with checks on and report failures",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args
			if len(names) == 0 {
				for _, st := range a.catalog.All() {
					names = append(names, st.Name)
				}
			}

			site := a.site()
			site.Checks = true

			failed := 0
			for _, name := range names {
				if _, err := renderStory(a, site, name); err != nil {
					failed++
					logger.LogErr(err, "story check failed", "story", name)
					fmt.Fprintf(cmd.OutOrStdout(), "FAIL  %s: %v\n", name, err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "ok    %s\n", name)
			}
			if failed > 0 {
				return serr.F("%d of %d stories failed", failed, len(names))
			}
			return nil
		},
	}
}

func renderStory(a *app, site shared.Site, name string) (string, error) {
	st, ok := a.catalog.Get(name)
	if !ok {
		return "", serr.New("story not found", "story", name)
	}
	page, err := pages.NewStoryPage(site, st)
	if err != nil {
		return "", err
	}
	return page.Render()
}
