package main

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dixieflatline76/wallhaven/pkg/query"
	"github.com/dixieflatline76/wallhaven/pkg/wallhaven"
)

// searchFlags collects the search parameter flags shared by the search and
// download commands. Each command binds its own instance.
type searchFlags struct {
	include     []string
	exclude     []string
	username    string
	imageType   string
	categories  string
	purity      string
	sorting     string
	order       string
	topRange    string
	atLeast     string
	resolutions []string
	ratios      []string
	colors      string
	seed        string
	pages       int
}

func (f *searchFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&f.include, "tag", nil, "tag to require (repeatable)")
	cmd.Flags().StringSliceVar(&f.exclude, "exclude-tag", nil, "tag to exclude (repeatable)")
	cmd.Flags().StringVar(&f.username, "user", "", "limit results to this uploader")
	cmd.Flags().StringVar(&f.imageType, "type", "", "image type: png, jpg or jpeg")
	cmd.Flags().StringVar(&f.categories, "categories", "", "category bits, e.g. 100 for general only")
	cmd.Flags().StringVar(&f.purity, "purity", "", "purity bits, e.g. 110 for sfw+sketchy")
	cmd.Flags().StringVar(&f.sorting, "sorting", "", "sort: date_added, relevance, random, views, favorites, toplist")
	cmd.Flags().StringVar(&f.order, "order", "", "sort order: asc or desc")
	cmd.Flags().StringVar(&f.topRange, "top-range", "", "toplist range: 1d, 3d, 1w, 1M, 3M, 6M, 1y")
	cmd.Flags().StringVar(&f.atLeast, "atleast", "", "minimum resolution, e.g. 1920x1080")
	cmd.Flags().StringSliceVar(&f.resolutions, "resolutions", nil, "exact resolutions (repeatable)")
	cmd.Flags().StringSliceVar(&f.ratios, "ratios", nil, "aspect ratios (repeatable)")
	cmd.Flags().StringVar(&f.colors, "colors", "", "dominant color as 6 hex digits, e.g. 336699")
	cmd.Flags().StringVar(&f.seed, "seed", "", "seed for random sorting")
	cmd.Flags().IntVar(&f.pages, "pages", 1, "number of result pages to walk (0 for all)")
}

// values assembles the validated search parameters, combining the free text
// arguments with the tag/user/type flags into the q term.
func (f *searchFlags) values(args []string) (url.Values, error) {
	q, err := query.BuildQ(f.include, f.exclude, f.username, f.imageType)
	if err != nil {
		return nil, err
	}
	if len(args) > 0 {
		free := strings.Join(args, " ")
		if q != "" {
			q += "%20" + free
		} else {
			q = free
		}
	}

	opts := query.SearchOptions{
		Query:       q,
		Categories:  f.categories,
		Purity:      f.purity,
		Sorting:     f.sorting,
		Order:       f.order,
		TopRange:    f.topRange,
		AtLeast:     f.atLeast,
		Resolutions: f.resolutions,
		Ratios:      f.ratios,
		Colors:      f.colors,
		Seed:        f.seed,
	}
	return opts.Values()
}

// walk runs the page iterator, invoking visit per page, bounded by --pages.
func (f *searchFlags) walk(cmd *cobra.Command, pages *wallhaven.Pages, visit func([]wallhaven.Wallpaper, *wallhaven.Meta)) error {
	fetched := 0
	for pages.Next(cmd.Context()) {
		visit(pages.Wallpapers(), pages.Meta())
		fetched++
		if f.pages > 0 && fetched >= f.pages {
			break
		}
	}
	return pages.Err()
}

var searchCmdFlags searchFlags

var searchCmd = &cobra.Command{
	Use:   "search [free text]",
	Short: "Search wallpapers",
	RunE: func(cmd *cobra.Command, args []string) error {
		params, err := searchCmdFlags.values(args)
		if err != nil {
			return err
		}

		pages, err := client.SearchPages(params)
		if err != nil {
			return err
		}

		return searchCmdFlags.walk(cmd, pages, func(wallpapers []wallhaven.Wallpaper, meta *wallhaven.Meta) {
			fmt.Fprintf(cmd.OutOrStdout(), "page %d/%d (%d total)\n", meta.CurrentPage, meta.LastPage, meta.Total)
			for _, w := range wallpapers {
				printWallpaper(cmd, w)
			}
		})
	},
}

func printWallpaper(cmd *cobra.Command, w wallhaven.Wallpaper) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s  %-11s %-7s %s\n", w.ID, w.Resolution, w.Purity, w.ShortURL)
}

func init() {
	searchCmdFlags.register(searchCmd)
	rootCmd.AddCommand(searchCmd)
}
