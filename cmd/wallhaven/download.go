package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/dixieflatline76/wallhaven/pkg/download"
	"github.com/dixieflatline76/wallhaven/pkg/wallhaven"
)

var (
	downloadCmdFlags searchFlags
	downloadDir      string
	downloadWorkers  int
)

var downloadCmd = &cobra.Command{
	Use:   "download [free text]",
	Short: "Search wallpapers and download the image files",
	RunE: func(cmd *cobra.Command, args []string) error {
		params, err := downloadCmdFlags.values(args)
		if err != nil {
			return err
		}

		pages, err := client.SearchPages(params)
		if err != nil {
			return err
		}

		dir := downloadDir
		if dir == "" {
			dir = cfg.DownloadDir
		}
		d := download.New(&http.Client{Timeout: cfg.Timeout})

		var total int
		err = downloadCmdFlags.walk(cmd, pages, func(wallpapers []wallhaven.Wallpaper, meta *wallhaven.Meta) {
			paths, err := d.FetchAll(cmd.Context(), wallpapers, dir, downloadWorkers)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "page %d failed: %v\n", meta.CurrentPage, err)
				return
			}
			for _, path := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			total += len(paths)
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "downloaded %d wallpapers to %s\n", total, dir)
		return nil
	},
}

func init() {
	downloadCmdFlags.register(downloadCmd)
	downloadCmd.Flags().StringVar(&downloadDir, "dir", "", "target directory (defaults to WALLHAVEN_DOWNLOAD_DIR)")
	downloadCmd.Flags().IntVar(&downloadWorkers, "workers", download.DefaultWorkers, "concurrent downloads per page")
	rootCmd.AddCommand(downloadCmd)
}
