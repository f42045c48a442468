package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dixieflatline76/wallhaven/pkg/query"
	"github.com/dixieflatline76/wallhaven/pkg/wallhaven"
)

var wallpaperCmd = &cobra.Command{
	Use:   "wallpaper <id>",
	Short: "Show one wallpaper by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := client.Wallpaper(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "id:         %s\n", w.ID)
		fmt.Fprintf(out, "url:        %s\n", w.URL)
		fmt.Fprintf(out, "resolution: %s\n", w.Resolution)
		fmt.Fprintf(out, "purity:     %s\n", w.Purity)
		fmt.Fprintf(out, "category:   %s\n", w.Category)
		fmt.Fprintf(out, "file:       %s (%d bytes)\n", w.Path, w.FileSize)
		fmt.Fprintf(out, "uploader:   %s\n", w.Uploader.Username)
		if len(w.Tags) > 0 {
			names := make([]string, len(w.Tags))
			for i, t := range w.Tags {
				names[i] = t.Name
			}
			fmt.Fprintf(out, "tags:       %s\n", strings.Join(names, ", "))
		}
		return nil
	},
}

var tagCmd = &cobra.Command{
	Use:   "tag <id>",
	Short: "Show one tag by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("tag ID must be a number: %q", args[0])
		}

		t, err := client.Tag(cmd.Context(), id)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "id:       %d\n", t.ID)
		fmt.Fprintf(out, "name:     %s\n", t.Name)
		fmt.Fprintf(out, "category: %s\n", t.Category)
		fmt.Fprintf(out, "purity:   %s\n", t.Purity)
		if t.Alias != "" {
			fmt.Fprintf(out, "aliases:  %s\n", t.Alias)
		}
		return nil
	},
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show the account settings of the API key owner",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := client.UserSettings(cmd.Context())
		if err != nil {
			return err
		}

		purity, err := query.PurityString(s.Purity)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "thumb size:    %s\n", s.ThumbSize)
		fmt.Fprintf(out, "per page:      %d\n", s.PerPage)
		fmt.Fprintf(out, "purity:        %s (%s)\n", strings.Join(s.Purity, ", "), purity)
		fmt.Fprintf(out, "categories:    %s\n", strings.Join(s.Categories, ", "))
		fmt.Fprintf(out, "toplist range: %s\n", s.ToplistRange)
		return nil
	},
}

var collectionsCmd = &cobra.Command{
	Use:   "collections [username]",
	Short: "List collections, yours or another user's",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			cols []wallhaven.Collection
			err  error
		)
		if len(args) == 1 {
			cols, err = client.UserCollections(cmd.Context(), args[0])
		} else {
			cols, err = client.Collections(cmd.Context())
		}
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, col := range cols {
			visibility := "private"
			if col.Public == 1 {
				visibility = "public"
			}
			fmt.Fprintf(out, "%6d  %-8s %4d wallpapers  %s\n", col.ID, visibility, col.Count, col.Label)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(wallpaperCmd, tagCmd, settingsCmd, collectionsCmd)
}
