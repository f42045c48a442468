// Command wallhaven is a small CLI over the wallhaven.cc client library.
// It searches wallpapers, inspects tags and collections, and downloads
// image files.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
