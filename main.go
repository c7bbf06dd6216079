// jsontreeview is a desktop app for browsing JSON documents as an interactive tree.
package main

import (
	"log/slog"
	"os"

	"github.com/ErikKalkoken/jsontreeview/internal/ui"
)

func main() {
	u := ui.NewUI()
	if len(os.Args) > 1 {
		path := os.Args[1]
		if err := u.LoadFile(path); err != nil {
			slog.Error("Failed to load file", "path", path, "err", err)
		}
	}
	u.ShowAndRun()
}
