package ui

import (
	"log/slog"
	"net/url"
	"slices"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	"github.com/ErikKalkoken/jsontreeview/internal/treestate"
)

func (u *UI) makeMenu() *fyne.MainMenu {
	recentItem := fyne.NewMenuItem("Open Recent", nil)
	recentItem.ChildMenu = fyne.NewMenu("")
	u.fileMenu = fyne.NewMenu("File",
		fyne.NewMenuItem("Open File...", func() {
			dialogOpen := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
				if err != nil {
					u.showErrorDialog("Failed to read folder", err)
					return
				}
				if reader == nil {
					return
				}
				defer reader.Close()
				if err := u.loadDocument(reader); err != nil {
					u.showErrorDialog("Failed to load document", err)
					return
				}
			}, u.window)
			dialogOpen.SetFilter(storage.NewExtensionFileFilter([]string{".json"}))
			dialogOpen.Show()
		}),
		recentItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Reload", func() {
			if u.currentFile == nil {
				return
			}
			reader, err := storage.Reader(u.currentFile)
			if err != nil {
				u.showErrorDialog("Failed to open file", err)
				return
			}
			defer reader.Close()
			if err := u.loadDocument(reader); err != nil {
				u.showErrorDialog("Failed to load document", err)
				return
			}
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Settings...", func() {
			u.showSettingsDialog()
		}),
	)
	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Expand All", func() {
			u.applyState(treestate.ExpandAll())
		}),
		fyne.NewMenuItem("Collapse All", func() {
			u.applyState(treestate.CollapseToDepth(0, u.document))
		}),
		fyne.NewMenuItem("Collapse to level 1", func() {
			u.applyState(treestate.CollapseToDepth(1, u.document))
		}),
		fyne.NewMenuItem("Collapse to level 2", func() {
			u.applyState(treestate.CollapseToDepth(2, u.document))
		}),
	)
	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("Report a bug", func() {
			url, _ := url.Parse(websiteURL + "/issues")
			_ = u.app.OpenURL(url)
		}),
		fyne.NewMenuItem("Website", func() {
			url, _ := url.Parse(websiteURL)
			_ = u.app.OpenURL(url)
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("About...", func() {
			u.showAboutDialog()
		}),
	)
	main := fyne.NewMainMenu(u.fileMenu, viewMenu, helpMenu)
	return main
}

func (u *UI) addRecentFile(uri fyne.URI) {
	max := u.app.Preferences().IntWithFallback(settingRecentFileCount, settingRecentFileCountDefault)
	files := u.app.Preferences().StringList(settingRecentFiles)
	files = addToListWithRotation(files, uri.String(), max)
	u.app.Preferences().SetStringList(settingRecentFiles, files)
	u.updateRecentFilesMenu()
}

func addToListWithRotation(s []string, v string, max int) []string {
	if max < 1 {
		panic("max must be 1 or higher")
	}
	i := slices.Index(s, v)
	if i != -1 {
		s = slices.Delete(s, i, i+1)
	}
	s = slices.Insert(s, 0, v)
	if len(s) > max {
		s = s[0:max]
	}
	return s
}

func (u *UI) updateRecentFilesMenu() {
	files := u.app.Preferences().StringList(settingRecentFiles)
	items := make([]*fyne.MenuItem, 0, len(files))
	for _, f := range files {
		uri, err := storage.ParseURI(f)
		if err != nil {
			slog.Error("Failed to parse URI", "URI", f, "err", err)
			continue
		}
		items = append(items, fyne.NewMenuItem(uri.Path(), func() {
			reader, err := storage.Reader(uri)
			if err != nil {
				dialog.ShowError(err, u.window)
				return
			}
			defer reader.Close()
			if err := u.loadDocument(reader); err != nil {
				dialog.ShowError(err, u.window)
				return
			}
		}))
	}
	u.fileMenu.Items[1].ChildMenu.Items = items
	u.fileMenu.Refresh()
}
