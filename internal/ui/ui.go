// Package ui contains the user interface.
package ui

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/ErikKalkoken/jsontreeview/internal/jsonvalue"
	"github.com/ErikKalkoken/jsontreeview/internal/treerender"
	"github.com/ErikKalkoken/jsontreeview/internal/treestate"
)

const (
	appTitle    = "JSON Tree Viewer"
	githubOwner = "ErikKalkoken"
	githubRepo  = "jsontreeview"
	websiteURL  = "https://github.com/ErikKalkoken/jsontreeview"
)

// setting keys
const (
	settingWindowWidth  = "main-window-width"
	settingWindowHeight = "main-window-height"
)

// UI represents the user interface of this app.
type UI struct {
	app    fyne.App
	window fyne.Window

	document    jsonvalue.Node
	hasDocument bool
	state       treestate.State
	output      *treerender.Output

	editor    *editorFrame
	toolbar   *toolbar
	selection *selectionFrame
	statusbar *statusBarFrame
	treeArea  *container.Scroll

	fileMenu    *fyne.Menu
	currentFile fyne.URI
}

// NewUI returns a new UI object.
func NewUI() *UI {
	a := app.NewWithID("com.github.ErikKalkoken.jsontreeview")
	u := &UI{
		app:    a,
		window: a.NewWindow(appTitle),
	}
	u.treeArea = container.NewScroll(widget.NewLabel(""))
	u.editor = u.newEditorFrame()
	u.toolbar = newToolbar(u)
	u.selection = newSelectionFrame(u)
	u.statusbar = u.newStatusBarFrame()
	u.toolbar.disable()

	treeSide := container.NewBorder(u.toolbar, nil, nil, nil, u.treeArea)
	sidePanel := container.NewVSplit(u.editor.content, u.selection)
	sidePanel.Offset = 0.4
	hsplit := container.NewHSplit(treeSide, sidePanel)
	hsplit.Offset = 0.65
	c := container.NewBorder(
		nil,
		container.NewVBox(widget.NewSeparator(), u.statusbar.content),
		nil,
		nil,
		hsplit,
	)
	u.window.SetContent(c)
	u.window.SetMainMenu(u.makeMenu())
	u.updateRecentFilesMenu()
	u.window.SetMaster()
	s := fyne.Size{
		Width:  float32(a.Preferences().FloatWithFallback(settingWindowWidth, 1000)),
		Height: float32(a.Preferences().FloatWithFallback(settingWindowHeight, 700)),
	}
	u.window.Resize(s)
	u.window.SetOnClosed(func() {
		a.Preferences().SetFloat(settingWindowWidth, float64(u.window.Canvas().Size().Width))
		a.Preferences().SetFloat(settingWindowHeight, float64(u.window.Canvas().Size().Height))
	})
	return u
}

// ShowAndRun shows the main window and runs the app. This method is blocking.
func (u *UI) ShowAndRun() {
	u.window.ShowAndRun()
}

// LoadFile loads a JSON document from a file into the tree view.
func (u *UI) LoadFile(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	reader, err := storage.Reader(storage.NewFileURI(abs))
	if err != nil {
		return err
	}
	defer reader.Close()
	return u.loadDocument(reader)
}

// setDocument makes node the current document and renders it fully expanded.
func (u *UI) setDocument(node jsonvalue.Node) {
	u.document = node
	u.hasDocument = true
	u.state = treestate.ExpandAll()
	u.selection.reset()
	u.toolbar.enable()
	u.statusbar.set(jsonvalue.Size(node))
	u.redraw()
}

// applyState makes s the current collapse state and renders the document again.
// It is handed to the renderer as the state callback of interactive elements.
func (u *UI) applyState(s treestate.State) {
	u.state = s
	u.redraw()
}

func (u *UI) redraw() {
	if !u.hasDocument {
		return
	}
	cfg := treerender.Config{
		OnSelect: u.selectPath,
		ToMsg:    u.applyState,
	}
	u.output = treerender.Render(cfg, u.document, u.state)
	u.treeArea.Content = u.output.Root
	u.treeArea.Refresh()
}

func (u *UI) selectPath(p jsonvalue.Path) {
	u.selection.set(p)
}

// revealPath expands all ancestors of p so the node becomes visible.
func (u *UI) revealPath(p jsonvalue.Path) {
	s := u.state
	for _, q := range p.Segments() {
		s = treestate.Expand(q, s)
	}
	u.applyState(s)
}

func (u *UI) loadDocument(reader fyne.URIReadCloser) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	node, err := jsonvalue.Parse(data)
	if err != nil {
		return err
	}
	u.setDocument(node)
	slog.Info("Loaded JSON document", "size", jsonvalue.Size(node))
	if uri := reader.URI(); uri != nil {
		u.setTitle(uri.Name())
		u.addRecentFile(uri)
		u.currentFile = uri
	}
	return nil
}

func (u *UI) showErrorDialog(message string, err error) {
	slog.Error(message, "err", err)
	d := dialog.NewInformation("Error", message, u.window)
	d.Show()
}

func (u *UI) setTitle(fileName string) {
	var s string
	if fileName != "" {
		s = fmt.Sprintf("%s - %s", fileName, u.appName())
	} else {
		s = u.appName()
	}
	u.window.SetTitle(s)
}

func (u *UI) appName() string {
	info := u.app.Metadata()
	if info.Name != "" {
		return info.Name
	}
	return appTitle
}
