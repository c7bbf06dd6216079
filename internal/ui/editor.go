package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"github.com/ErikKalkoken/jsontreeview/internal/jsonvalue"
)

// editorFrame lets the user paste raw JSON text and show it as a tree.
type editorFrame struct {
	content *fyne.Container
	ui      *UI

	entry *widget.Entry
}

func (u *UI) newEditorFrame() *editorFrame {
	f := &editorFrame{
		ui:    u,
		entry: widget.NewMultiLineEntry(),
	}
	f.entry.SetPlaceHolder("Paste JSON text here...")
	f.entry.OnSubmitted = func(string) {
		f.show()
	}
	showButton := ttwidget.NewButtonWithIcon("Show", theme.MediaPlayIcon(), func() {
		f.show()
	})
	showButton.SetToolTip("Parse the text and show it as a tree")
	clearButton := ttwidget.NewButtonWithIcon("", theme.ContentClearIcon(), func() {
		f.entry.SetText("")
	})
	clearButton.SetToolTip("Clear the text")
	f.content = container.NewBorder(
		nil,
		container.NewHBox(showButton, clearButton),
		nil,
		nil,
		f.entry,
	)
	return f
}

func (f *editorFrame) show() {
	node, err := jsonvalue.Parse([]byte(f.entry.Text))
	if err != nil {
		f.ui.showErrorDialog("Failed to parse JSON", err)
		return
	}
	f.ui.currentFile = nil
	f.ui.setTitle("")
	f.ui.setDocument(node)
}
