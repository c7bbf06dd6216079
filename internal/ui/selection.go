package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	kxwidget "github.com/ErikKalkoken/fyne-kx/widget"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"github.com/ErikKalkoken/jsontreeview/internal/jsonvalue"
)

const selectionLogMax = 10

// selectionFrame shows the currently selected scalar and a log of recent selections.
type selectionFrame struct {
	widget.BaseWidget

	copyPathClipboard  *ttwidget.Button
	copyValueClipboard *ttwidget.Button
	log                []string
	logList            *widget.List
	selected           jsonvalue.Path
	selectedPath       *fyne.Container
	u                  *UI
	valueDisplay       *widget.Label
	valueRaw           string
}

func newSelectionFrame(u *UI) *selectionFrame {
	w := &selectionFrame{
		selectedPath: container.New(layout.NewCustomPaddedHBoxLayout(-5)),
		u:            u,
		valueDisplay: widget.NewLabel(""),
	}
	w.ExtendBaseWidget(w)
	w.valueDisplay.Truncation = fyne.TextTruncateEllipsis
	w.copyPathClipboard = ttwidget.NewButtonWithIcon("", theme.ContentCopyIcon(), func() {
		u.app.Clipboard().SetContent(string(w.selected))
	})
	w.copyPathClipboard.SetToolTip("Copy path to clipboard")
	w.copyPathClipboard.Disable()
	w.copyValueClipboard = ttwidget.NewButtonWithIcon("", theme.ContentCopyIcon(), func() {
		u.app.Clipboard().SetContent(w.valueRaw)
	})
	w.copyValueClipboard.SetToolTip("Copy value to clipboard")
	w.copyValueClipboard.Disable()
	w.logList = widget.NewList(
		func() int {
			return len(w.log)
		},
		func() fyne.CanvasObject {
			l := widget.NewLabel("")
			l.Truncation = fyne.TextTruncateEllipsis
			return l
		},
		func(id widget.ListItemID, co fyne.CanvasObject) {
			co.(*widget.Label).SetText(w.log[id])
		},
	)
	return w
}

func (w *selectionFrame) reset() {
	w.selectedPath.RemoveAll()
	w.valueDisplay.SetText("")
	w.copyPathClipboard.Disable()
	w.copyValueClipboard.Disable()
	w.selected = ""
	w.log = nil
	w.logList.Refresh()
}

// set records the selection of the scalar node with the given path.
func (w *selectionFrame) set(p jsonvalue.Path) {
	w.selected = p
	w.setBreadcrumb(p)
	w.copyPathClipboard.Enable()
	node, found := jsonvalue.Find(w.u.document, p)
	if found {
		w.valueRaw = node.Display()
		w.valueDisplay.SetText(w.valueRaw)
		w.copyValueClipboard.Enable()
	} else {
		w.valueDisplay.SetText("")
		w.copyValueClipboard.Disable()
	}
	w.log = addToListWithRotation(w.log, string(p), selectionLogMax)
	w.logList.Refresh()
}

// setBreadcrumb renders p as a trail of tappable segments.
// Tapping a segment reveals that ancestor in the tree.
func (w *selectionFrame) setBreadcrumb(p jsonvalue.Path) {
	w.selectedPath.RemoveAll()
	segments := p.Segments()
	previous := ""
	for i, segment := range segments {
		text := string(segment)[len(previous):]
		if segment == "" {
			text = "$"
		}
		previous = string(segment)
		isLast := i == len(segments)-1
		if isLast {
			l := widget.NewLabel(text)
			l.TextStyle.Bold = true
			w.selectedPath.Add(l)
			continue
		}
		l := kxwidget.NewTappableLabel(text, func() {
			w.u.revealPath(segment)
		})
		w.selectedPath.Add(l)
	}
}

func (w *selectionFrame) CreateRenderer() fyne.WidgetRenderer {
	pathRow := container.NewBorder(
		nil,
		nil,
		nil,
		w.copyPathClipboard,
		container.NewHScroll(w.selectedPath),
	)
	valueRow := container.NewBorder(
		nil,
		nil,
		nil,
		w.copyValueClipboard,
		w.valueDisplay,
	)
	c := container.NewBorder(
		container.NewVBox(pathRow, valueRow, widget.NewSeparator()),
		nil,
		nil,
		nil,
		w.logList,
	)
	return widget.NewSimpleRenderer(c)
}
