package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"github.com/ErikKalkoken/jsontreeview/internal/treestate"
)

// toolbar holds the view controls for the rendered tree.
type toolbar struct {
	widget.BaseWidget

	collapseAll    *ttwidget.Button
	collapseLevel1 *ttwidget.Button
	collapseLevel2 *ttwidget.Button
	expandAll      *ttwidget.Button
	scrollBottom   *ttwidget.Button
	scrollTop      *ttwidget.Button
	u              *UI
}

func newToolbar(u *UI) *toolbar {
	w := &toolbar{u: u}
	w.ExtendBaseWidget(w)
	w.expandAll = ttwidget.NewButtonWithIcon("", theme.ViewFullScreenIcon(), func() {
		u.applyState(treestate.ExpandAll())
	})
	w.expandAll.SetToolTip("Expand all")
	w.collapseAll = ttwidget.NewButtonWithIcon("", theme.ViewRestoreIcon(), func() {
		u.applyState(treestate.CollapseToDepth(0, u.document))
	})
	w.collapseAll.SetToolTip("Collapse all")
	w.collapseLevel1 = ttwidget.NewButton("1", func() {
		u.applyState(treestate.CollapseToDepth(1, u.document))
	})
	w.collapseLevel1.SetToolTip("Collapse to level 1")
	w.collapseLevel2 = ttwidget.NewButton("2", func() {
		u.applyState(treestate.CollapseToDepth(2, u.document))
	})
	w.collapseLevel2.SetToolTip("Collapse to level 2")
	w.scrollTop = ttwidget.NewButtonWithIcon("", theme.MoveUpIcon(), func() {
		u.treeArea.ScrollToTop()
	})
	w.scrollTop.SetToolTip("Scroll to top")
	w.scrollBottom = ttwidget.NewButtonWithIcon("", theme.MoveDownIcon(), func() {
		u.treeArea.ScrollToBottom()
	})
	w.scrollBottom.SetToolTip("Scroll to bottom")
	return w
}

func (w *toolbar) enable() {
	w.collapseAll.Enable()
	w.collapseLevel1.Enable()
	w.collapseLevel2.Enable()
	w.expandAll.Enable()
	w.scrollBottom.Enable()
	w.scrollTop.Enable()
}

func (w *toolbar) disable() {
	w.collapseAll.Disable()
	w.collapseLevel1.Disable()
	w.collapseLevel2.Disable()
	w.expandAll.Disable()
	w.scrollBottom.Disable()
	w.scrollTop.Disable()
}

func (w *toolbar) CreateRenderer() fyne.WidgetRenderer {
	c := container.NewHBox(
		w.expandAll,
		w.collapseAll,
		w.collapseLevel1,
		w.collapseLevel2,
		layout.NewSpacer(),
		w.scrollTop,
		w.scrollBottom,
	)
	return widget.NewSimpleRenderer(c)
}
