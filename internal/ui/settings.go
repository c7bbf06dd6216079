package ui

import (
	"errors"
	"log/slog"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// setting keys and defaults
const (
	settingNotifyUpdates          = "notify-updates"
	settingNotifyUpdatesDefault   = true
	settingRecentFileCount        = "recent-file-count"
	settingRecentFileCountDefault = 5
	settingRecentFiles            = "recent-files"
)

func (u *UI) showSettingsDialog() {
	recentEntry := widget.NewEntry()
	recentEntry.Validator = newPositiveNumberValidator()
	recentEntry.OnChanged = func(s string) {
		x, err := strconv.Atoi(s)
		if err != nil {
			slog.Error("Failed to convert", "err", err)
			return
		}
		u.app.Preferences().SetInt(settingRecentFileCount, x)
	}
	x := u.app.Preferences().IntWithFallback(settingRecentFileCount, settingRecentFileCountDefault)
	recentEntry.SetText(strconv.Itoa(x))

	notifyUpdates := widget.NewCheck("enabled", func(v bool) {
		u.app.Preferences().SetBool(settingNotifyUpdates, v)
	})
	notifyUpdates.SetChecked(
		u.app.Preferences().BoolWithFallback(settingNotifyUpdates, settingNotifyUpdatesDefault),
	)

	items := []*widget.FormItem{
		{Text: "Maximum recent files", Widget: recentEntry},
		{Text: "Notify about updates", Widget: notifyUpdates, HintText: "Applied on next start"},
	}
	d := dialog.NewForm("Settings", "Apply", "Cancel", items, func(applied bool) {}, u.window)
	d.Resize(fyne.Size{Width: 400, Height: d.MinSize().Height})
	d.Show()
}

// newPositiveNumberValidator ensures entry is a positive number.
func newPositiveNumberValidator() fyne.StringValidator {
	myErr := errors.New("must be a positive number")
	return func(text string) error {
		val, err := strconv.Atoi(text)
		if err != nil {
			return myErr
		}
		if val <= 0 {
			return myErr
		}
		return nil
	}
}
