package github

import (
	"fmt"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
)

func TestAvailableUpdate(t *testing.T) {
	httpmock.ActivateNonDefault(client)
	defer httpmock.DeactivateAndReset()
	data := map[string]any{
		"html_url":   "https://github.com/ErikKalkoken/jsontreeview/releases/tag/v0.2.0",
		"id":         164309952,
		"tag_name":   "v0.2.0",
		"name":       "v0.2.0",
		"draft":      false,
		"prerelease": false,
	}
	const latestURL = "https://api.github.com/repos/ErikKalkoken/jsontreeview/releases/latest"
	t.Run("should return new version when available", func(t *testing.T) {
		httpmock.Reset()
		httpmock.RegisterResponder("GET", latestURL,
			httpmock.NewJsonResponderOrPanic(200, data))
		got, x, err := AvailableUpdate("ErikKalkoken", "jsontreeview", "v0.1.0")
		if assert.NoError(t, err) {
			assert.True(t, x)
			assert.Equal(t, "v0.2.0", got)
		}
	})
	t.Run("should report when no new version available", func(t *testing.T) {
		httpmock.Reset()
		httpmock.RegisterResponder("GET", latestURL,
			httpmock.NewJsonResponderOrPanic(200, data))
		got, x, err := AvailableUpdate("ErikKalkoken", "jsontreeview", "v0.2.0")
		if assert.NoError(t, err) {
			assert.False(t, x)
			assert.Equal(t, "v0.2.0", got)
		}
	})
	t.Run("should report error when request failed", func(t *testing.T) {
		httpmock.Reset()
		httpmock.RegisterResponder("GET", latestURL,
			httpmock.NewErrorResponder(fmt.Errorf("some error")))
		_, _, err := AvailableUpdate("ErikKalkoken", "jsontreeview", "v0.2.0")
		assert.Error(t, err)
	})
	t.Run("should report error when status is an error", func(t *testing.T) {
		httpmock.Reset()
		httpmock.RegisterResponder("GET", latestURL,
			httpmock.NewStringResponder(404, "not found"))
		_, _, err := AvailableUpdate("ErikKalkoken", "jsontreeview", "v0.2.0")
		assert.ErrorIs(t, err, ErrHttpError)
	})
	t.Run("should report error when current version is invalid", func(t *testing.T) {
		httpmock.Reset()
		_, _, err := AvailableUpdate("ErikKalkoken", "jsontreeview", "invalid")
		assert.Error(t, err)
	})
}
