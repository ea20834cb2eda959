//go:build unit

package jst_test

import (
	"testing"
	"time"

	"srs-scheduler/internal/pkg/jst"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	// 2025-01-15T00:30:00Z is 09:30 the same day in JST
	utc := time.Date(2025, 1, 15, 0, 30, 0, 0, time.UTC)
	assert.Equal(t, "2025-01-15T09:30:00+09:00", jst.Render(utc))

	// crossing midnight
	late := time.Date(2025, 1, 15, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-01-16T08:00:00+09:00", jst.Render(late))
}

func TestRenderUTC(t *testing.T) {
	// non-UTC input is normalized
	inJST := time.Date(2025, 1, 15, 9, 30, 0, 0, jst.Zone)
	assert.Equal(t, "2025-01-15T00:30:00Z", jst.RenderUTC(inJST))
}

func TestRenderSameInstant(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)

	parsed, err := time.Parse(time.RFC3339, jst.Render(now))
	assert.NoError(t, err)
	assert.True(t, parsed.Equal(now), "JST rendering must preserve the instant")
}
