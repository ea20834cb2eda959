// Package jst renders UTC instants in Japan Standard Time for display.
// JST is a fixed +09:00 offset with no DST, so a FixedZone is used rather
// than the IANA database.
package jst

import "time"

var Zone = time.FixedZone("JST", 9*60*60)

// Render formats an instant as ISO-8601 with the +09:00 offset.
func Render(t time.Time) string {
	return t.In(Zone).Format(time.RFC3339)
}

// RenderUTC formats an instant as ISO-8601 UTC.
func RenderUTC(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
