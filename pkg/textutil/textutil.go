// Package textutil holds small string formatting helpers used by the CLI.
package textutil

import (
	"fmt"
	"strings"
	"time"
)

// SplitAtUpperCase inserts a space before every ASCII uppercase letter and
// every digit 1-9, except when it is the first character.
//
//	SplitAtUpperCase("HelloWorld2") == "Hello World 2"
func SplitAtUpperCase(source string) string {
	if source == "" {
		return source
	}

	var b strings.Builder
	b.Grow(len(source) + len(source)/4)
	for i, r := range source {
		if i > 0 && splitsBefore(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func splitsBefore(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= '1' && r <= '9')
}

// ShortDuration renders d as "m:ss", "mm:ss" or "h:mm:ss".
// Days are not rendered; only the hour-of-day component is shown.
func ShortDuration(d time.Duration) string {
	if d < 0 {
		d = -d
	}
	hours := int(d/time.Hour) % 24
	minutes := int(d/time.Minute) % 60
	seconds := int(d/time.Second) % 60

	var b strings.Builder
	if hours > 0 {
		fmt.Fprintf(&b, "%d:", hours)
	}
	if minutes > 9 || hours > 0 {
		fmt.Fprintf(&b, "%02d:%02d", minutes, seconds)
	} else {
		fmt.Fprintf(&b, "%d:%02d", minutes, seconds)
	}
	return b.String()
}
