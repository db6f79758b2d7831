package service

import (
	"strconv"
	"strings"
	"time"
)

// DeriveSlug builds a URL slug from a recipe title: lower-cased, runs of
// non-alphanumeric characters collapsed to a single dash, suffixed with the
// creation timestamp in milliseconds so equal titles never collide.
func DeriveSlug(title string, at time.Time) string {
	var b strings.Builder
	prevDash := false
	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			prevDash = false
		} else if !prevDash {
			b.WriteByte('-')
			prevDash = true
		}
	}
	return b.String() + "-" + strconv.FormatInt(at.UnixMilli(), 10)
}
