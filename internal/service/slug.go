package service

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/mozillazg/go-unidecode"
)

var slugSeparators = regexp.MustCompile(`[^a-z0-9]+`)

// GenerateSlug turns a human title into a URL-safe slug: transliterated to
// ASCII, lower-cased, with runs of non-alphanumerics collapsed to single
// hyphens. "Bahçe Düzenleme" becomes "bahce-duzenleme".
func GenerateSlug(title string) string {
	s := unidecode.Unidecode(strings.TrimSpace(title))
	s = strings.ToLower(s)
	s = slugSeparators.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// timestampSlug disambiguates a colliding slug with a millisecond suffix.
func timestampSlug(base string) string {
	return fmt.Sprintf("%s-%d", base, time.Now().UnixMilli())
}
