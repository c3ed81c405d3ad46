package ytid

import (
	"errors"
	"regexp"
	"strings"
)

// ErrInvalidInput indicates the input matched no known video URL or ID shape.
var ErrInvalidInput = errors.New("invalid youtube url or video id")

var (
	bareIDPattern = regexp.MustCompile(`^[0-9A-Za-z_-]{11}$`)

	// URL shapes are tried in order; the first capture wins. The strict
	// pattern recognizes canonical hosts, the loose one catches partial
	// URLs and the vi=/vi/ parameter forms.
	urlPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/|youtube\.com/v/|youtube\.com/shorts/)([0-9A-Za-z_-]{11})`),
		regexp.MustCompile(`(?:v=|v/|vi=|vi/|youtu\.be/|embed/|shorts/)([0-9A-Za-z_-]{11})`),
	}
)

// Extract accepts either a raw 11-character video ID or common YouTube URL
// shapes (watch, youtu.be, embed, /v/, shorts, vi=) and returns the canonical
// identifier. Case is preserved. A string that is exactly 11 identifier
// characters is accepted as a bare ID after all URL patterns have failed.
func Extract(input string) (string, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", ErrInvalidInput
	}
	for _, p := range urlPatterns {
		if m := p.FindStringSubmatch(s); len(m) == 2 {
			return m[1], nil
		}
	}
	if bareIDPattern.MatchString(s) {
		return s, nil
	}
	return "", ErrInvalidInput
}
