package streams

import "errors"

var (
	// ErrUpstreamUnavailable indicates the platform could not be reached or
	// answered with an unusable response.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	// ErrUnavailable indicates the video itself cannot be served (private,
	// removed, age or geo restricted).
	ErrUnavailable = errors.New("video unavailable")
	// ErrNoPlayableFormats indicates enumeration succeeded but yielded no
	// usable stream variants.
	ErrNoPlayableFormats = errors.New("no playable formats")
)
