package streams

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/kkdai/youtube/v2"
)

const defaultTimeout = 10 * time.Second

// Client enumerates stream variants through the platform's player API.
type Client struct {
	yt      *youtube.Client
	timeout time.Duration
}

// NewClient creates a stream enumeration client. A nil httpClient falls back
// to http.DefaultClient.
func NewClient(httpClient *http.Client, timeout time.Duration) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		yt:      &youtube.Client{HTTPClient: httpClient},
		timeout: timeout,
	}
}

// Enumerate fetches the video's stream inventory. The returned error is
// always one of the package sentinels (wrapped with detail).
func (c *Client) Enumerate(ctx context.Context, videoID string) (*Inventory, error) {
	ctx, cancel := withDefaultTimeout(ctx, c.timeout)
	defer cancel()

	video, err := c.yt.GetVideoContext(ctx, videoID)
	if err != nil {
		return nil, mapError(err)
	}

	inv := &Inventory{
		VideoID:     videoID,
		Title:       video.Title,
		Author:      video.Author,
		DurationSec: int64(video.Duration.Seconds()),
		Variants:    make([]Variant, 0, len(video.Formats)),
		video:       video,
	}
	for i := range video.Formats {
		f := &video.Formats[i]
		inv.Variants = append(inv.Variants, Variant{
			Itag:           f.ItagNo,
			URL:            f.URL,
			MimeType:       f.MimeType,
			Quality:        f.Quality,
			QualityLabel:   f.QualityLabel,
			Bitrate:        f.Bitrate,
			AverageBitrate: f.AverageBitrate,
			Width:          f.Width,
			Height:         f.Height,
			FPS:            f.FPS,
			SizeBytes:      f.ContentLength,
			AudioQuality:   f.AudioQuality,
			AudioChannels:  f.AudioChannels,
			HasAudio:       f.AudioChannels > 0,
			HasVideo:       f.Width > 0 || f.Height > 0,
			Verified:       true,
		})
	}
	if len(inv.Variants) == 0 {
		return nil, fmt.Errorf("%w: video=%s", ErrNoPlayableFormats, videoID)
	}
	return inv, nil
}

// ResolveVariantURL returns a direct playable URL for the variant, running
// the platform's URL deciphering when the enumerated URL is not plain.
func (c *Client) ResolveVariantURL(ctx context.Context, inv *Inventory, v Variant) (string, error) {
	if v.URL != "" {
		return v.URL, nil
	}
	if inv == nil || inv.video == nil {
		return "", fmt.Errorf("%w: itag=%d", ErrNoPlayableFormats, v.Itag)
	}

	ctx, cancel := withDefaultTimeout(ctx, c.timeout)
	defer cancel()

	for i := range inv.video.Formats {
		f := &inv.video.Formats[i]
		if f.ItagNo != v.Itag {
			continue
		}
		resolved, err := c.yt.GetStreamURLContext(ctx, inv.video, f)
		if err != nil {
			return "", mapError(err)
		}
		return resolved, nil
	}
	return "", fmt.Errorf("%w: itag=%d", ErrNoPlayableFormats, v.Itag)
}

// mapError folds the upstream library's error surface into the package
// taxonomy, keeping the original detail in the wrapped message.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, youtube.ErrVideoPrivate),
		errors.Is(err, youtube.ErrLoginRequired),
		errors.Is(err, youtube.ErrNotPlayableInEmbed):
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	case errors.Is(err, youtube.ErrInvalidCharactersInVideoID),
		errors.Is(err, youtube.ErrVideoIDMinLength):
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var statusErr *youtube.ErrPlayabiltyStatus
	if errors.As(err, &statusErr) {
		return fmt.Errorf("%w: %s: %s", ErrUnavailable, statusErr.Status, statusErr.Reason)
	}

	return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
}

func withDefaultTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}
