package compose

import (
	"fmt"
	"math"
	"time"

	"github.com/masumvai/proytdl/internal/meta"
	"github.com/masumvai/proytdl/internal/streams"
	"github.com/masumvai/proytdl/internal/ytid"
)

// Params are the request-scoped composition inputs.
type Params struct {
	Type             streams.LinkType
	Quality          streams.Quality
	DownloadRedirect bool
}

// Result is the composer outcome: either a JSON payload or an HTTP redirect
// to a single download link.
type Result struct {
	Redirect bool
	Location string
	Payload  *ResolvePayload
}

// ComposeResolve assembles the /api/resolve outcome. When DownloadRedirect is
// set and exactly one link type was requested and produced a link, the result
// is a redirect instead of a JSON body.
func ComposeResolve(videoID string, md meta.Metadata, links LinkSet, p Params, start, end time.Time) Result {
	if p.DownloadRedirect {
		switch {
		case p.Type == streams.LinkTypeVideo && links.Video != nil:
			return Result{Redirect: true, Location: links.Video.URL}
		case p.Type == streams.LinkTypeAudio && links.Audio != nil:
			return Result{Redirect: true, Location: links.Audio.URL}
		}
	}

	return Result{Payload: &ResolvePayload{
		APIDev:             APIDev,
		APIChannel:         APIChannel,
		TimeS:              Elapsed(start, end),
		VideoID:            videoID,
		Title:              md.Title,
		Author:             md.Author,
		Thumbnail:          md.ThumbnailURL,
		Type:               string(p.Type),
		Quality:            string(p.Quality),
		Data:               links,
		Note:               linkNote,
		AlternativeMethods: streams.ExternalServices(videoID),
	}}
}

// ComposeInfo assembles the metadata-only /api/info payload.
func ComposeInfo(videoID string, md meta.Metadata, start, end time.Time) *InfoPayload {
	return &InfoPayload{
		Success:       true,
		TimeS:         Elapsed(start, end),
		VideoID:       videoID,
		Title:         md.Title,
		Author:        md.Author,
		Thumbnail:     md.ThumbnailURL,
		Duration:      durationOrNil(md.DurationSec),
		VideoURL:      ytid.WatchURL(videoID),
		EmbedURL:      ytid.EmbedURL(videoID),
		ThumbnailURLs: ytid.Thumbnails(videoID),
	}
}

// ComposeFormats assembles the categorized /api/formats payload.
func ComposeFormats(inv *streams.Inventory, start, end time.Time) *FormatsPayload {
	progressive, videoOnly, audioOnly := streams.Categorize(inv.Variants)
	return &FormatsPayload{
		TimeS:    Elapsed(start, end),
		VideoID:  inv.VideoID,
		Title:    inv.Title,
		Author:   inv.Author,
		Duration: durationOrNil(inv.DurationSec),
		Formats: FormatGroups{
			Progressive: toEntries(progressive),
			VideoOnly:   toEntries(videoOnly),
			AudioOnly:   toEntries(audioOnly),
		},
	}
}

// VariantLink converts an enumerated variant plus its resolved URL to a Link.
func VariantLink(v streams.Variant, url string) *Link {
	quality := v.QualityLabel
	if quality == "" {
		quality = v.Quality
	}
	return &Link{
		URL:      url,
		Quality:  quality,
		MimeType: v.MimeType,
		SizeMB:   SizeMB(v.SizeBytes),
		Verified: v.Verified,
	}
}

// GuessedLink wraps a fabricated URL; never verified, size unknown.
func GuessedLink(url string, q streams.Quality) *Link {
	return &Link{
		URL:      url,
		Quality:  string(q),
		Verified: false,
	}
}

func toEntries(variants []streams.Variant) []FormatEntry {
	out := make([]FormatEntry, 0, len(variants))
	for _, v := range variants {
		out = append(out, FormatEntry{
			Itag:         v.Itag,
			MimeType:     v.MimeType,
			QualityLabel: v.QualityLabel,
			Quality:      v.Quality,
			Bitrate:      v.Bitrate,
			Width:        v.Width,
			Height:       v.Height,
			FPS:          v.FPS,
			AudioQuality: v.AudioQuality,
			SizeMB:       SizeMB(v.SizeBytes),
		})
	}
	return out
}

// SizeMB converts a byte count to mebibytes rounded to 2 decimals.
// Unknown (zero or negative) sizes report as nil.
func SizeMB(bytes int64) *float64 {
	if bytes <= 0 {
		return nil
	}
	v := math.Round(float64(bytes)/(1<<20)*100) / 100
	return &v
}

// FormatDuration renders whole seconds as minutes:seconds with the seconds
// zero-padded to width 2 (125 -> "2:05").
func FormatDuration(seconds int64) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// Elapsed is the wall-clock delta in fractional seconds, 4 decimal places.
func Elapsed(start, end time.Time) float64 {
	return math.Round(end.Sub(start).Seconds()*1e4) / 1e4
}

func durationOrNil(seconds int64) *string {
	if seconds <= 0 {
		return nil
	}
	s := FormatDuration(seconds)
	return &s
}
