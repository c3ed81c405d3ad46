package compose

import (
	"github.com/masumvai/proytdl/internal/ytid"
)

// Fixed attribution fields carried on every resolve payload.
const (
	APIDev     = "@masumvai"
	APIChannel = "@Masum_Tech_Sensei"

	linkNote = "Links might expire. Use immediately for download."
)

// Link is one download link with its best-effort metadata. Verified is false
// for fabricated links; no link is guaranteed valid or unexpired.
type Link struct {
	URL      string   `json:"url"`
	Quality  string   `json:"quality,omitempty"`
	MimeType string   `json:"mime_type,omitempty"`
	SizeMB   *float64 `json:"size_mb"`
	Verified bool     `json:"verified"`
}

// LinkSet is the download link pair for one request.
type LinkSet struct {
	Video *Link `json:"video,omitempty"`
	Audio *Link `json:"audio,omitempty"`
}

// ResolvePayload is the full /api/resolve response body.
type ResolvePayload struct {
	APIDev             string   `json:"api_dev"`
	APIChannel         string   `json:"api_channel"`
	TimeS              float64  `json:"time_s"`
	VideoID            string   `json:"video_id"`
	Title              string   `json:"title"`
	Author             string   `json:"author"`
	Thumbnail          string   `json:"thumbnail"`
	Type               string   `json:"type"`
	Quality            string   `json:"quality"`
	Data               LinkSet  `json:"data"`
	Note               string   `json:"note"`
	AlternativeMethods []string `json:"alternative_methods"`
}

// InfoPayload is the metadata-only /api/info response body.
type InfoPayload struct {
	Success       bool              `json:"success"`
	TimeS         float64           `json:"time_s"`
	VideoID       string            `json:"video_id"`
	Title         string            `json:"title"`
	Author        string            `json:"author"`
	Thumbnail     string            `json:"thumbnail"`
	Duration      *string           `json:"duration"`
	VideoURL      string            `json:"video_url"`
	EmbedURL      string            `json:"embed_url"`
	ThumbnailURLs ytid.ThumbnailSet `json:"thumbnail_urls"`
}

// FormatEntry is one stream variant in the /api/formats listing.
type FormatEntry struct {
	Itag         int      `json:"itag"`
	MimeType     string   `json:"mime_type"`
	QualityLabel string   `json:"quality_label,omitempty"`
	Quality      string   `json:"quality,omitempty"`
	Bitrate      int      `json:"bitrate"`
	Width        int      `json:"width,omitempty"`
	Height       int      `json:"height,omitempty"`
	FPS          int      `json:"fps,omitempty"`
	AudioQuality string   `json:"audio_quality,omitempty"`
	SizeMB       *float64 `json:"size_mb"`
}

// FormatGroups categorizes variants, each group sorted best first.
type FormatGroups struct {
	Progressive []FormatEntry `json:"progressive"`
	VideoOnly   []FormatEntry `json:"video_only"`
	AudioOnly   []FormatEntry `json:"audio_only"`
}

// FormatsPayload is the /api/formats response body.
type FormatsPayload struct {
	TimeS    float64      `json:"time_s"`
	VideoID  string       `json:"video_id"`
	Title    string       `json:"title"`
	Author   string       `json:"author"`
	Duration *string      `json:"duration"`
	Formats  FormatGroups `json:"formats"`
}
