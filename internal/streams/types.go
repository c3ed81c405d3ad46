package streams

import "github.com/kkdai/youtube/v2"

// Variant is one normalized stream rendition of a video.
type Variant struct {
	Itag         int
	URL          string
	MimeType     string
	Quality      string
	QualityLabel string
	Bitrate      int
	// AverageBitrate is preferred over Bitrate when known.
	AverageBitrate int
	Width          int
	Height         int
	FPS            int
	SizeBytes      int64
	AudioQuality   string
	AudioChannels  int
	HasAudio       bool
	HasVideo       bool
	// Verified is true only for platform-enumerated URLs. Fabricated links
	// are never verified.
	Verified bool
}

// Category classifies the variant as progressive, video_only or audio_only.
func (v Variant) Category() string {
	switch {
	case v.HasVideo && v.HasAudio:
		return "progressive"
	case v.HasVideo:
		return "video_only"
	case v.HasAudio:
		return "audio_only"
	default:
		return "unknown"
	}
}

func (v Variant) effectiveBitrate() int {
	if v.AverageBitrate > 0 {
		return v.AverageBitrate
	}
	return v.Bitrate
}

// Inventory is the enumeration result for one video.
type Inventory struct {
	VideoID     string
	Title       string
	Author      string
	DurationSec int64
	Variants    []Variant

	video *youtube.Video
}
