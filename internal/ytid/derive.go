package ytid

// All URLs below are pure functions of the identifier.

// ThumbnailSet holds the five fixed-resolution thumbnail URLs for a video.
type ThumbnailSet struct {
	Default  string `json:"default"`
	Medium   string `json:"medium"`
	High     string `json:"high"`
	Standard string `json:"standard"`
	Maxres   string `json:"maxres"`
}

// WatchURL returns the canonical watch page URL for the video.
func WatchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}

// EmbedURL returns the embeddable player URL for the video.
func EmbedURL(videoID string) string {
	return "https://www.youtube.com/embed/" + videoID
}

// ThumbnailURL returns the img.youtube.com thumbnail URL for the given
// variant name (e.g. "hqdefault", "0").
func ThumbnailURL(videoID, name string) string {
	return "https://img.youtube.com/vi/" + videoID + "/" + name + ".jpg"
}

// FallbackThumbnailURL is the variant used for placeholder metadata.
func FallbackThumbnailURL(videoID string) string {
	return ThumbnailURL(videoID, "0")
}

// Thumbnails derives the fixed-resolution thumbnail set for the video.
func Thumbnails(videoID string) ThumbnailSet {
	return ThumbnailSet{
		Default:  ThumbnailURL(videoID, "default"),
		Medium:   ThumbnailURL(videoID, "mqdefault"),
		High:     ThumbnailURL(videoID, "hqdefault"),
		Standard: ThumbnailURL(videoID, "sddefault"),
		Maxres:   ThumbnailURL(videoID, "maxresdefault"),
	}
}
