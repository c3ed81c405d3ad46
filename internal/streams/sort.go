package streams

import "sort"

// SortByBest sorts variants by resolution, then bitrate, descending.
func SortByBest(variants []Variant) {
	sort.SliceStable(variants, func(i, j int) bool {
		if variants[i].Height != variants[j].Height {
			return variants[i].Height > variants[j].Height
		}
		return variants[i].effectiveBitrate() > variants[j].effectiveBitrate()
	})
}

// Categorize splits variants into progressive, video-only and audio-only
// groups, each sorted best first.
func Categorize(variants []Variant) (progressive, videoOnly, audioOnly []Variant) {
	for _, v := range variants {
		switch v.Category() {
		case "progressive":
			progressive = append(progressive, v)
		case "video_only":
			videoOnly = append(videoOnly, v)
		case "audio_only":
			audioOnly = append(audioOnly, v)
		}
	}
	SortByBest(progressive)
	SortByBest(videoOnly)
	SortByBest(audioOnly)
	return progressive, videoOnly, audioOnly
}
