package streams

import "strings"

// LinkType selects which download links a request wants.
type LinkType string

const (
	LinkTypeVideo LinkType = "video"
	LinkTypeAudio LinkType = "audio"
	LinkTypeBoth  LinkType = "both"
)

// NormalizeLinkType parses the request's type parameter. Empty means both.
func NormalizeLinkType(raw string) (LinkType, bool) {
	switch LinkType(strings.ToLower(strings.TrimSpace(raw))) {
	case "", LinkTypeBoth:
		return LinkTypeBoth, true
	case LinkTypeVideo:
		return LinkTypeVideo, true
	case LinkTypeAudio:
		return LinkTypeAudio, true
	default:
		return "", false
	}
}

// Quality is the request's quality tier.
type Quality string

const (
	QualityHigh   Quality = "high"
	QualityMedium Quality = "medium"
	QualityLow    Quality = "low"
)

// NormalizeQuality parses the request's quality selector. Unknown values fall
// back to high, matching the lenient historical behavior.
func NormalizeQuality(raw string) Quality {
	switch Quality(strings.ToLower(strings.TrimSpace(raw))) {
	case QualityMedium:
		return QualityMedium
	case QualityLow:
		return QualityLow
	default:
		return QualityHigh
	}
}

// mediumHeightCap bounds the medium tier to SD resolutions.
const mediumHeightCap = 480

// SelectVideo picks the progressive variant for the quality tier: best
// overall for high, best at or under 480p for medium (best overall when
// nothing fits), smallest for low.
func SelectVideo(variants []Variant, q Quality) (Variant, bool) {
	progressive := filter(variants, func(v Variant) bool { return v.HasVideo && v.HasAudio })
	if len(progressive) == 0 {
		return Variant{}, false
	}

	switch q {
	case QualityLow:
		return pick(progressive, worseVideo), true
	case QualityMedium:
		capped := filter(progressive, func(v Variant) bool { return v.Height > 0 && v.Height <= mediumHeightCap })
		if len(capped) > 0 {
			return pick(capped, betterVideo), true
		}
		return pick(progressive, betterVideo), true
	default:
		return pick(progressive, betterVideo), true
	}
}

// SelectAudio picks the audio-only variant for the quality tier: highest
// bitrate for high, lowest for low, highest at or under 128 kbps for medium
// (lowest overall when nothing fits).
func SelectAudio(variants []Variant, q Quality) (Variant, bool) {
	audio := filter(variants, func(v Variant) bool { return v.HasAudio && !v.HasVideo })
	if len(audio) == 0 {
		return Variant{}, false
	}

	switch q {
	case QualityLow:
		return pick(audio, worseAudio), true
	case QualityMedium:
		capped := filter(audio, func(v Variant) bool { return v.effectiveBitrate() <= 128_000 })
		if len(capped) > 0 {
			return pick(capped, betterAudio), true
		}
		return pick(audio, worseAudio), true
	default:
		return pick(audio, betterAudio), true
	}
}

func filter(variants []Variant, keep func(Variant) bool) []Variant {
	out := make([]Variant, 0, len(variants))
	for _, v := range variants {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

func pick(variants []Variant, better func(a, b Variant) bool) Variant {
	best := variants[0]
	for _, v := range variants[1:] {
		if better(v, best) {
			best = v
		}
	}
	return best
}

func betterVideo(a, b Variant) bool {
	return compareKeys(
		[]int{a.Height, a.Width, a.FPS, a.effectiveBitrate(), -a.Itag},
		[]int{b.Height, b.Width, b.FPS, b.effectiveBitrate(), -b.Itag},
	)
}

func worseVideo(a, b Variant) bool {
	return compareKeys(
		[]int{-a.Height, -a.Width, -a.effectiveBitrate(), -a.Itag},
		[]int{-b.Height, -b.Width, -b.effectiveBitrate(), -b.Itag},
	)
}

func betterAudio(a, b Variant) bool {
	return compareKeys(
		[]int{a.effectiveBitrate(), -a.Itag},
		[]int{b.effectiveBitrate(), -b.Itag},
	)
}

func worseAudio(a, b Variant) bool {
	return compareKeys(
		[]int{-a.effectiveBitrate(), -a.Itag},
		[]int{-b.effectiveBitrate(), -b.Itag},
	)
}

func compareKeys(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] == b[i] {
			continue
		}
		return a[i] > b[i]
	}
	return false
}
