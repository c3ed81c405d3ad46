package streams

import "fmt"

// Guessed direct links: itag-templated googlevideo URLs built purely from the
// identifier. Best-effort and unverified; they are the degradation path when
// enumeration fails and must never be presented as guaranteed-valid.

const googlevideoTemplate = "https://rr2---sn-4g5ednsl.googlevideo.com/videoplayback?ip=0.0.0.0&id=%s&itag=%d&source=youtube&requiressl=yes&ratebypass=yes"

// guessedItags maps a quality tier onto the historical progressive/audio
// itag pairs (22=720p mp4, 18=360p mp4, 17=144p 3gp, 140/139=m4a).
var guessedItags = map[Quality]struct{ video, audio int }{
	QualityHigh:   {video: 22, audio: 140},
	QualityMedium: {video: 18, audio: 140},
	QualityLow:    {video: 17, audio: 139},
}

// GuessedLinks is a fabricated DownloadLinkSet for one quality tier.
type GuessedLinks struct {
	Video string
	Audio string
}

// GuessLinks fabricates deterministic download links for the identifier.
func GuessLinks(videoID string, q Quality) GuessedLinks {
	itags, ok := guessedItags[q]
	if !ok {
		itags = guessedItags[QualityHigh]
	}
	return GuessedLinks{
		Video: fmt.Sprintf(googlevideoTemplate, videoID, itags.video),
		Audio: fmt.Sprintf(googlevideoTemplate, videoID, itags.audio),
	}
}

// ExternalServices returns alternative third-party download URLs templated
// from the identifier.
func ExternalServices(videoID string) []string {
	return []string{
		"https://yt1s.com/youtube-to-mp4/" + videoID,
		"https://yt5s.com/en/?q=https://youtube.com/watch?v=" + videoID,
		"https://ssyoutube.com/watch?v=" + videoID,
	}
}
