package streams

import (
	"strings"
	"testing"
)

func TestGuessLinks_QualityItags(t *testing.T) {
	tests := []struct {
		quality   Quality
		videoItag string
		audioItag string
	}{
		{quality: QualityHigh, videoItag: "itag=22", audioItag: "itag=140"},
		{quality: QualityMedium, videoItag: "itag=18", audioItag: "itag=140"},
		{quality: QualityLow, videoItag: "itag=17", audioItag: "itag=139"},
		{quality: Quality("bogus"), videoItag: "itag=22", audioItag: "itag=140"},
	}
	for _, tt := range tests {
		links := GuessLinks("kV1qVKlseIU", tt.quality)
		if !strings.Contains(links.Video, "id=kV1qVKlseIU") || !strings.Contains(links.Video, tt.videoItag) {
			t.Fatalf("GuessLinks(%q).Video=%q, want id and %s", tt.quality, links.Video, tt.videoItag)
		}
		if !strings.Contains(links.Audio, "id=kV1qVKlseIU") || !strings.Contains(links.Audio, tt.audioItag) {
			t.Fatalf("GuessLinks(%q).Audio=%q, want id and %s", tt.quality, links.Audio, tt.audioItag)
		}
	}
}

func TestGuessLinks_Deterministic(t *testing.T) {
	a := GuessLinks("kV1qVKlseIU", QualityHigh)
	b := GuessLinks("kV1qVKlseIU", QualityHigh)
	if a != b {
		t.Fatalf("GuessLinks not deterministic: %+v vs %+v", a, b)
	}
}

func TestExternalServices(t *testing.T) {
	urls := ExternalServices("kV1qVKlseIU")
	if len(urls) != 3 {
		t.Fatalf("ExternalServices count=%d, want 3", len(urls))
	}
	for _, u := range urls {
		if !strings.Contains(u, "kV1qVKlseIU") {
			t.Fatalf("external service url %q missing video id", u)
		}
	}
}
