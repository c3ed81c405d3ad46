package ytid

import (
	"errors"
	"testing"
)

func TestExtract_SupportedShapes(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "kV1qVKlseIU", want: "kV1qVKlseIU"},
		{in: "https://youtu.be/kV1qVKlseIU", want: "kV1qVKlseIU"},
		{in: "https://youtu.be/kV1qVKlseIU?t=42", want: "kV1qVKlseIU"},
		{in: "https://www.youtube.com/watch?v=kV1qVKlseIU", want: "kV1qVKlseIU"},
		{in: "https://www.youtube.com/watch?v=kV1qVKlseIU&list=PLx&index=2", want: "kV1qVKlseIU"},
		{in: "youtube.com/watch?v=kV1qVKlseIU", want: "kV1qVKlseIU"},
		{in: "https://www.youtube.com/embed/kV1qVKlseIU", want: "kV1qVKlseIU"},
		{in: "https://www.youtube.com/v/kV1qVKlseIU", want: "kV1qVKlseIU"},
		{in: "https://www.youtube.com/shorts/kV1qVKlseIU", want: "kV1qVKlseIU"},
		{in: "https://www.youtube.com/watch?vi=kV1qVKlseIU", want: "kV1qVKlseIU"},
		// Underscore/dash and mixed case are preserved, not normalized.
		{in: "a_B-c_D-e_F", want: "a_B-c_D-e_F"},
		{in: "https://youtu.be/a_B-c_D-e_F", want: "a_B-c_D-e_F"},
		{in: "  https://youtu.be/kV1qVKlseIU  ", want: "kV1qVKlseIU"},
	}
	for _, tt := range tests {
		got, err := Extract(tt.in)
		if err != nil {
			t.Fatalf("Extract(%q) error=%v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("Extract(%q)=%q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExtract_Invalid(t *testing.T) {
	tests := []string{
		"",
		"   ",
		"abc123",
		"kV1qVKlseI",                               // 10 chars
		"kV1qVKlseIU!",                             // 12 chars with invalid tail
		"https://www.youtube.com/watch",            // no id at all
		"https://www.youtube.com/watch?v=short",    // id too short
		"https://example.com/page?q=hello%20world", // unrelated url
	}
	for _, in := range tests {
		if _, err := Extract(in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("Extract(%q) error=%v, want ErrInvalidInput", in, err)
		}
	}
}

// Any exactly-11-character identifier-alphabet string is accepted as a bare
// ID, even when it was never meant as one ("notavalidid" happens to qualify).
// URL patterns run first, so recognizable URL shapes always win.
func TestExtract_BareElevenCharStringAccepted(t *testing.T) {
	got, err := Extract("notavalidid")
	if err != nil {
		t.Fatalf("Extract() error=%v", err)
	}
	if got != "notavalidid" {
		t.Fatalf("Extract()=%q, want notavalidid", got)
	}
}

func TestExtract_Idempotent(t *testing.T) {
	id, err := Extract("https://youtu.be/kV1qVKlseIU")
	if err != nil {
		t.Fatalf("Extract() error=%v", err)
	}
	again, err := Extract(id)
	if err != nil {
		t.Fatalf("Extract(bare id) error=%v", err)
	}
	if again != id {
		t.Fatalf("Extract(%q)=%q, want unchanged", id, again)
	}
}

func TestThumbnails_Deterministic(t *testing.T) {
	a := Thumbnails("kV1qVKlseIU")
	b := Thumbnails("kV1qVKlseIU")
	if a != b {
		t.Fatalf("Thumbnails() not deterministic: %+v vs %+v", a, b)
	}
	if a.Default != "https://img.youtube.com/vi/kV1qVKlseIU/default.jpg" {
		t.Fatalf("Default=%q", a.Default)
	}
	if a.Maxres != "https://img.youtube.com/vi/kV1qVKlseIU/maxresdefault.jpg" {
		t.Fatalf("Maxres=%q", a.Maxres)
	}
}

func TestDerivedURLs(t *testing.T) {
	if got := WatchURL("kV1qVKlseIU"); got != "https://www.youtube.com/watch?v=kV1qVKlseIU" {
		t.Fatalf("WatchURL()=%q", got)
	}
	if got := EmbedURL("kV1qVKlseIU"); got != "https://www.youtube.com/embed/kV1qVKlseIU" {
		t.Fatalf("EmbedURL()=%q", got)
	}
	if got := FallbackThumbnailURL("kV1qVKlseIU"); got != "https://img.youtube.com/vi/kV1qVKlseIU/0.jpg" {
		t.Fatalf("FallbackThumbnailURL()=%q", got)
	}
}
