package meta

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const sampleWatchHTML = `<!DOCTYPE html>
<html>
<head>
<title>Me at the zoo - YouTube</title>
<meta name="title" content="Me at the zoo">
</head>
<body>
<script>var ytInitialPlayerResponse = {"videoDetails":{"videoId":"jNQXAC9IVRw","lengthSeconds":"19","author":"jawed","thumbnail":{}},"microformat":{"thumbnailUrl":["https://i.ytimg.com/vi/jNQXAC9IVRw/hqdefault.jpg"]}};</script>
</body>
</html>`

func newTestFetcher(t *testing.T, oembed, watch http.Handler) *Fetcher {
	t.Helper()
	var oembedURL, watchURL string
	if oembed != nil {
		s := httptest.NewServer(oembed)
		t.Cleanup(s.Close)
		oembedURL = s.URL
	} else {
		oembedURL = "http://127.0.0.1:0"
	}
	if watch != nil {
		s := httptest.NewServer(watch)
		t.Cleanup(s.Close)
		watchURL = s.URL
	} else {
		watchURL = "http://127.0.0.1:0"
	}
	return NewFetcher(Config{
		OEmbedBaseURL: oembedURL,
		WatchBaseURL:  watchURL,
	})
}

func TestFetch_OEmbedPrimary(t *testing.T) {
	oembed := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("format"); got != "json" {
			t.Errorf("format=%q, want json", got)
		}
		if got := r.URL.Query().Get("url"); !strings.Contains(got, "jNQXAC9IVRw") {
			t.Errorf("url param=%q, want watch url with video id", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"title":"Me at the zoo","author_name":"jawed","thumbnail_url":"https://i.ytimg.com/vi/jNQXAC9IVRw/hqdefault.jpg"}`))
	})
	f := newTestFetcher(t, oembed, nil)

	md := f.Fetch(context.Background(), "jNQXAC9IVRw")
	if !md.Retrieved {
		t.Fatalf("Retrieved=false, detail=%q", md.ErrorDetail)
	}
	if md.Title != "Me at the zoo" || md.Author != "jawed" {
		t.Fatalf("metadata=%+v", md)
	}
	if md.ThumbnailURL != "https://i.ytimg.com/vi/jNQXAC9IVRw/hqdefault.jpg" {
		t.Fatalf("ThumbnailURL=%q", md.ThumbnailURL)
	}
}

func TestFetch_WatchPageFallback(t *testing.T) {
	oembed := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})
	watch := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); !strings.Contains(got, "Mozilla") {
			t.Errorf("User-Agent=%q, want browser-like", got)
		}
		w.Write([]byte(sampleWatchHTML))
	})
	f := newTestFetcher(t, oembed, watch)

	md := f.Fetch(context.Background(), "jNQXAC9IVRw")
	if !md.Retrieved {
		t.Fatalf("Retrieved=false, detail=%q", md.ErrorDetail)
	}
	if md.Title != "Me at the zoo" {
		t.Fatalf("Title=%q", md.Title)
	}
	if md.Author != "jawed" {
		t.Fatalf("Author=%q", md.Author)
	}
	if md.ThumbnailURL != "https://i.ytimg.com/vi/jNQXAC9IVRw/hqdefault.jpg" {
		t.Fatalf("ThumbnailURL=%q", md.ThumbnailURL)
	}
	if md.DurationSec != 19 {
		t.Fatalf("DurationSec=%d, want 19", md.DurationSec)
	}
}

func TestFetch_PlaceholderOnTotalFailure(t *testing.T) {
	f := newTestFetcher(t, nil, nil)

	md := f.Fetch(context.Background(), "jNQXAC9IVRw")
	if md.Retrieved {
		t.Fatal("Retrieved=true, want placeholder")
	}
	if md.Title != "Video jNQXAC9IVRw" {
		t.Fatalf("Title=%q", md.Title)
	}
	if md.Author != "YouTube" {
		t.Fatalf("Author=%q", md.Author)
	}
	if md.ThumbnailURL != "https://img.youtube.com/vi/jNQXAC9IVRw/0.jpg" {
		t.Fatalf("ThumbnailURL=%q", md.ThumbnailURL)
	}
	if md.ErrorDetail == "" {
		t.Fatal("ErrorDetail empty, want failure description")
	}
}

func TestFetch_WatchPageDefaultsWhenSparse(t *testing.T) {
	oembed := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	})
	watch := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><head></head><body>consent wall</body></html>"))
	})
	f := newTestFetcher(t, oembed, watch)

	md := f.Fetch(context.Background(), "jNQXAC9IVRw")
	if !md.Retrieved {
		t.Fatalf("Retrieved=false, detail=%q", md.ErrorDetail)
	}
	if md.Title != "Unknown Title" || md.Author != "Unknown Author" {
		t.Fatalf("metadata=%+v", md)
	}
	if md.ThumbnailURL != "https://img.youtube.com/vi/jNQXAC9IVRw/maxresdefault.jpg" {
		t.Fatalf("ThumbnailURL=%q", md.ThumbnailURL)
	}
}

func TestScrapeWatchPage_PatternExtraction(t *testing.T) {
	md := scrapeWatchPage(sampleWatchHTML)
	if md.Title != "Me at the zoo" || md.Author != "jawed" || md.DurationSec != 19 {
		t.Fatalf("scrapeWatchPage()=%+v", md)
	}
}
