package meta

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/masumvai/proytdl/internal/ytid"
)

const (
	defaultOEmbedBaseURL = "https://www.youtube.com/oembed"
	defaultWatchBaseURL  = "https://www.youtube.com"
	defaultTimeout       = 10 * time.Second

	browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	// Watch pages run a few hundred KB; anything past this is not metadata.
	maxWatchPageBytes = 4 << 20
)

var (
	authorPattern    = regexp.MustCompile(`"author":"([^"]+)"`)
	thumbnailPattern = regexp.MustCompile(`"thumbnailUrl":\["([^"]+)"\]`)
	lengthPattern    = regexp.MustCompile(`"lengthSeconds":"(\d+)"`)
)

// Config configures a Fetcher.
type Config struct {
	// HTTPClient is the client used for outbound requests.
	// If nil, http.DefaultClient is used.
	HTTPClient *http.Client

	// Logger receives non-fatal warnings. If nil, warnings are dropped.
	Logger Logger

	// Timeout bounds each retrieval attempt (primary and fallback
	// independently). Defaults to 10s.
	Timeout time.Duration

	// OEmbedBaseURL overrides the oEmbed endpoint (tests).
	OEmbedBaseURL string

	// WatchBaseURL overrides the watch page host (tests).
	WatchBaseURL string
}

// Fetcher retrieves video metadata best-effort: structured oEmbed first,
// watch-page scrape second, deterministic placeholder last.
type Fetcher struct {
	httpClient *http.Client
	logger     Logger
	timeout    time.Duration
	oembedBase string
	watchBase  string
}

// NewFetcher creates a Fetcher with the given configuration.
func NewFetcher(cfg Config) *Fetcher {
	f := &Fetcher{
		httpClient: cfg.HTTPClient,
		logger:     cfg.Logger,
		timeout:    cfg.Timeout,
		oembedBase: cfg.OEmbedBaseURL,
		watchBase:  cfg.WatchBaseURL,
	}
	if f.httpClient == nil {
		f.httpClient = http.DefaultClient
	}
	if f.logger == nil {
		f.logger = nopLogger{}
	}
	if f.timeout <= 0 {
		f.timeout = defaultTimeout
	}
	if f.oembedBase == "" {
		f.oembedBase = defaultOEmbedBaseURL
	}
	if f.watchBase == "" {
		f.watchBase = defaultWatchBaseURL
	}
	return f
}

// Fetch resolves metadata for the video. It never returns an error: when both
// retrieval methods fail the result is a placeholder built purely from the
// identifier, with Retrieved=false and the last failure in ErrorDetail.
func (f *Fetcher) Fetch(ctx context.Context, videoID string) Metadata {
	md, primaryErr := f.fromOEmbed(ctx, videoID)
	if primaryErr == nil {
		return md
	}
	f.logger.Warnf("oembed lookup failed for video=%s: %v", videoID, primaryErr)

	md, fallbackErr := f.fromWatchPage(ctx, videoID)
	if fallbackErr == nil {
		return md
	}
	f.logger.Warnf("watch page scrape failed for video=%s: %v", videoID, fallbackErr)

	return Metadata{
		Title:        "Video " + videoID,
		Author:       "YouTube",
		ThumbnailURL: ytid.FallbackThumbnailURL(videoID),
		Retrieved:    false,
		ErrorDetail:  fmt.Sprintf("oembed: %v; watch page: %v", primaryErr, fallbackErr),
	}
}

type oembedResponse struct {
	Title        string `json:"title"`
	AuthorName   string `json:"author_name"`
	ThumbnailURL string `json:"thumbnail_url"`
}

func (f *Fetcher) fromOEmbed(ctx context.Context, videoID string) (Metadata, error) {
	ctx, cancel := withDefaultTimeout(ctx, f.timeout)
	defer cancel()

	endpoint := f.oembedBase + "?format=json&url=" + url.QueryEscape(ytid.WatchURL(videoID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Metadata{}, err
	}
	resp, err := f.httpClient.Do(req)
	if err != nil {
		return Metadata{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Metadata{}, fmt.Errorf("oembed status %d", resp.StatusCode)
	}

	var body oembedResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Metadata{}, fmt.Errorf("decode oembed response: %w", err)
	}

	md := Metadata{
		Title:        body.Title,
		Author:       body.AuthorName,
		ThumbnailURL: body.ThumbnailURL,
		Retrieved:    true,
	}
	if md.Title == "" {
		md.Title = "Unknown Title"
	}
	if md.Author == "" {
		md.Author = "Unknown Author"
	}
	if md.ThumbnailURL == "" {
		md.ThumbnailURL = ytid.ThumbnailURL(videoID, "maxresdefault")
	}
	return md, nil
}

func (f *Fetcher) fromWatchPage(ctx context.Context, videoID string) (Metadata, error) {
	ctx, cancel := withDefaultTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.watchBase+"/watch?v="+videoID, nil)
	if err != nil {
		return Metadata{}, err
	}
	req.Header.Set("User-Agent", browserUserAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return Metadata{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Metadata{}, fmt.Errorf("watch page status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxWatchPageBytes))
	if err != nil {
		return Metadata{}, err
	}

	md := scrapeWatchPage(string(raw))
	if md.ThumbnailURL == "" {
		md.ThumbnailURL = ytid.ThumbnailURL(videoID, "maxresdefault")
	}
	return md, nil
}

// scrapeWatchPage pulls title/author/thumbnail/duration out of watch page
// markup. The title lives in a meta tag; the rest sits inside the embedded
// player JSON, reachable with plain pattern searches.
func scrapeWatchPage(html string) Metadata {
	md := Metadata{
		Title:     "Unknown Title",
		Author:    "Unknown Author",
		Retrieved: true,
	}

	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(html)); err == nil {
		if title, ok := doc.Find(`meta[name="title"]`).Attr("content"); ok && title != "" {
			md.Title = title
		} else if pageTitle := strings.TrimSuffix(strings.TrimSpace(doc.Find("title").Text()), " - YouTube"); pageTitle != "" {
			md.Title = pageTitle
		}
	}
	if m := authorPattern.FindStringSubmatch(html); len(m) == 2 {
		md.Author = m[1]
	}
	if m := thumbnailPattern.FindStringSubmatch(html); len(m) == 2 {
		md.ThumbnailURL = m[1]
	}
	if m := lengthPattern.FindStringSubmatch(html); len(m) == 2 {
		if secs, err := strconv.ParseInt(m[1], 10, 64); err == nil {
			md.DurationSec = secs
		}
	}
	return md
}

func withDefaultTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}
