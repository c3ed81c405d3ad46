package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/masumvai/proytdl/internal/compose"
	"github.com/masumvai/proytdl/internal/streams"
	"github.com/masumvai/proytdl/internal/ytid"
)

// sampleVideoURL backs the /api/test endpoint.
const sampleVideoURL = "https://youtu.be/kV1qVKlseIU"

func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":   serviceName,
		"developer": compose.APIDev,
		"channel":   compose.APIChannel,
		"version":   Version,
		"endpoints": gin.H{
			"/api/resolve": "GET /api/resolve?url=YOUTUBE_URL&type=video|audio|both&quality=high|medium|low&download=false",
			"/api/info":    "GET video information",
			"/api/formats": "GET available stream variants",
			"/health":      "Health check",
		},
		"example": "/api/resolve?url=" + sampleVideoURL,
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": float64(s.now().UnixMilli()) / 1000,
		"service":   serviceName,
		"version":   Version,
	})
}

func (s *Server) handleResolve(c *gin.Context) {
	s.resolve(c, c.Query("url"), c.Query("type"), c.Query("quality"), c.Query("download"))
}

// handleTest runs the resolve flow against a known sample video.
func (s *Server) handleTest(c *gin.Context) {
	s.resolve(c, sampleVideoURL, "both", "high", "false")
}

func (s *Server) resolve(c *gin.Context, rawURL, rawType, rawQuality, rawDownload string) {
	start := s.now()

	if rawURL == "" {
		errJSON(c, http.StatusBadRequest, "missing url parameter")
		return
	}
	videoID, err := ytid.Extract(rawURL)
	if err != nil {
		errJSON(c, http.StatusBadRequest, "invalid YouTube URL, provide a valid URL or video ID")
		return
	}
	linkType, ok := streams.NormalizeLinkType(rawType)
	if !ok {
		errJSON(c, http.StatusBadRequest, "type must be one of video, audio, both")
		return
	}
	quality := streams.NormalizeQuality(rawQuality)
	download := false
	if rawDownload != "" {
		download, _ = strconv.ParseBool(rawDownload)
	}

	ctx := c.Request.Context()
	md := s.metadata.Fetch(ctx, videoID)
	links, inv := s.buildLinks(c, videoID, linkType, quality)

	// Enumeration can still name the video when both metadata methods fail.
	if !md.Retrieved && inv != nil {
		if inv.Title != "" {
			md.Title = inv.Title
		}
		if inv.Author != "" {
			md.Author = inv.Author
		}
	}

	res := compose.ComposeResolve(videoID, md, links, compose.Params{
		Type:             linkType,
		Quality:          quality,
		DownloadRedirect: download,
	}, start, s.now())

	if res.Redirect {
		c.Redirect(http.StatusFound, res.Location)
		return
	}
	c.JSON(http.StatusOK, res.Payload)
}

// buildLinks assembles the download link set: platform-enumerated variants
// when available, deterministic guessed links otherwise. Never fails; the
// guessed tier is the floor.
func (s *Server) buildLinks(c *gin.Context, videoID string, linkType streams.LinkType, quality streams.Quality) (compose.LinkSet, *streams.Inventory) {
	ctx := c.Request.Context()
	guessed := streams.GuessLinks(videoID, quality)

	inv, err := s.streams.Enumerate(ctx, videoID)
	if err != nil {
		s.logger.Warnf("stream enumeration failed for video=%s: %v", videoID, err)
		return guessedSet(guessed, linkType, quality), nil
	}

	var links compose.LinkSet
	if linkType == streams.LinkTypeVideo || linkType == streams.LinkTypeBoth {
		if v, found := streams.SelectVideo(inv.Variants, quality); found {
			links.Video = s.variantLink(c, inv, v)
		}
		if links.Video == nil {
			links.Video = compose.GuessedLink(guessed.Video, quality)
		}
	}
	if linkType == streams.LinkTypeAudio || linkType == streams.LinkTypeBoth {
		if v, found := streams.SelectAudio(inv.Variants, quality); found {
			links.Audio = s.variantLink(c, inv, v)
		}
		if links.Audio == nil {
			links.Audio = compose.GuessedLink(guessed.Audio, quality)
		}
	}
	return links, inv
}

func guessedSet(g streams.GuessedLinks, linkType streams.LinkType, quality streams.Quality) compose.LinkSet {
	var links compose.LinkSet
	if linkType == streams.LinkTypeVideo || linkType == streams.LinkTypeBoth {
		links.Video = compose.GuessedLink(g.Video, quality)
	}
	if linkType == streams.LinkTypeAudio || linkType == streams.LinkTypeBoth {
		links.Audio = compose.GuessedLink(g.Audio, quality)
	}
	return links
}

func (s *Server) variantLink(c *gin.Context, inv *streams.Inventory, v streams.Variant) *compose.Link {
	url, err := s.streams.ResolveVariantURL(c.Request.Context(), inv, v)
	if err != nil {
		s.logger.Warnf("variant url resolution failed for video=%s itag=%d: %v", inv.VideoID, v.Itag, err)
		return nil
	}
	return compose.VariantLink(v, url)
}

func (s *Server) handleInfo(c *gin.Context) {
	start := s.now()

	rawURL := c.Query("url")
	if rawURL == "" {
		errJSON(c, http.StatusBadRequest, "missing url parameter")
		return
	}
	videoID, err := ytid.Extract(rawURL)
	if err != nil {
		errJSON(c, http.StatusBadRequest, "invalid YouTube URL")
		return
	}

	md := s.metadata.Fetch(c.Request.Context(), videoID)
	if !md.Retrieved {
		// This endpoint exists for the metadata itself; placeholder data
		// would defeat it.
		errJSON(c, http.StatusBadGateway, "metadata unavailable: "+md.ErrorDetail)
		return
	}

	c.JSON(http.StatusOK, compose.ComposeInfo(videoID, md, start, s.now()))
}

func (s *Server) handleFormats(c *gin.Context) {
	start := s.now()

	rawURL := c.Query("url")
	if rawURL == "" {
		errJSON(c, http.StatusBadRequest, "missing url parameter")
		return
	}
	videoID, err := ytid.Extract(rawURL)
	if err != nil {
		errJSON(c, http.StatusBadRequest, "invalid YouTube URL")
		return
	}

	inv, err := s.streams.Enumerate(c.Request.Context(), videoID)
	if err != nil {
		s.upstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, compose.ComposeFormats(inv, start, s.now()))
}
