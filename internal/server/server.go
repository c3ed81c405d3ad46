package server

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/masumvai/proytdl/internal/meta"
	"github.com/masumvai/proytdl/internal/streams"
)

// Version is the reported service version.
const Version = "2.0.0"

const serviceName = "YouTube Downloader API"

// MetadataFetcher is the metadata collaborator contract.
type MetadataFetcher interface {
	Fetch(ctx context.Context, videoID string) meta.Metadata
}

// StreamEnumerator is the stream inventory collaborator contract.
type StreamEnumerator interface {
	Enumerate(ctx context.Context, videoID string) (*streams.Inventory, error)
	ResolveVariantURL(ctx context.Context, inv *streams.Inventory, v streams.Variant) (string, error)
}

// Logger receives non-fatal handler warnings.
type Logger interface {
	Warnf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Warnf(string, ...any) {}

// Server holds the handler dependencies. Handlers are pure functions of the
// request plus these injected collaborators; no state is kept across
// requests.
type Server struct {
	metadata MetadataFetcher
	streams  StreamEnumerator
	logger   Logger
	now      func() time.Time
}

// Option customizes a Server.
type Option func(*Server)

// WithLogger sets the warning logger.
func WithLogger(l Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithClock overrides the time source (tests).
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

// New creates a Server around the given collaborators.
func New(metadata MetadataFetcher, enumerator StreamEnumerator, opts ...Option) *Server {
	s := &Server{
		metadata: metadata,
		streams:  enumerator,
		logger:   nopLogger{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Router builds the HTTP surface.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), corsAllowAll(), requestID())

	r.GET("/", s.handleRoot)
	r.GET("/health", s.handleHealth)

	api := r.Group("/api")
	api.GET("/resolve", s.handleResolve)
	api.GET("/info", s.handleInfo)
	api.GET("/formats", s.handleFormats)
	api.GET("/test", s.handleTest)

	return r
}
