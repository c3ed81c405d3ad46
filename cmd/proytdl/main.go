package main

import (
	"log"
	"net"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"

	"github.com/masumvai/proytdl/internal/meta"
	"github.com/masumvai/proytdl/internal/server"
	"github.com/masumvai/proytdl/internal/streams"
)

func main() {
	host := envOr("HOST", "0.0.0.0")
	port := envOr("PORT", "8000")
	timeout := durationEnv("FETCH_TIMEOUT", 10*time.Second)

	if os.Getenv("DEBUG") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	httpClient := defaultHTTPClient(os.Getenv("PROXY_URL"))
	logger := stdLogger{}

	fetcher := meta.NewFetcher(meta.Config{
		HTTPClient: httpClient,
		Logger:     logger,
		Timeout:    timeout,
	})
	enumerator := streams.NewClient(httpClient, timeout)
	srv := server.New(fetcher, enumerator, server.WithLogger(logger))

	addr := net.JoinHostPort(host, port)
	log.Printf("proytdl %s listening on %s", server.Version, addr)
	if err := srv.Router().Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

type stdLogger struct{}

func (stdLogger) Warnf(format string, args ...any) {
	log.Printf("WARN "+format, args...)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("WARN invalid %s=%q, using %s", key, raw, fallback)
		return fallback
	}
	return d
}
