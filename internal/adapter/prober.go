package adapter

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gongmyung/app-showcase/internal/config"
	"github.com/gongmyung/app-showcase/internal/logger"
	"github.com/gongmyung/app-showcase/internal/utils"
)

// httpMediaProber validates media URLs with HEAD requests. Relative URLs
// (the server's own /uploads/ paths) are resolved against the server base
// URL before probing.
type httpMediaProber struct {
	client  *utils.HTTPClient
	baseURL string
	timeout time.Duration
	logger  *logger.Logger
}

// NewMediaProber builds a [MediaProber] resolving relative URLs against the
// adapter base URL, each probe bounded by cfg.Timeout.
func NewMediaProber(adapterCfg config.ClientAdapter, cfg config.ClientProbe, logger *logger.Logger) (MediaProber, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, err
	}

	return &httpMediaProber{
		client:  utils.NewHTTPClient(),
		baseURL: baseURL,
		timeout: cfg.Timeout,
		logger:  logger,
	}, nil
}

// Probe reports whether url answers a HEAD request with a success status
// within the configured timeout. Any transport failure counts as broken.
func (p *httpMediaProber) Probe(ctx context.Context, url string) bool {
	if url == "" {
		return false
	}
	if strings.HasPrefix(url, "/") {
		url = p.baseURL + url
	}

	probeCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	resp, err := p.client.R().SetContext(probeCtx).Head(url)
	if err != nil {
		p.logger.Debug().Str("url", url).Err(err).Msg("media probe failed")
		return false
	}

	ok := resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusBadRequest
	if !ok {
		p.logger.Debug().Str("url", url).Int("status", resp.StatusCode()).Msg("media probe rejected")
	}
	return ok
}
