// Package services provides the client for the Nyaa info API.
package services

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/amaumene/nyaainfo/internal/config"
	"github.com/amaumene/nyaainfo/internal/errors"
	"github.com/amaumene/nyaainfo/internal/models"
	"github.com/amaumene/nyaainfo/pkg/httputil"
	"github.com/amaumene/nyaainfo/pkg/logger"
)

// InfoService fetches the info document for one torrent.
type InfoService interface {
	FetchInfo(ctx context.Context, target models.QueryTarget) (*InfoResponse, error)
}

// InfoResponse is the unparsed reply of the info endpoint.
type InfoResponse struct {
	StatusCode int
	Body       []byte
}

// Text returns the body as a string.
func (r *InfoResponse) Text() string {
	return string(r.Body)
}

type Nyaa struct {
	config     *config.Config
	httpClient *http.Client
	logger     logger.Logger
}

// NewNyaa creates a client for cfg. A nil httpClient uses the shared default
// client and a nil log discards output.
func NewNyaa(cfg *config.Config, httpClient *http.Client, log logger.Logger) *Nyaa {
	if httpClient == nil {
		httpClient = httputil.NewDefaultHTTPClient()
	}
	if log == nil {
		log = logger.Discard()
	}
	return &Nyaa{
		config:     cfg,
		httpClient: httpClient,
		logger:     log,
	}
}

// FetchInfo issues a single authenticated GET for target. Any HTTP status is
// returned as a response; only transport failures are errors.
func (n *Nyaa) FetchInfo(ctx context.Context, target models.QueryTarget) (*InfoResponse, error) {
	apiURL := n.config.InfoURL(target.String())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, errors.NewTransportError(apiURL, fmt.Errorf("failed to create request: %w", err))
	}
	req.SetBasicAuth(n.config.Username, n.config.Password)

	n.logger.Infof("[NYAA] API call to fetch torrent info by %s - URL: %s", target.Kind(), apiURL)

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return nil, errors.NewTransportError(apiURL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewTransportError(apiURL, fmt.Errorf("failed to read response body: %w", err))
	}

	n.logger.Debugf("[NYAA] API call completed - status %d, %d bytes", resp.StatusCode, len(body))

	return &InfoResponse{
		StatusCode: resp.StatusCode,
		Body:       body,
	}, nil
}
