package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-block-calendar/internal/config"
	"github.com/MKhiriev/go-block-calendar/internal/logger"
	"github.com/MKhiriev/go-block-calendar/internal/utils"
	"github.com/MKhiriev/go-block-calendar/models"
)

type httpBlocksAdapter struct {
	client  *utils.HTTPClient
	baseURL string
	hint    string

	logger *logger.Logger
}

// NewHTTPBlocksAdapter constructs the resty-backed [BlocksAdapter].
// The base URL is taken from adapterCfg.HTTPAddress with any trailing slash
// removed; requests time out after adapterCfg.RequestTimeout.
//
// Returns an error if the address is empty or cannot be parsed.
func NewHTTPBlocksAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (BlocksAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	a := &httpBlocksAdapter{client: client, baseURL: baseURL, logger: logger}
	if strings.HasPrefix(baseURL, "file:") {
		a.hint = fileOriginHint
	}
	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || (u.Host == "" && u.Scheme != "file") {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimSuffix(u.String(), "/"), nil
}

func (h *httpBlocksAdapter) BaseURL() string {
	return h.baseURL
}

// Send implements [BlocksAdapter].
func (h *httpBlocksAdapter) Send(ctx context.Context, op Operation, payload any, opts SendOptions) (models.APIResult, error) {
	fullURL := h.baseURL + string(op)
	log := h.logger.With().Str("op", string(op)).Str("url", fullURL).Logger()

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(payload).
		Post(fullURL)
	if err != nil {
		log.Debug().Err(err).Msg("request failed before response")
		return models.APIResult{URL: fullURL}, &TransportError{URL: fullURL, Hint: h.hint, Err: err}
	}

	res := models.APIResult{
		Status:  resp.StatusCode(),
		RawBody: string(resp.Body()),
		URL:     fullURL,
	}
	res.Parsed = parseBody(res.RawBody)

	log.Debug().Int("status", res.Status).Int("bytes", len(res.RawBody)).Msg("response received")

	if err = mapResultError(res, opts); err != nil {
		return res, err
	}
	return res, nil
}

// List implements [BlocksAdapter].
func (h *httpBlocksAdapter) List(ctx context.Context, userID, date string, opts SendOptions) (models.APIResult, error) {
	return h.Send(ctx, OpList, models.ListRequest{UserID: userID, Date: date}, opts)
}

// Create implements [BlocksAdapter].
func (h *httpBlocksAdapter) Create(ctx context.Context, req models.CreateRequest) (models.APIResult, error) {
	return h.Send(ctx, OpCreate, req, Throwing)
}

// Delete implements [BlocksAdapter].
func (h *httpBlocksAdapter) Delete(ctx context.Context, req models.DeleteRequest) (models.APIResult, error) {
	return h.Send(ctx, OpDelete, req, Throwing)
}
