package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/animal-catalog/internal/config"
	"github.com/MKhiriev/animal-catalog/internal/logger"
	"github.com/MKhiriev/animal-catalog/internal/utils"
	"github.com/MKhiriev/animal-catalog/models"
	"github.com/go-resty/resty/v2"
)

type httpCatalogAdapter struct {
	client *utils.HTTPClient
	token  string

	logger *logger.Logger
}

// NewHTTPCatalogAdapter constructs the REST implementation of [CatalogAdapter].
// The base URL is taken from cfg.HTTPAddress; a missing scheme defaults to
// http. Returns an error if the address is empty or cannot be parsed.
func NewHTTPCatalogAdapter(cfg config.Adapter, logger *logger.Logger) (CatalogAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpCatalogAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpCatalogAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

func (h *httpCatalogAdapter) Token() string {
	return h.token
}

// Ping implements [CatalogAdapter] against GET /.
func (h *httpCatalogAdapter) Ping(ctx context.Context) (string, error) {
	var out models.MessageResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/")
	if err != nil {
		return "", fmt.Errorf("ping request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return out.Message, nil
}

// Login implements [CatalogAdapter] against POST /login. The returned token
// is stored and attached to every following protected request.
func (h *httpCatalogAdapter) Login(ctx context.Context, creds models.Credentials) (string, error) {
	var out models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		SetResult(&out).
		Post("/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	if strings.TrimSpace(out.Token) == "" {
		return "", ErrEmptyToken
	}

	h.SetToken(out.Token)
	h.logger.Debug().Str("username", creds.Username).Msg("logged in")

	return h.token, nil
}

// ListAll implements [CatalogAdapter] against GET /allanimals.
func (h *httpCatalogAdapter) ListAll(ctx context.Context) ([]models.Animal, error) {
	var animals []models.Animal

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&animals).
		Get("/allanimals")
	if err != nil {
		return nil, fmt.Errorf("list all request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return animals, nil
}

// ListByCategory implements [CatalogAdapter] against
// GET /animals/category/{category}. The category is path-escaped.
func (h *httpCatalogAdapter) ListByCategory(ctx context.Context, category string) ([]models.Animal, error) {
	var animals []models.Animal

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("category", category).
		SetResult(&animals).
		Get("/animals/category/{category}")
	if err != nil {
		return nil, fmt.Errorf("list by category request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return animals, nil
}

// Count implements [CatalogAdapter] against GET /api/animals/count.
func (h *httpCatalogAdapter) Count(ctx context.Context) (int64, error) {
	var out models.CountResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/api/animals/count")
	if err != nil {
		return 0, fmt.Errorf("count request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	return out.Count, nil
}

// Add implements [CatalogAdapter] against POST /addanimal. Requires a token.
func (h *httpCatalogAdapter) Add(ctx context.Context, fields models.AnimalFields) (models.CreatedResponse, error) {
	var out models.CreatedResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(fields).
		SetResult(&out).
		Post("/addanimal")
	if err != nil {
		return models.CreatedResponse{}, fmt.Errorf("add request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CreatedResponse{}, err
	}

	return out, nil
}

// Update implements [CatalogAdapter] against PUT /updateanimal/{id}.
func (h *httpCatalogAdapter) Update(ctx context.Context, id int64, fields models.AnimalFields) (string, error) {
	var out models.MessageResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetBody(fields).
		SetResult(&out).
		Put("/updateanimal/{id}")
	if err != nil {
		return "", fmt.Errorf("update request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return out.Message, nil
}

// Delete implements [CatalogAdapter] against DELETE /deleteanimal/{id}.
func (h *httpCatalogAdapter) Delete(ctx context.Context, id int64) (string, error) {
	var out models.MessageResponse

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetResult(&out).
		Delete("/deleteanimal/{id}")
	if err != nil {
		return "", fmt.Errorf("delete request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return out.Message, nil
}

// authedRequest attaches the bearer token when one is stored.
func (h *httpCatalogAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if h.token != "" {
		req.SetAuthToken(h.token)
	}
	return req
}
