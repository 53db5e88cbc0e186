package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/avolkov/reverso/internal/config"
	"github.com/avolkov/reverso/internal/logger"
	"github.com/avolkov/reverso/internal/utils"
	"github.com/avolkov/reverso/models"
	"github.com/go-resty/resty/v2"
)

// httpProvider is the HTTP/REST implementation of [Provider]. It talks to a
// remote directory service and maps its responses to the package's sentinel
// errors. The token itself is never parsed locally; verification is a call
// to the remote service.
type httpProvider struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPProvider constructs an HTTP/REST implementation of [Provider].
// It normalises and validates the base URL from cfg.BaseURL and configures
// the underlying HTTP client with the resolved base URL, the API key header,
// and the request timeout.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid
// URL.
func NewHTTPProvider(cfg config.Directory, logger *logger.Logger) (Provider, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid directory base url: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("X-API-Key", cfg.APIKey)

	return &httpProvider{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("address %q has no host", raw)
	}

	return strings.TrimRight(parsed.String(), "/"), nil
}

// VerifyToken implements [Provider]. It POSTs the token to
// POST /v1/tokens:verify and decodes the resolved identity from the
// response. A 401 response maps to [ErrInvalidToken].
func (h *httpProvider) VerifyToken(ctx context.Context, token string) (models.Identity, error) {
	var identity models.Identity

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"token": token}).
		SetResult(&identity).
		Post("/v1/tokens:verify")
	if err != nil {
		return models.Identity{}, fmt.Errorf("verify token request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Identity{}, err
	}

	return identity, nil
}

// CreatePrincipal implements [Provider]. It POSTs the registration payload
// to POST /v1/principals. A 409 response maps to [ErrEmailExists].
func (h *httpProvider) CreatePrincipal(ctx context.Context, params PrincipalParams) (models.Principal, error) {
	var principal models.Principal

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(params).
		SetResult(&principal).
		Post("/v1/principals")
	if err != nil {
		return models.Principal{}, fmt.Errorf("create principal request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Principal{}, err
	}

	return principal, nil
}

// UpdatePrincipal implements [Provider]. It PATCHes the non-nil fields of
// upd to PATCH /v1/principals/{uid}.
func (h *httpProvider) UpdatePrincipal(ctx context.Context, uid string, upd PrincipalUpdate) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(upd).
		SetPathParam("uid", uid).
		Patch("/v1/principals/{uid}")
	if err != nil {
		return fmt.Errorf("update principal request: %w", err)
	}

	return mapHTTPError(resp)
}

// DeletePrincipal implements [Provider]. It DELETEs /v1/principals/{uid}.
func (h *httpProvider) DeletePrincipal(ctx context.Context, uid string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("uid", uid).
		Delete("/v1/principals/{uid}")
	if err != nil {
		return fmt.Errorf("delete principal request: %w", err)
	}

	return mapHTTPError(resp)
}

// GetDocument implements [Provider]. It GETs
// /v1/documents/{collection}/{id} and decodes the body into out.
func (h *httpProvider) GetDocument(ctx context.Context, collection, id string, out any) error {
	resp, err := h.documentRequest(ctx, collection, id).
		Get("/v1/documents/{collection}/{id}")
	if err != nil {
		return fmt.Errorf("get document request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode document %s/%s: %w", collection, id, err)
	}

	return nil
}

// SetDocument implements [Provider]. It PUTs the full document body to
// PUT /v1/documents/{collection}/{id}.
func (h *httpProvider) SetDocument(ctx context.Context, collection, id string, data any) error {
	resp, err := h.documentRequest(ctx, collection, id).
		SetHeader("Content-Type", "application/json").
		SetBody(data).
		Put("/v1/documents/{collection}/{id}")
	if err != nil {
		return fmt.Errorf("set document request: %w", err)
	}

	return mapHTTPError(resp)
}

// UpdateDocument implements [Provider]. It PATCHes the partial field map
// (dotted paths allowed) to PATCH /v1/documents/{collection}/{id}.
func (h *httpProvider) UpdateDocument(ctx context.Context, collection, id string, fields map[string]any) error {
	resp, err := h.documentRequest(ctx, collection, id).
		SetHeader("Content-Type", "application/json").
		SetBody(fields).
		Patch("/v1/documents/{collection}/{id}")
	if err != nil {
		return fmt.Errorf("update document request: %w", err)
	}

	return mapHTTPError(resp)
}

// DeleteDocument implements [Provider]. It DELETEs
// /v1/documents/{collection}/{id}; a 404 from the remote side is treated as
// success since the document is gone either way.
func (h *httpProvider) DeleteDocument(ctx context.Context, collection, id string) error {
	resp, err := h.documentRequest(ctx, collection, id).
		Delete("/v1/documents/{collection}/{id}")
	if err != nil {
		return fmt.Errorf("delete document request: %w", err)
	}

	if err = mapHTTPError(resp); err != nil && !isNotFound(err) {
		return err
	}

	return nil
}

func (h *httpProvider) documentRequest(ctx context.Context, collection, id string) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{
			"collection": collection,
			"id":         id,
		})
}
