package adapter

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

const (
	dataPath    = "/api/data"
	versionPath = "/api/version/"

	// HashHeader carries the hex HMAC-SHA256 of the request body.
	HashHeader = "HashSHA256"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	hashKey string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP implementation of [ServerAdapter].
// It normalises the base URL from adapterCfg.HTTPAddress and initialises the
// shared HMAC hasher pool when a hash key is configured.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}
	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	if appCfg.HashKey != "" {
		utils.InitHasherPool(appCfg.HashKey)
	}

	return &httpServerAdapter{client: client, hashKey: appCfg.HashKey, logger: logger}, nil
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
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Read implements [ServerAdapter] with the "read" action.
func (h *httpServerAdapter) Read(ctx context.Context, creds models.Credentials) (models.EntityMap, error) {
	resp, err := h.post(ctx, models.ActionRequest{
		Action: models.ActionRead,
		ID:     creds.ID,
		Key:    creds.Key,
	})
	if err != nil {
		return nil, fmt.Errorf("read request: %w", err)
	}

	notes, err := decodeEntityMap(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("decode read response: %w", err)
	}
	return notes, nil
}

// UploadAndMerge implements [ServerAdapter] with the "uploadAndMerge" action.
func (h *httpServerAdapter) UploadAndMerge(ctx context.Context, creds models.Credentials, body models.EntityMap) (models.EntityMap, error) {
	if body == nil {
		body = models.EntityMap{}
	}

	resp, err := h.post(ctx, models.ActionRequest{
		Action: models.ActionUploadAndMerge,
		ID:     creds.ID,
		Key:    creds.Key,
		Body:   body,
	})
	if err != nil {
		return nil, fmt.Errorf("upload and merge request: %w", err)
	}

	var merged struct {
		Body json.RawMessage `json:"body"`
	}
	if err = json.Unmarshal(resp.Body(), &merged); err != nil {
		return nil, fmt.Errorf("decode merge response: %w", err)
	}

	delta, err := decodeEntityMap(merged.Body)
	if err != nil {
		return nil, fmt.Errorf("decode merge response: %w", err)
	}
	return delta, nil
}

// CreateSharedNote implements [ServerAdapter] with the "createSharedNote"
// action.
func (h *httpServerAdapter) CreateSharedNote(ctx context.Context, creds models.Credentials, content models.EntityMap) error {
	raw, err := json.Marshal(content)
	if err != nil {
		return fmt.Errorf("encode shared note: %w", err)
	}

	_, err = h.post(ctx, models.ActionRequest{
		Action:  models.ActionCreateSharedNote,
		ID:      creds.ID,
		Key:     creds.Key,
		Content: raw,
	})
	if err != nil {
		return fmt.Errorf("create shared note request: %w", err)
	}
	return nil
}

// GetSharedNote implements [ServerAdapter] with the "getSharedNote" action.
func (h *httpServerAdapter) GetSharedNote(ctx context.Context, creds models.Credentials) (models.EntityMap, error) {
	resp, err := h.post(ctx, models.ActionRequest{
		Action: models.ActionGetSharedNote,
		ID:     creds.ID,
		Key:    creds.Key,
	})
	if err != nil {
		return nil, fmt.Errorf("get shared note request: %w", err)
	}

	var shared models.SharedNoteResponse
	if err = json.Unmarshal(resp.Body(), &shared); err != nil {
		return nil, fmt.Errorf("decode shared note response: %w", err)
	}

	notes, err := decodeEntityMap(shared.Body)
	if err != nil {
		return nil, fmt.Errorf("decode shared note body: %w", err)
	}
	return notes, nil
}

// GetVersion implements [ServerAdapter]. It GETs /api/version/.
func (h *httpServerAdapter) GetVersion(ctx context.Context) (models.AppBuildInfo, error) {
	var info models.AppBuildInfo

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&info).
		Get(versionPath)
	if err != nil {
		return info, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return info, err
	}
	return info, nil
}

// decodeEntityMap accepts an empty body, null and "[]" (the way older servers
// encode an empty map) as an empty tree.
func decodeEntityMap(raw []byte) (models.EntityMap, error) {
	switch strings.TrimSpace(string(raw)) {
	case "", "null", "[]":
		return models.EntityMap{}, nil
	}

	var notes models.EntityMap
	if err := json.Unmarshal(raw, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (h *httpServerAdapter) post(ctx context.Context, req models.ActionRequest) (*resty.Response, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	r := h.client.R().
		SetContext(ctx).
		SetBody(payload)
	if h.hashKey != "" {
		r.SetHeader(HashHeader, hex.EncodeToString(utils.Hash(payload)))
	}

	resp, err := r.Post(dataPath)
	if err != nil {
		return nil, err
	}

	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().
			Str("action", string(req.Action)).
			Int("status", resp.StatusCode()).
			Err(err).
			Msg("action failed")
		return nil, err
	}

	return resp, nil
}
