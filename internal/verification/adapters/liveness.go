package adapters

import (
	"context"
	"net/http"
	"net/url"

	"idverify/internal/verification/ports"
	"idverify/pkg/domain"
)

// HTTPLivenessProvider fronts the biometric liveness service.
type HTTPLivenessProvider struct {
	baseURL string
	client  *http.Client
}

// NewHTTPLivenessProvider creates a liveness client for the given base URL.
// A nil http.Client falls back to http.DefaultClient.
func NewHTTPLivenessProvider(baseURL string, client *http.Client) *HTTPLivenessProvider {
	return &HTTPLivenessProvider{baseURL: baseURL, client: defaultClient(client)}
}

type createSessionRequest struct {
	UserID           string `json:"user_id"`
	AuditImagesLimit int    `json:"audit_images_limit"`
}

type createSessionResponse struct {
	SessionID   string `json:"session_id"`
	ClientToken string `json:"client_token"`
}

func (p *HTTPLivenessProvider) CreateSession(ctx context.Context, userID domain.UserID, auditImagesLimit int) (*ports.LivenessSession, error) {
	var resp createSessionResponse
	err := doJSON(ctx, p.client, http.MethodPost, p.baseURL+"/v1/sessions", createSessionRequest{
		UserID:           userID.String(),
		AuditImagesLimit: auditImagesLimit,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &ports.LivenessSession{
		ID:          resp.SessionID,
		ClientToken: resp.ClientToken,
	}, nil
}

type sessionResultResponse struct {
	Confidence        *float64 `json:"confidence"`
	ReferenceImageKey string   `json:"reference_image_key"`
}

func (p *HTTPLivenessProvider) SessionResult(ctx context.Context, sessionID domain.SessionID) (*ports.LivenessResult, error) {
	var resp sessionResultResponse
	endpoint := p.baseURL + "/v1/sessions/" + url.PathEscape(sessionID.String()) + "/result"
	if err := doJSON(ctx, p.client, http.MethodGet, endpoint, nil, &resp); err != nil {
		return nil, err
	}
	return &ports.LivenessResult{
		Confidence:        resp.Confidence,
		ReferenceImageKey: resp.ReferenceImageKey,
	}, nil
}
