package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"idverify/internal/verification/models"
	dErrors "idverify/pkg/domain-errors"
)

// fakeService records calls and returns canned results per action.
type fakeService struct {
	processDocument      func(ctx context.Context, req models.ProcessDocumentRequest) (*models.ProcessDocumentResult, error)
	startLivenessSession func(ctx context.Context, req models.StartLivenessSessionRequest) (*models.StartLivenessSessionResult, error)
	verifyLiveness       func(ctx context.Context, req models.VerifyLivenessRequest) (*models.VerifyLivenessResult, error)
	compareFaces         func(ctx context.Context, req models.CompareFacesRequest) (*models.CompareFacesResult, error)
	calls                int
}

func (f *fakeService) ProcessDocument(ctx context.Context, req models.ProcessDocumentRequest) (*models.ProcessDocumentResult, error) {
	f.calls++
	return f.processDocument(ctx, req)
}

func (f *fakeService) StartLivenessSession(ctx context.Context, req models.StartLivenessSessionRequest) (*models.StartLivenessSessionResult, error) {
	f.calls++
	return f.startLivenessSession(ctx, req)
}

func (f *fakeService) VerifyLiveness(ctx context.Context, req models.VerifyLivenessRequest) (*models.VerifyLivenessResult, error) {
	f.calls++
	return f.verifyLiveness(ctx, req)
}

func (f *fakeService) CompareFaces(ctx context.Context, req models.CompareFacesRequest) (*models.CompareFacesResult, error) {
	f.calls++
	return f.compareFaces(ctx, req)
}

func newTestRouter(svc Service) chi.Router {
	r := chi.NewRouter()
	h := New(svc, slog.New(slog.DiscardHandler), nil)
	h.Register(r)
	return r
}

func postVerify(t *testing.T, router http.Handler, body map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/verify", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return body
}

func TestHandleVerify_RejectsMalformedJSON(t *testing.T) {
	svc := &fakeService{}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/verify", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, svc.calls)
}

func TestHandleVerify_RejectsUnknownAction(t *testing.T) {
	svc := &fakeService{}
	router := newTestRouter(svc)

	w := postVerify(t, router, map[string]any{"action": "delete_everything", "userId": "alice"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, string(dErrors.CodeInvalidInput), body["error"])
	assert.Zero(t, svc.calls)
}

func TestHandleVerify_RejectsMissingAction(t *testing.T) {
	router := newTestRouter(&fakeService{})

	w := postVerify(t, router, map[string]any{"userId": "alice"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeBody(t, w)["message"], "action is required")
}

func TestHandleVerify_RejectsInvalidUserID(t *testing.T) {
	svc := &fakeService{}
	router := newTestRouter(svc)

	w := postVerify(t, router, map[string]any{"action": "process_document", "userId": ""})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, svc.calls)
}

func TestHandleVerify_ProcessDocument(t *testing.T) {
	svc := &fakeService{
		processDocument: func(_ context.Context, req models.ProcessDocumentRequest) (*models.ProcessDocumentResult, error) {
			assert.Equal(t, "alice", req.UserID.String())
			assert.Equal(t, "uploads/alice/passport.jpg", req.DocumentKey)
			return &models.ProcessDocumentResult{
				DocumentKey:  req.DocumentKey,
				IsValid:      true,
				DocumentType: models.DocumentTypePassport,
				Fields:       map[string]string{"full_name": "Alice Example"},
			}, nil
		},
	}
	router := newTestRouter(svc)

	w := postVerify(t, router, map[string]any{
		"action":      "process_document",
		"userId":      "alice",
		"documentKey": "uploads/alice/passport.jpg",
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "process_document", body["action"])

	result := body["result"].(map[string]any)
	assert.Equal(t, true, result["is_valid"])
	assert.Equal(t, "PASSPORT", result["document_type"])
}

func TestHandleVerify_ProcessDocumentRequiresDocumentKey(t *testing.T) {
	svc := &fakeService{}
	router := newTestRouter(svc)

	w := postVerify(t, router, map[string]any{"action": "process_document", "userId": "alice"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeBody(t, w)["message"], "documentKey is required")
	assert.Zero(t, svc.calls)
}

func TestHandleVerify_RejectedDocumentIsStillSuccess(t *testing.T) {
	svc := &fakeService{
		processDocument: func(_ context.Context, req models.ProcessDocumentRequest) (*models.ProcessDocumentResult, error) {
			return &models.ProcessDocumentResult{
				DocumentKey:      req.DocumentKey,
				IsValid:          false,
				DocumentType:     models.DocumentTypeUnknown,
				ValidationErrors: []string{"missing field: name"},
			}, nil
		},
	}
	router := newTestRouter(svc)

	w := postVerify(t, router, map[string]any{
		"action":      "process_document",
		"userId":      "alice",
		"documentKey": "doc.jpg",
	})

	// A rejected document is a judgment, not a transport failure.
	require.Equal(t, http.StatusOK, w.Code)
	result := decodeBody(t, w)["result"].(map[string]any)
	assert.Equal(t, false, result["is_valid"])
}

func TestHandleVerify_StartLivenessSession(t *testing.T) {
	svc := &fakeService{
		startLivenessSession: func(_ context.Context, req models.StartLivenessSessionRequest) (*models.StartLivenessSessionResult, error) {
			return &models.StartLivenessSessionResult{SessionID: "sess-1", SessionToken: "token"}, nil
		},
	}
	router := newTestRouter(svc)

	w := postVerify(t, router, map[string]any{"action": "start_liveness_session", "userId": "alice"})

	require.Equal(t, http.StatusOK, w.Code)
	result := decodeBody(t, w)["result"].(map[string]any)
	assert.Equal(t, "sess-1", result["session_id"])
	assert.Equal(t, "token", result["session_token"])
}

func TestHandleVerify_VerifyLivenessRequiresSessionID(t *testing.T) {
	svc := &fakeService{}
	router := newTestRouter(svc)

	w := postVerify(t, router, map[string]any{"action": "verify_liveness", "userId": "alice"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, svc.calls)
}

func TestHandleVerify_PreconditionFailureMapsTo409(t *testing.T) {
	svc := &fakeService{
		verifyLiveness: func(_ context.Context, req models.VerifyLivenessRequest) (*models.VerifyLivenessResult, error) {
			return nil, dErrors.New(dErrors.CodePreconditionFailed, "no document found for comparison")
		},
	}
	router := newTestRouter(svc)

	w := postVerify(t, router, map[string]any{
		"action":    "verify_liveness",
		"userId":    "alice",
		"sessionId": "sess-1",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, string(dErrors.CodePreconditionFailed), body["error"])
	assert.Contains(t, body["message"], "no document found")
}

func TestHandleVerify_FailedLivenessIsStillSuccess(t *testing.T) {
	svc := &fakeService{
		verifyLiveness: func(_ context.Context, req models.VerifyLivenessRequest) (*models.VerifyLivenessResult, error) {
			return &models.VerifyLivenessResult{
				IsLive:     false,
				Confidence: 70.0,
				Reason:     "liveness confidence 70.0 below minimum 90.0",
			}, nil
		},
	}
	router := newTestRouter(svc)

	w := postVerify(t, router, map[string]any{
		"action":    "verify_liveness",
		"userId":    "alice",
		"sessionId": "sess-1",
	})

	require.Equal(t, http.StatusOK, w.Code)
	result := decodeBody(t, w)["result"].(map[string]any)
	assert.Equal(t, false, result["is_live"])
	assert.Equal(t, false, result["verification_completed"])
}

func TestHandleVerify_CompareFaces(t *testing.T) {
	svc := &fakeService{
		compareFaces: func(_ context.Context, req models.CompareFacesRequest) (*models.CompareFacesResult, error) {
			assert.Equal(t, "selfies/alice.jpg", req.SourceImageKey)
			return &models.CompareFacesResult{Matched: true, Similarity: 91.0}, nil
		},
	}
	router := newTestRouter(svc)

	w := postVerify(t, router, map[string]any{
		"action":         "compare_faces",
		"userId":         "alice",
		"sourceImageKey": "selfies/alice.jpg",
	})

	require.Equal(t, http.StatusOK, w.Code)
	result := decodeBody(t, w)["result"].(map[string]any)
	assert.Equal(t, true, result["matched"])
	assert.Equal(t, 91.0, result["similarity"])
}

func TestHandleVerify_UnavailableCollaboratorMapsTo502(t *testing.T) {
	svc := &fakeService{
		processDocument: func(_ context.Context, req models.ProcessDocumentRequest) (*models.ProcessDocumentResult, error) {
			return nil, dErrors.New(dErrors.CodeUnavailable, "document analysis failed")
		},
	}
	router := newTestRouter(svc)

	w := postVerify(t, router, map[string]any{
		"action":      "process_document",
		"userId":      "alice",
		"documentKey": "doc.jpg",
	})

	assert.Equal(t, http.StatusBadGateway, w.Code)
}
