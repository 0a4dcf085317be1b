package adapters

import (
	"context"
	"net/http"

	"golang.org/x/sync/errgroup"

	"idverify/internal/verification/ports"
)

// HTTPDocumentAnalyzer fronts the document-analysis service. Text extraction
// and face detection are separate endpoints there, so Analyze fans out to
// both concurrently and merges the results.
type HTTPDocumentAnalyzer struct {
	baseURL string
	client  *http.Client
}

// NewHTTPDocumentAnalyzer creates an analyzer client for the given base URL.
// A nil http.Client falls back to http.DefaultClient.
func NewHTTPDocumentAnalyzer(baseURL string, client *http.Client) *HTTPDocumentAnalyzer {
	return &HTTPDocumentAnalyzer{baseURL: baseURL, client: defaultClient(client)}
}

type analyzeRequest struct {
	ImageKey string `json:"image_key"`
}

type textResponse struct {
	Lines []string `json:"lines"`
}

type facesResponse struct {
	Faces []ports.FaceDetail `json:"faces"`
}

func (a *HTTPDocumentAnalyzer) Analyze(ctx context.Context, imageKey string) (*ports.DocumentAnalysis, error) {
	req := analyzeRequest{ImageKey: imageKey}

	var (
		text  textResponse
		faces facesResponse
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return doJSON(gctx, a.client, http.MethodPost, a.baseURL+"/v1/analyze/text", req, &text)
	})
	g.Go(func() error {
		return doJSON(gctx, a.client, http.MethodPost, a.baseURL+"/v1/analyze/faces", req, &faces)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &ports.DocumentAnalysis{
		TextLines: text.Lines,
		Faces:     faces.Faces,
	}, nil
}
