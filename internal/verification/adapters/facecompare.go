package adapters

import (
	"context"
	"net/http"

	"idverify/internal/verification/ports"
)

// HTTPFaceComparer fronts the face-comparison service.
type HTTPFaceComparer struct {
	baseURL string
	client  *http.Client
}

// NewHTTPFaceComparer creates a comparison client for the given base URL.
// A nil http.Client falls back to http.DefaultClient.
func NewHTTPFaceComparer(baseURL string, client *http.Client) *HTTPFaceComparer {
	return &HTTPFaceComparer{baseURL: baseURL, client: defaultClient(client)}
}

// imageRef mirrors ports.ImageRef on the wire. Bytes marshal as base64,
// which is what the comparison service expects for inline images.
type imageRef struct {
	Key   string `json:"key,omitempty"`
	Bytes []byte `json:"bytes,omitempty"`
}

type compareRequest struct {
	Source              imageRef `json:"source"`
	Target              imageRef `json:"target"`
	SimilarityThreshold float64  `json:"similarity_threshold"`
}

type compareResponse struct {
	Candidates []ports.FaceMatchCandidate `json:"candidates"`
}

func (c *HTTPFaceComparer) Compare(ctx context.Context, source, target ports.ImageRef, similarityThreshold float64) ([]ports.FaceMatchCandidate, error) {
	var resp compareResponse
	err := doJSON(ctx, c.client, http.MethodPost, c.baseURL+"/v1/compare", compareRequest{
		Source:              imageRef{Key: source.Key, Bytes: source.Bytes},
		Target:              imageRef{Key: target.Key, Bytes: target.Bytes},
		SimilarityThreshold: similarityThreshold,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Candidates, nil
}
