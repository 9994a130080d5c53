package hf

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/cockroachdb/errors"
)

// InferRequest is the payload for the raw hf-inference task endpoint.
type InferRequest struct {
	Inputs     string           `json:"inputs"`
	Parameters *InferParameters `json:"parameters,omitempty"`

	// Model selects the model path of the endpoint. Not part of the payload.
	Model string `json:"-"`
}

// InferParameters tunes text generation on the task endpoint.
type InferParameters struct {
	MaxNewTokens int     `json:"max_new_tokens,omitempty"`
	Temperature  float64 `json:"temperature,omitempty"`
}

// InferResponse holds the parsed response body. No schema is assumed: the
// router returns different shapes depending on the model task, and error
// payloads are JSON too.
type InferResponse struct {
	StatusCode int
	Raw        json.RawMessage
}

// Pretty renders the response with stable two-space indentation.
func (r InferResponse) Pretty() (string, error) {
	var buf bytes.Buffer

	if err := json.Indent(&buf, r.Raw, "", "  "); err != nil {
		return "", errors.Mark(errors.Wrap(err, "could not render response"), ErrParse)
	}

	return buf.String(), nil
}

// Infer sends a single inference request to the hf-inference model endpoint.
//
// It makes exactly one attempt: no retries, no backoff, no timeout beyond the
// transport's own. The body is read and parsed whatever status the router
// replies with.
func (c *Client) Infer(ctx context.Context, req InferRequest) (*InferResponse, error) {
	model := req.Model
	if model == "" {
		model = DefaultInferModel
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, errors.Wrap(err, "could not encode request body")
	}

	url := fmt.Sprintf("%s/hf-inference/models/%s", c.baseUrl, model)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "could not build request")
	}

	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "request to inference endpoint failed"), ErrTransport)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "could not read response body"), ErrTransport)
	}

	if !json.Valid(body) {
		return nil, errors.Mark(errors.Newf("expected a JSON body, got %q", snippet(body)), ErrParse)
	}

	return &InferResponse{
		StatusCode: resp.StatusCode,
		Raw:        body,
	}, nil
}

func snippet(body []byte) string {
	const max = 120

	if len(body) > max {
		return string(body[:max]) + "..."
	}

	return string(body)
}
