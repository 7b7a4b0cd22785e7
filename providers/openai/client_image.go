package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/petal-labs/easel/core"
	"github.com/petal-labs/easel/internal/log"
	"github.com/petal-labs/easel/providers/internal/normalize"
)

// GenerateImage submits a prompt to the Images API and returns image URLs.
func (p *OpenAI) GenerateImage(ctx context.Context, req *core.ImageGenerateRequest) (*core.ImageResponse, error) {
	wire := mapImageGenerateRequest(req)
	body, err := json.Marshal(wire)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	if p.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.config.Timeout)
		defer cancel()
	}

	url := p.config.BaseURL + "/images/generations"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for key, values := range p.buildHeaders() {
		for _, v := range values {
			httpReq.Header.Add(key, v)
		}
	}

	logger := log.FromContextOrDiscard(ctx)
	logger.Debug("images request",
		slog.String("model", wire.Model),
		slog.Int("n", wire.N),
		slog.String("size", wire.Size),
	)

	resp, err := p.config.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, newNetworkError(err)
	}
	defer resp.Body.Close()
	logger.Debug("images response",
		slog.Int("status", resp.StatusCode),
		slog.String("request_id", resp.Header.Get(normalize.RequestIDHeader)),
	)

	if resp.StatusCode != http.StatusOK {
		return nil, normalize.Response(ProviderID, resp)
	}

	var openaiResp openAIImageResponse
	if err := json.NewDecoder(resp.Body).Decode(&openaiResp); err != nil {
		return nil, newDecodeError(err)
	}

	if openaiResp.Error != nil {
		return nil, normalize.ProviderError(ProviderID, resp.StatusCode,
			resp.Header.Get(normalize.RequestIDHeader),
			openaiResp.Error.Code, openaiResp.Error.Message, core.ErrBadRequest)
	}

	return mapImageResponse(&openaiResp), nil
}
