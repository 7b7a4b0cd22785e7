package openai

import "github.com/petal-labs/easel/core"

// responseFormatURL asks the API for hosted image URLs instead of inline base64.
const responseFormatURL = "url"

// mapImageGenerateRequest converts a core request to OpenAI format.
func mapImageGenerateRequest(req *core.ImageGenerateRequest) *openAIImageRequest {
	r := &openAIImageRequest{
		Model:          string(req.Model),
		Prompt:         req.Prompt,
		N:              req.N,
		Size:           req.Size,
		Quality:        req.Quality,
		ResponseFormat: responseFormatURL,
	}

	if r.Model == "" {
		r.Model = string(core.DefaultModel)
	}
	if r.N == 0 {
		r.N = 1
	}

	return r
}

// mapImageResponse converts an OpenAI response to core format.
func mapImageResponse(resp *openAIImageResponse) *core.ImageResponse {
	r := &core.ImageResponse{
		Created: resp.Created,
		Data:    make([]core.ImageData, len(resp.Data)),
	}

	for i, d := range resp.Data {
		r.Data[i] = core.ImageData{
			URL:           d.URL,
			RevisedPrompt: d.RevisedPrompt,
		}
	}

	return r
}
