package openai

// openAIImageRequest is the body of POST /images/generations.
type openAIImageRequest struct {
	Model          string `json:"model"`
	Prompt         string `json:"prompt"`
	N              int    `json:"n,omitempty"`
	Size           string `json:"size,omitempty"`
	Quality        string `json:"quality,omitempty"`
	ResponseFormat string `json:"response_format,omitempty"` // always "url"
}

// openAIImageResponse represents a response from the OpenAI image API.
type openAIImageResponse struct {
	Created int64             `json:"created"`
	Data    []openAIImageData `json:"data"`
	Error   *openAIImageError `json:"error,omitempty"`
}

// openAIImageData represents a single image in the response.
type openAIImageData struct {
	URL           string `json:"url,omitempty"`
	RevisedPrompt string `json:"revised_prompt,omitempty"`
}

// openAIImageError is an error embedded in a 200 response.
type openAIImageError struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
	Type    string `json:"type,omitempty"`
}
