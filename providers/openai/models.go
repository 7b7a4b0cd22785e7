// Package openai provides an OpenAI Images API provider for Easel.
package openai

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/petal-labs/easel/core"
)

// Model constants for OpenAI image models.
const (
	ModelDALLE3 core.ModelID = "dall-e-3"
	ModelDALLE2 core.ModelID = "dall-e-2"
)

// ModelInfo describes an image model and the options it accepts.
type ModelInfo struct {
	ID          core.ModelID
	DisplayName string
	Sizes       []string
	Qualities   []core.Quality
	MaxImages   int // Largest n accepted in one call
}

var models = []ModelInfo{
	{
		ID:          ModelDALLE3,
		DisplayName: "DALL-E 3",
		Sizes:       []string{"1024x1024", "1024x1792", "1792x1024"},
		Qualities:   []core.Quality{core.QualityStandard, core.QualityHD},
		MaxImages:   1,
	},
	{
		ID:          ModelDALLE2,
		DisplayName: "DALL-E 2",
		Sizes:       []string{"256x256", "512x512", "1024x1024"},
		Qualities:   []core.Quality{core.QualityStandard},
		MaxImages:   10,
	},
}

// GetModelInfo returns the model info for id, or nil if unknown.
func GetModelInfo(id core.ModelID) *ModelInfo {
	for i := range models {
		if models[i].ID == id {
			return &models[i]
		}
	}
	return nil
}

// Models returns the image models this package knows about.
func Models() []ModelInfo {
	result := make([]ModelInfo, len(models))
	copy(result, models)
	return result
}

// Check reports whether the model accepts a request for n images of the given
// pixel size and quality. Violations are validation failures wrapping
// core.ErrInvalidOption.
func (m *ModelInfo) Check(size string, quality core.Quality, n int) error {
	switch {
	case n > m.MaxImages:
		return invalidOption(fmt.Sprintf("%s generates at most %d image(s) per request, got %d", m.ID, m.MaxImages, n))
	case !lo.Contains(m.Sizes, size):
		return invalidOption(fmt.Sprintf("%s does not support size %s (supported: %s)", m.ID, size, strings.Join(m.Sizes, ", ")))
	case quality != "" && !lo.Contains(m.Qualities, quality):
		return invalidOption(fmt.Sprintf("%s does not support quality %s", m.ID, quality))
	}
	return nil
}

func invalidOption(msg string) error {
	return &core.Failure{Kind: core.FailureValidation, Message: msg, Err: core.ErrInvalidOption}
}
