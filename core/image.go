package core

import (
	"strings"

	"github.com/samber/lo"
)

// ModelID identifies an image model offered by a provider.
type ModelID string

// Size represents the canvas shape offered to the provider.
type Size string

const (
	SizeSquare    Size = "square"
	SizePortrait  Size = "portrait"
	SizeLandscape Size = "landscape"
)

var sizeDimensions = map[Size]string{
	SizeSquare:    "1024x1024",
	SizePortrait:  "1024x1792",
	SizeLandscape: "1792x1024",
}

// Sizes returns the supported canvas sizes in display order.
func Sizes() []Size {
	return []Size{SizeSquare, SizePortrait, SizeLandscape}
}

// IsValid reports whether the size is a recognized value.
func (s Size) IsValid() bool {
	_, ok := sizeDimensions[s]
	return ok
}

// Dimensions returns the provider pixel string for the size, e.g. "1024x1792".
// Unknown sizes are passed through unchanged so the provider can reject them.
func (s Size) Dimensions() string {
	if d, ok := sizeDimensions[s]; ok {
		return d
	}
	return string(s)
}

// Label returns a human readable description such as "Portrait (1024x1792)".
func (s Size) Label() string {
	name := string(s)
	if name != "" {
		name = strings.ToUpper(name[:1]) + name[1:]
	}
	return name + " (" + s.Dimensions() + ")"
}

// ParseSize accepts a size name ("square") or its pixel string ("1024x1024").
func ParseSize(v string) (Size, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	if s := Size(v); s.IsValid() {
		return s, nil
	}
	for s, dims := range sizeDimensions {
		if v == dims {
			return s, nil
		}
	}
	return "", &Failure{Kind: FailureValidation, Message: "unknown size: " + v, Err: ErrInvalidOption}
}

// Quality represents the provider fidelity tier.
type Quality string

const (
	QualityStandard Quality = "standard"
	QualityHD       Quality = "hd"
)

// Qualities returns the supported quality tiers.
func Qualities() []Quality {
	return []Quality{QualityStandard, QualityHD}
}

// IsValid reports whether the quality is a recognized value.
func (q Quality) IsValid() bool {
	return q == QualityStandard || q == QualityHD
}

// ParseQuality accepts a quality tier name, case-insensitively.
func ParseQuality(v string) (Quality, error) {
	q := Quality(strings.ToLower(strings.TrimSpace(v)))
	if !q.IsValid() {
		return "", &Failure{Kind: FailureValidation, Message: "unknown quality: " + v, Err: ErrInvalidOption}
	}
	return q, nil
}

// Style is a named artistic modifier appended to the prompt.
type Style string

// StyleNatural is the default style; it leaves the prompt untouched.
const StyleNatural Style = "Natural"

const (
	StyleWatercolor  Style = "Watercolor"
	StyleOilPainting Style = "Oil Painting"
	StyleDigitalArt  Style = "Digital Art"
	StylePopArt      Style = "Pop Art"
	StyleMinimalist  Style = "Minimalist"
	StyleAnime       Style = "Anime"
	StyleComicBook   Style = "Comic Book"
	StyleCyberpunk   Style = "Cyberpunk"
	StyleSteampunk   Style = "Steampunk"
)

var styles = []Style{
	StyleNatural,
	StyleWatercolor,
	StyleOilPainting,
	StyleDigitalArt,
	StylePopArt,
	StyleMinimalist,
	StyleAnime,
	StyleComicBook,
	StyleCyberpunk,
	StyleSteampunk,
}

// Styles returns the fixed list of styles, Natural first.
func Styles() []Style {
	result := make([]Style, len(styles))
	copy(result, styles)
	return result
}

// IsNatural reports whether the style leaves the prompt unchanged.
// The empty style counts as Natural.
func (s Style) IsNatural() bool {
	return s == "" || s == StyleNatural
}

// IsValid reports whether the style is one of the fixed list.
func (s Style) IsValid() bool {
	return lo.Contains(styles, s)
}

// ParseStyle matches a style name case-insensitively ("oil painting" -> Oil Painting).
func ParseStyle(v string) (Style, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return StyleNatural, nil
	}
	s, ok := lo.Find(styles, func(s Style) bool {
		return strings.EqualFold(string(s), v)
	})
	if !ok {
		return "", &Failure{Kind: FailureValidation, Message: "unknown style: " + v, Err: ErrInvalidOption}
	}
	return s, nil
}

// ImageGenerateRequest is the provider-level request for image generation.
type ImageGenerateRequest struct {
	Model   ModelID `json:"model"`
	Prompt  string  `json:"prompt"`
	N       int     `json:"n,omitempty"`       // Number of images (default 1)
	Size    string  `json:"size,omitempty"`    // Pixel dimensions, e.g. "1024x1024"
	Quality string  `json:"quality,omitempty"` // "standard" or "hd"
}

// ImageResponse is a provider response carrying image references.
type ImageResponse struct {
	Created int64       `json:"created"`
	Data    []ImageData `json:"data"`
}

// ImageData is a single generated image reference.
type ImageData struct {
	URL           string `json:"url,omitempty"`
	RevisedPrompt string `json:"revised_prompt,omitempty"`
}
