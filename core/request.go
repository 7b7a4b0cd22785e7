package core

import "strings"

// styleSuffix joins the prompt and a non-Natural style name.
const styleSuffix = ", in the style of "

// GenerationRequest is a validated, normalized generation request.
// It is immutable once built; use Build to create one.
type GenerationRequest struct {
	text    string
	prompt  string
	size    Size
	quality Quality
	style   Style
}

// Build validates user input and normalizes it into a GenerationRequest.
// Blank text fails with a validation Failure wrapping ErrEmptyPrompt.
// The style is matched case-insensitively against the fixed list and an
// unknown style fails with ErrInvalidOption. Size and quality are not
// checked here; the provider decides which combinations are legal.
func Build(text string, size Size, quality Quality, style Style) (GenerationRequest, error) {
	if strings.TrimSpace(text) == "" {
		return GenerationRequest{}, &Failure{
			Kind:    FailureValidation,
			Message: ErrEmptyPrompt.Error(),
			Err:     ErrEmptyPrompt,
		}
	}

	if !style.IsValid() {
		parsed, err := ParseStyle(string(style))
		if err != nil {
			return GenerationRequest{}, err
		}
		style = parsed
	}

	prompt := text
	if !style.IsNatural() {
		prompt = text + styleSuffix + string(style)
	}

	return GenerationRequest{
		text:    text,
		prompt:  prompt,
		size:    size,
		quality: quality,
		style:   style,
	}, nil
}

// Prompt returns the text submitted to the provider, style included.
func (r GenerationRequest) Prompt() string { return r.prompt }

// Text returns the caller's original prompt text.
func (r GenerationRequest) Text() string { return r.text }

// Size returns the requested canvas size.
func (r GenerationRequest) Size() Size { return r.size }

// Quality returns the requested quality tier.
func (r GenerationRequest) Quality() Quality { return r.quality }

// Style returns the requested style.
func (r GenerationRequest) Style() Style { return r.style }

// IsZero reports whether r was not produced by Build.
func (r GenerationRequest) IsZero() bool { return r.prompt == "" }
