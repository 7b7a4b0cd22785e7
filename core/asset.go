package core

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"net/http"

	_ "golang.org/x/image/webp" // register WebP decoder
)

// DownloadBaseName is the file name offered for a downloaded asset, without extension.
const DownloadBaseName = "ai_masterpiece"

// Asset is a generated image retrieved from the provider.
type Asset struct {
	// ImageRef is the URI the provider returned for the image.
	ImageRef string

	// Data holds the raw bytes exactly as downloaded.
	Data []byte

	// Decoded representation and metadata.
	Image    image.Image
	Format   string // "png", "jpeg", "gif" or "webp"
	MIMEType string
	Width    int
	Height   int

	// RevisedPrompt is the prompt the provider actually used, when reported.
	RevisedPrompt string
}

// Download is a file artifact for an asset.
type Download struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Download returns the raw bytes as a file named ai_masterpiece.<format>.
func (a *Asset) Download() Download {
	ext := a.Format
	switch ext {
	case "":
		ext = "png"
	case "jpeg":
		ext = "jpg"
	}
	contentType := a.MIMEType
	if contentType == "" {
		contentType = "image/png"
	}
	return Download{
		Filename:    DownloadBaseName + "." + ext,
		ContentType: contentType,
		Data:        a.Data,
	}
}

// decodeAsset decodes data into a displayable image.
func decodeAsset(ref string, data []byte) (*Asset, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty image body", ErrDecode)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v (detected %s)", ErrDecode, err, http.DetectContentType(data))
	}

	bounds := img.Bounds()
	return &Asset{
		ImageRef: ref,
		Data:     data,
		Image:    img,
		Format:   format,
		MIMEType: "image/" + format,
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
	}, nil
}
