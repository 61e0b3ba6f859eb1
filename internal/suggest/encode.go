package suggest

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"

	"github.com/lightart/lightart/internal/adapter"
)

const jpegQuality = 90

// EncodeJPEG renders the image as a base64 JPEG payload for transport to a
// remote vision model.
func EncodeJPEG(img image.Image) (adapter.ImagePayload, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return adapter.ImagePayload{}, fmt.Errorf("suggest: jpeg encode: %w", err)
	}
	return adapter.ImagePayload{
		MIMEType: "image/jpeg",
		Base64:   base64.StdEncoding.EncodeToString(buf.Bytes()),
	}, nil
}
