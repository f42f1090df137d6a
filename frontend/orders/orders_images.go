package orders

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// maxImageBytes bounds a single uploaded image. Images are embedded in the
// serialized collection, so oversized uploads would bloat every persist.
const maxImageBytes = 2 << 20

// EncodeImage converts an uploaded file into a self-contained data URI
// suitable for the order's images list. Non-image content is rejected.
func EncodeImage(r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxImageBytes+1))
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("empty image upload")
	}
	if len(data) > maxImageBytes {
		return "", fmt.Errorf("image exceeds %d bytes", maxImageBytes)
	}

	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		return "", fmt.Errorf("unsupported content type %s", mime)
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
