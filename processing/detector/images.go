package processing

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"net/url"
	"strings"
)

// FetchImage downloads and decodes one asset. Fetches are best-effort and
// independent: no retry, and a failure affects only the caller.
func (d *RemoteDetector) FetchImage(ctx context.Context, imageURL string) (image.Image, error) {
	if img, ok := d.images.Get(imageURL); ok {
		return img, nil
	}

	var (
		img image.Image
		err error
	)
	if strings.HasPrefix(imageURL, "data:") {
		img, err = decodeDataURL(imageURL)
	} else {
		img, err = d.download(ctx, imageURL)
	}
	if err != nil {
		return nil, err
	}

	d.images.Set(imageURL, img)
	return img, nil
}

func (d *RemoteDetector) download(ctx context.Context, imageURL string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}
	req.Header.Set("Accept", "image/jpeg, image/png, */*")

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch image: status code %d", resp.StatusCode)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

func decodeDataURL(dataURL string) (image.Image, error) {
	meta, payload, ok := strings.Cut(strings.TrimPrefix(dataURL, "data:"), ",")
	if !ok {
		return nil, fmt.Errorf("malformed data URL")
	}

	var raw []byte
	if strings.HasSuffix(meta, ";base64") {
		decoded, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, fmt.Errorf("decode data URL: %w", err)
		}
		raw = decoded
	} else {
		unescaped, err := url.PathUnescape(payload)
		if err != nil {
			return nil, fmt.Errorf("decode data URL: %w", err)
		}
		raw = []byte(unescaped)
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}
