package processing

import (
	"strings"
)

const resultsSegment = "results"

// ResolveAssetURL maps a server-side artifact path to the URL that serves
// it. Absolute http(s) and data: URLs pass through; empty input yields false.
func ResolveAssetURL(baseURL, path string) (string, bool) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", false
	}
	if strings.HasPrefix(path, "http") || strings.HasPrefix(path, "data:") {
		return path, true
	}

	segments := strings.Split(strings.ReplaceAll(path, "\\", "/"), "/")
	for i, s := range segments {
		if s == resultsSegment {
			segments = segments[i+1:]
			break
		}
	}
	rel := strings.Trim(strings.Join(segments, "/"), "/")

	return strings.TrimRight(baseURL, "/") + PathImages + rel, true
}

func (d *RemoteDetector) ResolveAssetURL(path string) (string, bool) {
	return ResolveAssetURL(d.baseURL, path)
}
