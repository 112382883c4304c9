package sqlite

import "strings"

const crawledImagesRoute = "/api/images/crawled/"

// FormatImageURL turns a stored image reference into a URL the frontend
// can load. Missing values map to the default image and crawled image
// paths map to the crawled image route.
func FormatImageURL(raw string) string {
	if raw == "" || raw == "null" {
		return defaultImage
	}
	if strings.Contains(raw, imagesTable) {
		return crawledImagesRoute + baseName(raw)
	}
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") || strings.HasPrefix(raw, "/") {
		return raw
	}
	return crawledImagesRoute + baseName(raw)
}

func baseName(p string) string {
	return p[strings.LastIndex(p, "/")+1:]
}
