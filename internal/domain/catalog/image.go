package catalog

import "strings"

// ResolveImageURL turns a possibly relative image path into an absolute URL on origin.
func ResolveImageURL(origin, raw string) string {
	raw = strings.TrimSpace(raw)
	switch {
	case raw == "":
		return ""
	case strings.HasPrefix(raw, "http://"), strings.HasPrefix(raw, "https://"):
		return raw
	case strings.HasPrefix(raw, "//"):
		return "https:" + raw
	}

	origin = strings.TrimRight(origin, "/")
	if origin == "" {
		return raw
	}
	return origin + "/" + strings.TrimLeft(raw, "/")
}
