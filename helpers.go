package blogbuild

import (
	"net/url"
	"path"
	"strings"
)

// BuildURL joins a base URL with path segments. With no segments it returns
// the site root with a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join("/", u.Path, path.Join(pathSegments...))
	if len(pathSegments) == 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// nonNil returns tags, or an empty slice when tags is nil, so it encodes as [].
func nonNil(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
