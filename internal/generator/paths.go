package generator

import (
	"path"
	"strings"
)

// buildOutputPath maps a route to its on-disk location. Routes are
// directory-style so generated sites serve cleanly without rewrites.
func buildOutputPath(route string) string {
	clean := strings.Trim(strings.TrimSpace(route), "/")
	if clean == "" {
		return "index.html"
	}
	return path.Join(clean, "index.html")
}

func postRoute(slug string) string {
	return "/" + strings.Trim(slug, "/") + "/"
}

func categoryRoute(slug string) string {
	return "/category/" + strings.Trim(slug, "/") + "/"
}

func tagRoute(slug string) string {
	return "/tag/" + strings.Trim(slug, "/") + "/"
}

func joinOutputPath(base string, rel string) string {
	if strings.TrimSpace(base) == "" {
		return strings.TrimLeft(rel, "/")
	}
	return path.Join(strings.Trim(base, "/"), rel)
}
