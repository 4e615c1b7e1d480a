package render

import (
	"bytes"
	"fmt"
	"path"
	"strings"
	"text/template"

	"github.com/yuin/goldmark"

	"github.com/JonHurst/ssg/internal/library"
)

var markdown = goldmark.New()

// funcs builds the template function set for one page. The latest and
// dimensions lookups resolve URLs relative to the page's directory, so
// they close over the page being rendered.
func (e *Engine) funcs(page *library.Page) template.FuncMap {
	return template.FuncMap{
		"latest":     func(s string) string { return e.latest(page, s) },
		"dimensions": func(s string) map[string]int { return e.dimensions(page, s) },
		"markdown":   renderMarkdown,
	}
}

// latest maps an unversioned URL to its highest-versioned form. The URL
// may be relative to the page or absolute (site-rooted); the returned
// URL keeps the original form with the version inserted before the
// extension. Unknown URLs pass through unchanged.
func (e *Engine) latest(page *library.Page, s string) string {
	var key string
	if strings.HasPrefix(s, "/") {
		key = path.Clean(strings.TrimLeft(s, "/"))
	} else {
		key = path.Clean(path.Join(page.OutputDir, s))
	}
	v, ok := e.lib.Versioned[key]
	if !ok {
		return s
	}
	ext := path.Ext(s)
	return fmt.Sprintf("%s.%d%s", strings.TrimSuffix(s, ext), v, ext)
}

// dimensions returns {"width": w, "height": h} for a known image URL
// relative to the page, or an empty map for unknown images.
func (e *Engine) dimensions(page *library.Page, s string) map[string]int {
	key := path.Clean(path.Join(page.OutputDir, s))
	d, ok := e.lib.Images[key]
	if !ok {
		return map[string]int{}
	}
	return map[string]int{"width": d.Width, "height": d.Height}
}

func renderMarkdown(s string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(s), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
