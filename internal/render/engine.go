// Package render wraps Go's text/template engine for page rendering. A
// template receives the page's map view plus the full page map, the tag
// index and the root prefix, and can call the registered latest,
// dimensions and markdown functions.
package render

import (
	"bytes"
	"os"
	"path/filepath"
	"text/template"

	serrors "github.com/JonHurst/ssg/internal/errors"
	"github.com/JonHurst/ssg/internal/library"
)

// Engine renders pages against templates on disk.
type Engine struct {
	templatesDir string
	lib          *library.Library
	pagesView    map[string]any
}

// NewEngine creates an Engine loading templates from templatesDir and
// drawing page data from lib.
func NewEngine(templatesDir string, lib *library.Library) *Engine {
	views := make(map[string]any, len(lib.Pages))
	for id, p := range lib.Pages {
		views[id] = pageView(p)
	}
	return &Engine{templatesDir: templatesDir, lib: lib, pagesView: views}
}

// Render executes the task's template for its page. The root parameter
// is the relative prefix from the output file back to the output root.
//
// Template parse and execute failures surface as template-kind errors so
// the CLI can report them with their own exit code; text/template parse
// errors carry the template name and line number in their message.
func (e *Engine) Render(task library.Task, root string) (string, error) {
	page := e.lib.Pages[task.PageID]

	src, err := os.ReadFile(filepath.Join(e.templatesDir, filepath.FromSlash(task.Template))) // #nosec G304
	if err != nil {
		return "", serrors.IO(task.Template, err)
	}

	tpl, err := template.New(task.Template).
		Funcs(e.funcs(page)).
		Option("missingkey=error").
		Parse(string(src))
	if err != nil {
		return "", serrors.Template(task.Template, err)
	}

	data := map[string]any{
		"page":  e.pagesView[task.PageID],
		"pages": e.pagesView,
		"tags":  e.lib.Tags,
		"root":  root,
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", serrors.Template(task.Template, err)
	}
	return buf.String(), nil
}
