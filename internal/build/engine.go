// Package build turns a Library into output files. In quick mode tasks
// whose output is already newer than every known input are skipped; in
// all modes a freshly rendered page is only written when its text
// actually changed, to avoid needless downstream timestamp churn.
package build

import (
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	serrors "github.com/JonHurst/ssg/internal/errors"
	"github.com/JonHurst/ssg/internal/library"
	"github.com/JonHurst/ssg/internal/logfields"
	"github.com/JonHurst/ssg/internal/render"
)

// Engine executes the Library's render tasks into the public directory.
// It borrows the Library read-only.
type Engine struct {
	lib      *library.Library
	renderer *render.Engine
	public   string
}

// NewEngine creates a build Engine writing under public.
func NewEngine(lib *library.Library, renderer *render.Engine, public string) *Engine {
	return &Engine{lib: lib, renderer: renderer, public: public}
}

// Run processes every task in order. Quick mode skips a task when its
// output file exists and is strictly newer than the task's latest
// relevant timestamp, accepting that dependencies outside the descriptor
// and its listed content files are not tracked.
func (e *Engine) Run(quick bool) error {
	for _, task := range e.lib.Tasks {
		outPath := filepath.Join(e.public, filepath.FromSlash(task.OutputPath))

		if quick {
			if info, err := os.Stat(outPath); err == nil && info.ModTime().After(task.Latest) {
				continue
			}
		}

		output, err := e.renderer.Render(task, rootPrefix(task.OutputPath))
		if err != nil {
			return err
		}

		if old, err := os.ReadFile(outPath); err == nil && string(old) == output { // #nosec G304
			continue
		}

		slog.Info("Writing page", logfields.Page(task.PageID), logfields.Template(task.Template))
		if err := os.MkdirAll(filepath.Dir(outPath), 0o750); err != nil {
			return serrors.IO(outPath, err)
		}
		if err := os.WriteFile(outPath, []byte(output), 0o644); err != nil { // #nosec G306
			return serrors.IO(outPath, err)
		}
	}
	return nil
}

// rootPrefix computes the relative prefix from the output file's
// directory back to the output root: one "../" per parent hop, or "./"
// for files at the root.
func rootPrefix(outputPath string) string {
	dir := path.Dir(outputPath)
	if dir == "." {
		return "./"
	}
	return strings.Repeat("../", strings.Count(dir, "/")+1)
}
