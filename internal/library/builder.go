package library

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/JonHurst/ssg/internal/assets"
	"github.com/JonHurst/ssg/internal/content"
	serrors "github.com/JonHurst/ssg/internal/errors"
	"github.com/JonHurst/ssg/internal/logfields"
)

// Builder walks a content tree and produces the Library for one build
// invocation. All accumulators are build-local; nothing is shared across
// invocations beyond the filesystem itself.
type Builder struct {
	root   string
	parser *Parser
	probe  assets.ProbeFunc
}

// NewBuilder creates a Builder for the given content root.
func NewBuilder(root string) *Builder {
	return &Builder{
		root:   root,
		parser: NewParser(root, content.NewDecoder(os.ReadFile)),
		probe:  assets.Probe,
	}
}

// WithProbe overrides the image dimension probe. Used by tests.
func (b *Builder) WithProbe(probe assets.ProbeFunc) *Builder {
	b.probe = probe
	return b
}

// Build walks the content tree exactly once. Page descriptors parse into
// Page records and Tasks, image files have their dimensions probed, and
// versioned filenames feed the highest-version map. After the walk the
// sibling fix-up and tag index complete the Library, which is never
// mutated afterwards.
//
// A parse failure aborts the whole build annotated with the descriptor
// that failed.
func (b *Builder) Build() (*Library, error) {
	slog.Info("Building library", logfields.Path(b.root))

	pages := map[string]*Page{}
	tasks := []Task{}
	images := map[string]assets.Dimensions{}
	versions := map[string]int{}

	err := filepath.WalkDir(b.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return serrors.IO(p, err)
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(b.root, p)
		if err != nil {
			return serrors.IO(p, err)
		}
		rel = filepath.ToSlash(rel)

		if strings.HasSuffix(rel, PageExt) {
			pageID := strings.TrimSuffix(rel, PageExt)
			subdirs, err := b.listSubdirs(filepath.Dir(p))
			if err != nil {
				return err
			}
			page, task, err := b.parser.ParsePage(pageID, subdirs)
			if err != nil {
				return serrors.Annotate(err, p)
			}
			pages[pageID] = page
			if task != nil {
				tasks = append(tasks, *task)
			}
			return nil
		}

		if assets.IsImageExt(filepath.Ext(rel)) {
			dims, err := b.probe(p)
			if err != nil {
				return err
			}
			images[rel] = dims
		}
		assets.RecordVersion(rel, versions)
		return nil
	})
	if err != nil {
		return nil, err
	}

	pages = fixSiblings(pages)
	lib := &Library{
		Pages:     pages,
		Tasks:     tasks,
		Versioned: versions,
		Images:    images,
		Tags:      buildTagIndex(pages),
	}
	slog.Info("Finished building library",
		logfields.Count(len(pages)),
		slog.Int("tasks", len(tasks)))
	return lib, nil
}

// listSubdirs returns the names of dir's immediate subdirectories,
// excluding any that contain an ignore marker. The ignore marker only
// hides a directory from its parent's subdir list; the walk still
// descends into it.
func (b *Builder) listSubdirs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, serrors.IO(dir, err)
	}
	subdirs := []string{}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		marker := filepath.Join(dir, e.Name(), IgnoreMarker)
		if _, err := os.Stat(marker); err == nil {
			continue
		}
		subdirs = append(subdirs, e.Name())
	}
	return subdirs, nil
}
