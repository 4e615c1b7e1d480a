// Package library builds the complete data model for one site build: it
// walks the content tree once, parses every page descriptor, collects
// image dimensions and asset versions, and computes the cross-page
// relationships (sibling ordering and the tag index).
package library

import (
	"time"

	"github.com/JonHurst/ssg/internal/assets"
)

// PageExt is the reserved extension marking a page descriptor.
const PageExt = ".page"

// IgnoreMarker excludes the directory containing it from its parent's
// visible subdirectory list and from the static copy.
const IgnoreMarker = ".ignore"

// Weight orders a page among its siblings. Unweighted pages never
// participate in ordering and always report absent neighbors.
type Weight struct {
	Value      int
	Unweighted bool
}

// Page is the resolved record for one content unit.
type Page struct {
	ID string

	// Output location; all empty except OutputDir when the page has no
	// template and exists purely to carry data and ordering context.
	OutputPath     string
	OutputDir      string
	OutputFilename string

	// Immediate child directory names, ignore-filtered.
	Subdirs []string

	Content map[string]any
	Data    any
	Tags    []string
	Weight  Weight

	// Computed by the sibling fix-up pass; empty string means absent.
	Siblings []string
	Lighter  string
	Heavier  string
}

// Task is one pending render-and-write obligation.
type Task struct {
	PageID     string
	Latest     time.Time
	Template   string
	OutputPath string
}

// Library is the immutable result of a full tree walk.
type Library struct {
	Pages     map[string]*Page
	Tasks     []Task
	Versioned map[string]int
	Images    map[string]assets.Dimensions
	Tags      map[string][]string
}
