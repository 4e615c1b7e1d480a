package library

import (
	"log/slog"
	"os"
	"path"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/JonHurst/ssg/internal/content"
	serrors "github.com/JonHurst/ssg/internal/errors"
	"github.com/JonHurst/ssg/internal/logfields"
)

// Parser resolves page descriptors into Page records.
type Parser struct {
	root    string
	decoder *content.Decoder
	stat    func(string) (os.FileInfo, error)
}

// NewParser creates a Parser rooted at the content directory.
func NewParser(root string, decoder *content.Decoder) *Parser {
	return &Parser{root: root, decoder: decoder, stat: os.Stat}
}

// ParsePage loads the descriptor identified by pageID, resolves its
// referenced content files, validates its fields and produces the Page
// record plus, when the descriptor declares a template, a render Task.
//
// The descriptor's own mtime seeds the task's latest-relevant timestamp;
// every referenced content file's mtime folds into it.
func (p *Parser) ParsePage(pageID string, subdirs []string) (*Page, *Task, error) {
	slog.Debug("Parsing page", logfields.Page(pageID))

	descPath := filepath.Join(p.root, filepath.FromSlash(pageID)+PageExt)
	info, err := p.stat(descPath)
	if err != nil {
		return nil, nil, serrors.IO(descPath, err)
	}
	latest := info.ModTime()

	raw, err := os.ReadFile(descPath) // #nosec G304 -- descriptor located by the tree walk.
	if err != nil {
		return nil, nil, serrors.IO(descPath, err)
	}
	var doc map[string]any
	if err := toml.Unmarshal(raw, &doc); err != nil {
		return nil, nil, serrors.Decode(descPath, err)
	}

	pageContent := map[string]any{}
	if c, ok := doc["content"]; ok {
		table, ok := c.(map[string]any)
		if !ok {
			return nil, nil, serrors.Validation(descPath,
				"field 'content' must be a table of identifiers and valid filepaths")
		}
		for id, v := range table {
			rel, ok := v.(string)
			if !ok {
				return nil, nil, serrors.Validation(descPath,
					"field 'content' must be a table of identifiers and valid filepaths")
			}
			cpath := filepath.Join(filepath.Dir(descPath), filepath.FromSlash(rel))
			cinfo, err := p.stat(cpath)
			if err != nil {
				return nil, nil, serrors.Validation(descPath,
					"field 'content' must be a table of identifiers and valid filepaths")
			}
			if cinfo.ModTime().After(latest) {
				latest = cinfo.ModTime()
			}
			decoded, err := p.decoder.DecodeFile(cpath)
			if err != nil {
				return nil, nil, serrors.Annotate(err, descPath)
			}
			pageContent[id] = decoded
		}
	}

	data := doc["data"]
	if data == nil {
		data = map[string]any{}
	}

	tags, err := parseTags(doc, descPath)
	if err != nil {
		return nil, nil, err
	}
	weight, err := parseWeight(doc, pageID, descPath)
	if err != nil {
		return nil, nil, err
	}

	page := &Page{
		ID:      pageID,
		Subdirs: subdirs,
		Content: pageContent,
		Data:    data,
		Tags:    tags,
		Weight:  weight,
	}

	tv, hasTemplate := doc["template"]
	if !hasTemplate {
		page.OutputDir = path.Dir(pageID)
		return page, nil, nil
	}
	tmpl, ok := tv.(string)
	if !ok {
		return nil, nil, serrors.Validation(descPath,
			"field 'template' must be a string giving a relative template path")
	}
	suffix := ".html"
	if sv, ok := doc["suffix"]; ok {
		s, ok := sv.(string)
		if !ok {
			return nil, nil, serrors.Validation(descPath, "field 'suffix' must be a string")
		}
		suffix = s
	}

	outputPath := withSuffix(pageID, suffix)
	page.OutputPath = outputPath
	page.OutputDir = path.Dir(outputPath)
	page.OutputFilename = path.Base(outputPath)

	task := &Task{
		PageID:     pageID,
		Latest:     latest,
		Template:   tmpl,
		OutputPath: outputPath,
	}
	return page, task, nil
}

// withSuffix replaces the id's extension (normally none) with suffix. An
// empty suffix is legal and yields no extension.
func withSuffix(id, suffix string) string {
	ext := path.Ext(id)
	return id[:len(id)-len(ext)] + suffix
}

func parseTags(doc map[string]any, descPath string) ([]string, error) {
	tv, ok := doc["tags"]
	if !ok {
		return []string{}, nil
	}
	list, ok := tv.([]any)
	if !ok {
		return nil, serrors.Validation(descPath, "field 'tags' must be a list of strings")
	}
	tags := make([]string, 0, len(list))
	for _, v := range list {
		s, ok := v.(string)
		if !ok {
			return nil, serrors.Validation(descPath, "field 'tags' must be a list of strings")
		}
		tags = append(tags, s)
	}
	return tags, nil
}

// parseWeight resolves the weight field. Absent weight defaults to 0,
// except for pages whose last path segment is "index", which default to
// unweighted. The literal string "None" is the explicit unweighted
// override, TOML having no null type.
func parseWeight(doc map[string]any, pageID, descPath string) (Weight, error) {
	wv, ok := doc["weight"]
	if !ok {
		if path.Base(pageID) == "index" {
			return Weight{Unweighted: true}, nil
		}
		return Weight{}, nil
	}
	switch v := wv.(type) {
	case int64:
		return Weight{Value: int(v)}, nil
	case string:
		if v == "None" {
			return Weight{Unweighted: true}, nil
		}
	}
	return Weight{}, serrors.Validation(descPath,
		`field 'weight' must be an integer or the string "None"`)
}
