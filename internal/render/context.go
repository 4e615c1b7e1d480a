package render

import "github.com/JonHurst/ssg/internal/library"

// pageView exposes a Page to templates as a map with lowercase keys, so
// template authors write {{.page.content.main}} rather than reaching
// into Go struct fields. Absent values (weight of unweighted pages,
// missing neighbors) appear as nil so templates can test them directly.
func pageView(p *library.Page) map[string]any {
	var weight any
	if !p.Weight.Unweighted {
		weight = p.Weight.Value
	}
	var lighter, heavier any
	if p.Lighter != "" {
		lighter = p.Lighter
	}
	if p.Heavier != "" {
		heavier = p.Heavier
	}
	return map[string]any{
		"id":       p.ID,
		"path":     p.OutputPath,
		"dir":      p.OutputDir,
		"filename": p.OutputFilename,
		"subdirs":  p.Subdirs,
		"content":  p.Content,
		"data":     p.Data,
		"tags":     p.Tags,
		"weight":   weight,
		"siblings": p.Siblings,
		"lighter":  lighter,
		"heavier":  heavier,
	}
}
