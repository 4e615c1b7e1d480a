package library

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/JonHurst/ssg/internal/content"
	serrors "github.com/JonHurst/ssg/internal/errors"
)

func newTestParser(root string) *Parser {
	return NewParser(root, content.NewDecoder(os.ReadFile))
}

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, body := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	}
}

func TestParsePage_TemplateAndContent_ProducesTask(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"about.page": "template = \"t.html\"\n[content]\nmain = \"body.txt\"\n",
		"body.txt":   "hi",
	})

	page, task, err := newTestParser(root).ParsePage("about", nil)
	require.NoError(t, err)
	require.Equal(t, "about", page.ID)
	require.Equal(t, "about.html", page.OutputPath)
	require.Equal(t, ".", page.OutputDir)
	require.Equal(t, "about.html", page.OutputFilename)
	require.Equal(t, map[string]any{"main": "hi"}, page.Content)
	require.Equal(t, Weight{}, page.Weight)

	require.NotNil(t, task)
	require.Equal(t, "about", task.PageID)
	require.Equal(t, "t.html", task.Template)
	require.Equal(t, "about.html", task.OutputPath)
}

func TestParsePage_NoTemplate_NoTaskNoOutput(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"docs/index.page": "[data]\ntitle = \"Docs\"\n",
	})

	page, task, err := newTestParser(root).ParsePage("docs/index", []string{"guides"})
	require.NoError(t, err)
	require.Nil(t, task)
	require.Empty(t, page.OutputPath)
	require.Empty(t, page.OutputFilename)
	require.Equal(t, "docs", page.OutputDir)
	require.Equal(t, []string{"guides"}, page.Subdirs)
	require.Equal(t, map[string]any{"title": "Docs"}, page.Data)
}

func TestParsePage_SuffixVariants(t *testing.T) {
	cases := []struct {
		name       string
		descriptor string
		outputPath string
		wantErr    bool
	}{
		{"default html", "template = \"t\"\n", "feed.html", false},
		{"xml", "template = \"t\"\nsuffix = \".xml\"\n", "feed.xml", false},
		{"empty is legal", "template = \"t\"\nsuffix = \"\"\n", "feed", false},
		{"non string", "template = \"t\"\nsuffix = 7\n", "", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			root := t.TempDir()
			writeTree(t, root, map[string]string{"feed.page": tc.descriptor})

			page, _, err := newTestParser(root).ParsePage("feed", nil)
			if tc.wantErr {
				require.Error(t, err)
				require.True(t, serrors.IsKind(err, serrors.KindValidation))
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.outputPath, page.OutputPath)
		})
	}
}

func TestParsePage_TemplateNotString_ReturnsValidationError(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"a.page": "template = 42\n"})

	_, _, err := newTestParser(root).ParsePage("a", nil)
	require.Error(t, err)
	require.True(t, serrors.IsKind(err, serrors.KindValidation))
}

func TestParsePage_TagsWrongShape_ReturnsValidationError(t *testing.T) {
	cases := []struct {
		name       string
		descriptor string
	}{
		{"scalar", "tags = \"not-a-list\"\n"},
		{"non string member", "tags = [1, 2]\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			root := t.TempDir()
			writeTree(t, root, map[string]string{"a.page": tc.descriptor})

			_, _, err := newTestParser(root).ParsePage("a", nil)
			require.Error(t, err)
			require.True(t, serrors.IsKind(err, serrors.KindValidation))
		})
	}
}

func TestParsePage_ContentWrongShape_ReturnsValidationError(t *testing.T) {
	cases := []struct {
		name  string
		files map[string]string
	}{
		{"scalar content", map[string]string{"a.page": "content = \"x\"\n"}},
		{"non string path", map[string]string{"a.page": "[content]\nmain = 5\n"}},
		{"missing target", map[string]string{"a.page": "[content]\nmain = \"absent.txt\"\n"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			root := t.TempDir()
			writeTree(t, root, tc.files)

			_, _, err := newTestParser(root).ParsePage("a", nil)
			require.Error(t, err)
			require.True(t, serrors.IsKind(err, serrors.KindValidation))
		})
	}
}

func TestParsePage_WeightResolution(t *testing.T) {
	cases := []struct {
		name       string
		pageID     string
		descriptor string
		want       Weight
		wantErr    bool
	}{
		{"absent defaults to zero", "a", "", Weight{}, false},
		{"absent on index is unweighted", "docs/index", "", Weight{Unweighted: true}, false},
		{"explicit integer", "a", "weight = 5\n", Weight{Value: 5}, false},
		{"explicit integer on index", "docs/index", "weight = 5\n", Weight{Value: 5}, false},
		{"None string is unweighted", "a", "weight = \"None\"\n", Weight{Unweighted: true}, false},
		{"other string rejected", "a", "weight = \"heavy\"\n", Weight{}, true},
		{"float rejected", "a", "weight = 1.5\n", Weight{}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			root := t.TempDir()
			writeTree(t, root, map[string]string{tc.pageID + ".page": tc.descriptor})

			page, _, err := newTestParser(root).ParsePage(tc.pageID, nil)
			if tc.wantErr {
				require.Error(t, err)
				require.True(t, serrors.IsKind(err, serrors.KindValidation))
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, page.Weight)
		})
	}
}

func TestParsePage_LatestTimestamp_IncludesContentMtimes(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.page":   "template = \"t\"\n[content]\nmain = \"body.txt\"\n",
		"body.txt": "hi",
	})
	future := time.Now().Add(time.Hour).Truncate(time.Second)
	require.NoError(t, os.Chtimes(filepath.Join(root, "body.txt"), future, future))

	_, task, err := newTestParser(root).ParsePage("a", nil)
	require.NoError(t, err)
	require.True(t, task.Latest.Equal(future), "latest %v, want %v", task.Latest, future)
}
