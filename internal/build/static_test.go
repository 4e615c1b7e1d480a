package build

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCopyStatic_MirrorsTreeWithoutDescriptors(t *testing.T) {
	content, _, public := site(t, map[string]string{
		"content/index.page":    "template = \"t\"\n",
		"content/css/main.css":  "body {}",
		"content/img/photo.png": "bytes",
	})

	require.NoError(t, CopyStatic(content, public))

	require.NoFileExists(t, filepath.Join(public, "index.page"))
	css, err := os.ReadFile(filepath.Join(public, "css", "main.css"))
	require.NoError(t, err)
	require.Equal(t, "body {}", string(css))
	require.FileExists(t, filepath.Join(public, "img", "photo.png"))
}

func TestCopyStatic_SkipsIgnoredDirectories(t *testing.T) {
	content, _, public := site(t, map[string]string{
		"content/drafts/.ignore":  "",
		"content/drafts/wip.css":  "draft {}",
		"content/live/styles.css": "live {}",
	})

	require.NoError(t, CopyStatic(content, public))

	require.NoDirExists(t, filepath.Join(public, "drafts"))
	require.FileExists(t, filepath.Join(public, "live", "styles.css"))
}

func TestCopyStatic_SkipsFresherOutputs(t *testing.T) {
	content, _, public := site(t, map[string]string{
		"content/main.css": "old source",
		"public/main.css":  "already deployed",
	})
	past := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(content, "main.css"), past, past))

	require.NoError(t, CopyStatic(content, public))

	out, err := os.ReadFile(filepath.Join(public, "main.css"))
	require.NoError(t, err)
	require.Equal(t, "already deployed", string(out))
}

func TestCopyStatic_OverwritesStaleOutputs(t *testing.T) {
	content, _, public := site(t, map[string]string{
		"content/main.css": "new source",
		"public/main.css":  "stale copy",
	})
	past := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(public, "main.css"), past, past))

	require.NoError(t, CopyStatic(content, public))

	out, err := os.ReadFile(filepath.Join(public, "main.css"))
	require.NoError(t, err)
	require.Equal(t, "new source", string(out))
}
