package build

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	serrors "github.com/JonHurst/ssg/internal/errors"
	"github.com/JonHurst/ssg/internal/library"
)

// CopyStatic mirrors the content tree into public, skipping page
// descriptors, directories carrying an ignore marker, and files whose
// public copy is already newer than the source.
func CopyStatic(content, public string) error {
	err := filepath.WalkDir(content, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return serrors.IO(p, err)
		}
		rel, err := filepath.Rel(content, p)
		if err != nil {
			return serrors.IO(p, err)
		}
		dst := filepath.Join(public, rel)

		if d.IsDir() {
			if rel != "." {
				if _, err := os.Stat(filepath.Join(p, library.IgnoreMarker)); err == nil {
					return filepath.SkipDir
				}
			}
			if err := os.MkdirAll(dst, 0o750); err != nil {
				return serrors.IO(dst, err)
			}
			return nil
		}

		if filepath.Ext(p) == library.PageExt {
			return nil
		}

		srcInfo, err := d.Info()
		if err != nil {
			return serrors.IO(p, err)
		}
		if dstInfo, err := os.Stat(dst); err == nil && srcInfo.ModTime().Before(dstInfo.ModTime()) {
			return nil
		}
		return copyFile(p, dst)
	})
	return err
}

func copyFile(src, dst string) error {
	in, err := os.Open(src) // #nosec G304 -- src comes from the content tree walk.
	if err != nil {
		return serrors.IO(src, err)
	}
	defer func() {
		_ = in.Close()
	}()

	out, err := os.Create(dst) // #nosec G304 -- dst stays under the public tree.
	if err != nil {
		return serrors.IO(dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return serrors.IO(dst, err)
	}
	if err := out.Close(); err != nil {
		return serrors.IO(dst, err)
	}
	return nil
}
