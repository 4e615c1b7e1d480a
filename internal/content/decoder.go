// Package content converts a single content file's raw bytes into
// structured data, dispatching on format: TOML and JSON documents parse
// verbatim, anything else is checked for the sharded-text convention and
// otherwise returned as a plain string.
package content

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"unicode/utf8"

	"github.com/BurntSushi/toml"

	serrors "github.com/JonHurst/ssg/internal/errors"
)

var errInvalidUTF8 = errors.New("content is not valid UTF-8")

// ReadFileFunc reads a file's bytes. Injectable so tests can decode
// without touching the filesystem.
type ReadFileFunc func(path string) ([]byte, error)

// Decoder resolves content files into structured data.
type Decoder struct {
	readFile ReadFileFunc
}

// NewDecoder creates a Decoder reading through readFile.
func NewDecoder(readFile ReadFileFunc) *Decoder {
	return &Decoder{readFile: readFile}
}

// DecodeFile reads and decodes one content file.
//
// Files with a ".toml" extension parse as TOML and files with a ".json"
// extension parse as JSON, both returned verbatim. Any other file is
// treated as text: if its first line carries a shard marker it converts
// to a synthetic TOML document (see shard.go), otherwise the raw text is
// returned unchanged.
func (d *Decoder) DecodeFile(path string) (any, error) {
	raw, err := d.readFile(path)
	if err != nil {
		return nil, serrors.IO(path, err)
	}
	return d.decode(path, raw)
}

func (d *Decoder) decode(path string, raw []byte) (any, error) {
	if !utf8.Valid(raw) {
		return nil, serrors.Decode(path, errInvalidUTF8)
	}

	switch filepath.Ext(path) {
	case ".toml":
		return decodeTOML(path, string(raw))
	case ".json":
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, serrors.Decode(path, err)
		}
		return v, nil
	}

	text := string(raw)
	doc, sharded := shardsToTOML(text)
	if !sharded {
		return text, nil
	}
	return decodeTOML(path, doc)
}

func decodeTOML(path, text string) (map[string]any, error) {
	var v map[string]any
	if err := toml.Unmarshal([]byte(text), &v); err != nil {
		return nil, serrors.Decode(path, err)
	}
	return v, nil
}
