package assets

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spaghettifunk/meshforge/engine/core"
	"gopkg.in/yaml.v3"
)

// Loader decodes shape documents of one format.
type Loader interface {
	Load(r io.Reader) (*Document, error)
	Extensions() []string
}

// TOMLLoader reads documents with one [[shapes]] table per entry.
type TOMLLoader struct{}

func (TOMLLoader) Extensions() []string { return []string{".toml"} }

func (TOMLLoader) Load(r io.Reader) (*Document, error) {
	doc := &Document{}
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(doc); err != nil {
		return nil, fmt.Errorf("decoding toml: %w", err)
	}
	return doc, nil
}

// YAMLLoader reads documents with a top level shapes list.
type YAMLLoader struct{}

func (YAMLLoader) Extensions() []string { return []string{".yaml", ".yml"} }

func (YAMLLoader) Load(r io.Reader) (*Document, error) {
	doc := &Document{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(doc); err != nil {
		if err == io.EOF {
			return doc, nil
		}
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}
	return doc, nil
}

var loaders = map[string]Loader{}

// RegisterLoader makes l responsible for its extensions, replacing any
// loader registered before.
func RegisterLoader(l Loader) {
	for _, ext := range l.Extensions() {
		loaders[strings.ToLower(ext)] = l
	}
}

func init() {
	RegisterLoader(TOMLLoader{})
	RegisterLoader(YAMLLoader{})
}

// LoaderFor returns the loader registered for the extension of path.
func LoaderFor(path string) (Loader, error) {
	ext := strings.ToLower(filepath.Ext(path))
	l, ok := loaders[ext]
	if !ok {
		return nil, fmt.Errorf("%q: %w", ext, core.ErrUnsupportedFormat)
	}
	return l, nil
}

// IsDocument reports whether a loader is registered for path.
func IsDocument(path string) bool {
	_, err := LoaderFor(path)
	return err == nil
}

// LoadFile reads and decodes the document at path.
func LoadFile(path string) (*Document, error) {
	l, err := LoaderFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return l.Load(bytes.NewReader(data))
}

// Parse decodes data in the format named by ext (".toml", ".yaml", ...).
func Parse(data []byte, ext string) (*Document, error) {
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	l, err := LoaderFor(ext)
	if err != nil {
		return nil, err
	}
	return l.Load(bytes.NewReader(data))
}

// Encode writes doc in the format named by ext.
func Encode(w io.Writer, doc *Document, ext string) error {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "toml":
		return toml.NewEncoder(w).Encode(doc)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("%q: %w", ext, core.ErrUnsupportedFormat)
}
