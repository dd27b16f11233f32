package termdoc

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrNotFound is returned when the document file does not exist.
	ErrNotFound = errors.New("document not found")
	// ErrParse is returned when the document content cannot be parsed.
	ErrParse = errors.New("parse error")
	// ErrUnsupported is returned for an unknown document format.
	ErrUnsupported = errors.New("unsupported format")
)

// Loader converts raw document bytes into a Document.
type Loader interface {
	Load(r io.Reader, filename string) (*Document, error)
}

// SupportedExtensions lists file extensions that can be loaded.
var SupportedExtensions = map[string]bool{
	".json":     true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
	".docx":     true,
	".pdf":      true,
}

// DefaultFormat is the format of paths whose extension names no other loader.
const DefaultFormat = "json"

// ForFile returns the appropriate loader for a filename.
func ForFile(filename string) (Loader, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !SupportedExtensions[ext] {
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, ext)
	}
	return ForFormat(strings.TrimPrefix(ext, "."))
}

// ForFormat returns the loader for a format name ("json", "md", "html", ...).
// Plain text ("txt", "text") is only reachable by name.
func ForFormat(format string) (Loader, error) {
	switch strings.ToLower(format) {
	case "json":
		return &JSONLoader{}, nil
	case "md", "markdown":
		return &MarkdownLoader{}, nil
	case "html", "htm":
		return &HTMLLoader{}, nil
	case "docx":
		return &DOCXLoader{}, nil
	case "pdf":
		return &PDFLoader{}, nil
	case "txt", "text":
		return &TextLoader{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, format)
	}
}

// Load reads the document at path. Extensions in SupportedExtensions pick
// their loader; any other path is read as JSON.
func Load(path string) (*Document, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !SupportedExtensions[ext] {
		return LoadFormat(path, DefaultFormat)
	}
	return LoadFormat(path, strings.TrimPrefix(ext, "."))
}

// LoadFormat reads the document at path with the loader for format.
func LoadFormat(path, format string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer f.Close()

	loader, err := ForFormat(format)
	if err != nil {
		return nil, err
	}

	doc, err := loader.Load(f, filepath.Base(path))
	if err != nil {
		if errors.Is(err, ErrParse) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrParse, path, err)
	}
	return doc, nil
}

// titleFromFilename strips the given extensions from filename.
func titleFromFilename(filename string, exts ...string) string {
	for _, ext := range exts {
		filename = strings.TrimSuffix(filename, ext)
	}
	return filename
}
