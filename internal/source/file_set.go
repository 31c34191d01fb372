package source

import (
	"crypto/sha256"
	"fmt"
	"os"

	"fortio.org/safecast"
)

// FileSet owns a collection of source files and resolves positions in them.
type FileSet struct {
	files []File
	index map[string]FileID // normalized path -> latest id
}

// NewFileSet creates an empty FileSet.
func NewFileSet() *FileSet {
	return &FileSet{
		files: make([]File, 0),
		index: make(map[string]FileID),
	}
}

// Add stores already-normalized bytes, computes the line index and content
// hash, and returns a fresh FileID. A path may be added more than once; the
// index always points at the latest version.
func (fs *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	hash := sha256.Sum256(content)
	lineIdx := buildLineIndex(content)
	normalized := normalizePath(path)

	lenFiles, err := safecast.Conv[uint32](len(fs.files))
	if err != nil {
		panic(fmt.Errorf("len files overflow: %w", err))
	}
	id := FileID(lenFiles)
	fs.files = append(fs.files, File{
		ID:      id,
		Path:    normalized,
		Content: content,
		LineIdx: lineIdx,
		Hash:    hash,
		Flags:   flags,
	})
	fs.index[normalized] = id
	return id
}

// Load reads a file from disk, normalizes CRLF/BOM, and calls Add.
func (fs *FileSet) Load(path string) (FileID, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	content, hadBOM := removeBOM(content)
	content, hadCRLF := normalizeCRLF(content)

	flags := FileFlags(0)
	if hadBOM {
		flags |= FileHadBOM
	}
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}
	return fs.Add(path, content, flags), nil
}

// AddVirtual adds an in-memory file with the FileVirtual flag.
func (fs *FileSet) AddVirtual(name string, content []byte) FileID {
	content, _ = removeBOM(content)
	content, _ = normalizeCRLF(content)
	return fs.Add(name, content, FileVirtual)
}

// Get returns the file metadata for the given ID.
func (fs *FileSet) Get(id FileID) *File {
	return &fs.files[id]
}

// GetByPath returns the latest file added under path, if any.
func (fs *FileSet) GetByPath(path string) (*File, bool) {
	if id, ok := fs.index[normalizePath(path)]; ok {
		return &fs.files[id], true
	}
	return nil, false
}

// Len reports how many files the set holds.
func (fs *FileSet) Len() int {
	return len(fs.files)
}

// Position resolves a byte offset in a file to a 1-based line/column pair.
func (fs *FileSet) Position(id FileID, off uint32) LineCol {
	if int(id) >= len(fs.files) {
		return LineCol{Line: 1, Col: 1}
	}
	return toLineCol(fs.files[id].LineIdx, off)
}

// SpanStart resolves the start of a span to a line/column pair.
func (fs *FileSet) SpanStart(sp Span) LineCol {
	return fs.Position(sp.File, sp.Start)
}

// Snippet returns the text covered by the span, or "" for invalid spans.
func (fs *FileSet) Snippet(sp Span) string {
	if int(sp.File) >= len(fs.files) {
		return ""
	}
	content := fs.files[sp.File].Content
	if sp.Start > sp.End || int(sp.End) > len(content) {
		return ""
	}
	return string(content[sp.Start:sp.End])
}
