package gopresentation

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
)

// Reader is the interface for presentation readers.
type Reader interface {
	Read(path string) (*Presentation, error)
	ReadFromReader(r io.ReaderAt, size int64) (*Presentation, error)
}

// ReaderType represents the input format.
type ReaderType string

const (
	ReaderPowerPoint2007 ReaderType = "PowerPoint2007"
)

// NewReader creates a reader for the given format.
func NewReader(format ReaderType) (Reader, error) {
	switch format {
	case ReaderPowerPoint2007:
		return &PPTXReader{}, nil
	default:
		return nil, fmt.Errorf("unsupported reader format: %s", format)
	}
}

// Open reads a PPTX file from disk.
func Open(path string) (*Presentation, error) {
	return (&PPTXReader{}).Read(path)
}

// ReadFrom reads a PPTX from an io.ReaderAt with the given size.
func ReadFrom(r io.ReaderAt, size int64) (*Presentation, error) {
	return (&PPTXReader{}).ReadFromReader(r, size)
}

// PPTXReader reads PPTX files.
type PPTXReader struct {
	// Store overrides the element store used for every shape collection.
	Store ElementStore
}

// maxZipEntrySize is the maximum allowed size for a single file extracted from a ZIP.
// This prevents zip bomb attacks. 50 MB is generous for any legitimate PPTX part.
const maxZipEntrySize = 50 << 20 // 50 MB

// maxZipTotalSize is the cumulative limit for all extracted content from a single ZIP.
const maxZipTotalSize = 200 << 20 // 200 MB

// maxZipEntries is the maximum number of files allowed in a ZIP archive.
const maxZipEntries = 10000

// Read reads a presentation from a file path.
func (r *PPTXReader) Read(path string) (*Presentation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	return r.ReadFromReader(f, info.Size())
}

// ReadFromReader reads a presentation from an io.ReaderAt.
func (r *PPTXReader) ReadFromReader(reader io.ReaderAt, size int64) (*Presentation, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid reader size: %d", size)
	}
	if size > int64(maxZipTotalSize) {
		return nil, fmt.Errorf("file size %d exceeds maximum allowed (%d bytes)", size, maxZipTotalSize)
	}

	zr, err := zip.NewReader(reader, size)
	if err != nil {
		return nil, fmt.Errorf("failed to open zip: %w", err)
	}

	pkg, err := readPackage(zr)
	if err != nil {
		return nil, err
	}

	store := r.Store
	if store == nil {
		store = treeStore{}
	}
	return openPresentation(pkg, store)
}

// readPackage loads every zip entry into memory, enforcing the entry count
// and size limits.
func readPackage(zr *zip.Reader) (*Package, error) {
	if len(zr.File) > maxZipEntries {
		return nil, fmt.Errorf("zip archive contains too many entries (%d > %d)", len(zr.File), maxZipEntries)
	}

	pkg := newPackage()
	var total int64
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		data, err := readZipFile(f)
		if err != nil {
			return nil, err
		}
		total += int64(len(data))
		if total > maxZipTotalSize {
			return nil, fmt.Errorf("zip content exceeds maximum allowed size (%d bytes)", maxZipTotalSize)
		}
		pkg.addPart(f.Name, data)
	}
	return pkg, nil
}

func readZipFile(f *zip.File) ([]byte, error) {
	if f.UncompressedSize64 > maxZipEntrySize {
		return nil, fmt.Errorf("file %s exceeds maximum allowed size (%d bytes)", f.Name, maxZipEntrySize)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s in zip: %w", f.Name, err)
	}
	defer rc.Close()
	data, err := io.ReadAll(io.LimitReader(rc, int64(maxZipEntrySize)+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s from zip: %w", f.Name, err)
	}
	if int64(len(data)) > int64(maxZipEntrySize) {
		return nil, fmt.Errorf("file %s actual size exceeds maximum allowed size", f.Name)
	}
	return data, nil
}
