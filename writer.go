package gopresentation

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Writer is the interface for presentation writers.
type Writer interface {
	Save(path string) error
	WriteTo(w io.Writer) error
}

// WriterType represents the output format.
type WriterType string

const (
	WriterPowerPoint2007 WriterType = "PowerPoint2007"
)

// NewWriter creates a writer for the given format.
func NewWriter(p *Presentation, format WriterType) (Writer, error) {
	if format != WriterPowerPoint2007 {
		return nil, fmt.Errorf("unsupported writer format: %s", format)
	}
	return &PPTXWriter{presentation: p}, nil
}

// PPTXWriter writes presentations in PPTX format.
type PPTXWriter struct {
	presentation *Presentation
}

// Save writes the package next to path and renames it into place, so an
// existing file, typically the one the presentation was read from, is only
// replaced by a complete package.
func (w *PPTXWriter) Save(path string) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if err != nil {
			os.Remove(tmp.Name())
		}
	}()

	if err := errors.Join(w.WriteTo(tmp), tmp.Close()); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("failed to set file mode: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

// WriteTo writes the presentation to a writer. Parts are written in their
// original archive order; parts that were never parsed are copied verbatim.
func (w *PPTXWriter) WriteTo(writer io.Writer) error {
	if w.presentation == nil || w.presentation.pkg == nil {
		return fmt.Errorf("presentation is nil")
	}
	pkg := w.presentation.pkg

	zw := zip.NewWriter(writer)
	for _, name := range pkg.order {
		data, err := pkg.parts[name].Bytes()
		if err != nil {
			return err
		}
		fw, err := zw.Create(name)
		if err != nil {
			return fmt.Errorf("failed to create %s in zip: %w", name, err)
		}
		if _, err := fw.Write(data); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
	}
	return zw.Close()
}

// Save writes the presentation to a PPTX file.
func (p *Presentation) Save(path string) error {
	return (&PPTXWriter{presentation: p}).Save(path)
}

// WriteTo writes the presentation to w in PPTX format.
func (p *Presentation) WriteTo(w io.Writer) error {
	return (&PPTXWriter{presentation: p}).WriteTo(w)
}
