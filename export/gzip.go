package export

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"

	"github.com/gogpu/flake"
)

// WriteSTLGzip writes m as gzip-compressed binary STL.
func WriteSTLGzip(w io.Writer, m *flake.Mesh) error {
	if m.IsEmpty() {
		return ErrEmptyMesh
	}
	zw, err := gzip.NewWriterLevel(w, gzip.BestCompression)
	if err != nil {
		return fmt.Errorf("export: gzip: %w", err)
	}
	if err := WriteSTL(zw, m); err != nil {
		_ = zw.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("export: gzip close: %w", err)
	}
	return nil
}
