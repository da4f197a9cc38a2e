package export

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/hschendel/stl"

	"github.com/gogpu/flake"
)

// ErrEmptyMesh is returned when asked to serialize a nil or empty mesh.
var ErrEmptyMesh = errors.New("export: empty mesh")

// STL layout constants.
const (
	stlHeaderSize = 80
	stlRecordSize = 50 // normal + 3 vertices (12 float32) + attribute count
)

// writeBuffer sizes the buffer in front of the destination writer.
const writeBuffer = 64 << 10

// stlHeader is written into the 80-byte binary header. It must not start
// with "solid", which readers treat as ASCII.
const stlHeader = "flake binary STL"

// Solid converts m into an STL solid. Facet normals are computed from the
// triangle winding; vertices are narrowed to float32.
func Solid(m *flake.Mesh, name string) (*stl.Solid, error) {
	if m.IsEmpty() {
		return nil, ErrEmptyMesh
	}
	if name == "" {
		name = "flake"
	}
	s := &stl.Solid{
		Name:         name,
		BinaryHeader: []byte(stlHeader),
		Triangles:    make([]stl.Triangle, len(m.Faces)),
	}
	for i, f := range m.Faces {
		s.Triangles[i] = stl.Triangle{
			Normal: vec(m.FaceNormal(i)),
			Vertices: [3]stl.Vec3{
				vec(m.Vertices[f[0]]),
				vec(m.Vertices[f[1]]),
				vec(m.Vertices[f[2]]),
			},
		}
	}
	return s, nil
}

func vec(v flake.Vec3) stl.Vec3 {
	return stl.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}

// WriteSTL writes m as little-endian binary STL.
func WriteSTL(w io.Writer, m *flake.Mesh) error {
	s, err := Solid(m, "")
	if err != nil {
		return err
	}
	if err := write(w, s); err != nil {
		return fmt.Errorf("export: write binary stl: %w", err)
	}
	flake.Logger().Debug("export: wrote binary STL", "faces", len(s.Triangles),
		"bytes", stlHeaderSize+4+stlRecordSize*len(s.Triangles))
	return nil
}

// WriteASCIISTL writes m as ASCII STL with the given solid name.
func WriteASCIISTL(w io.Writer, m *flake.Mesh, name string) error {
	s, err := Solid(m, name)
	if err != nil {
		return err
	}
	s.IsAscii = true
	if err := write(w, s); err != nil {
		return fmt.Errorf("export: write ascii stl: %w", err)
	}
	flake.Logger().Debug("export: wrote ASCII STL", "faces", len(s.Triangles), "name", s.Name)
	return nil
}

func write(w io.Writer, s *stl.Solid) error {
	bw := bufio.NewWriterSize(w, writeBuffer)
	if err := s.WriteAll(bw); err != nil {
		return err
	}
	return bw.Flush()
}
