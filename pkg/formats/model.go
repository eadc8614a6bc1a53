package formats

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Model format errors.
var (
	ErrModelNotFound = errors.New("model file not found")
	ErrModelRead     = errors.New("reading model data")
)

// LegacyModelCapacity is the per-model vertex and normal limit of the
// legacy loader's fixed-size arrays. Models are no longer bounded by it; it is
// kept so loaders can warn about files that would not have fit.
const LegacyModelCapacity = 6763

// maxModelLine is the longest line the parser reads. Longer lines are skipped.
const maxModelLine = 1 << 20

// Line markers.
const (
	markerVertex = 'v'
	markerNormal = 'n'
	markerGroup  = 'g'
	markerFace   = 'f'
)

// ModelFace is a polygon of the model. Indices are 0-based and address the
// vertex and the normal array alike.
type ModelFace struct {
	Indices []int
	Group   int // group counter value when the face was read, -1 before any group
}

// Model holds the geometry of a text model file.
type Model struct {
	Vertices [][3]float32
	Normals  [][3]float32
	Faces    []ModelFace
	Groups   int // number of group markers seen
}

// ModelStats summarizes a loaded model.
type ModelStats struct {
	Vertices int
	Normals  int
	Faces    int
	Groups   int
	Corners  int
}

// Vertex returns the vertex at index i, or the zero vector when i is
// outside the loaded vertices.
func (m *Model) Vertex(i int) [3]float32 {
	if i < 0 || i >= len(m.Vertices) {
		return [3]float32{}
	}
	return m.Vertices[i]
}

// Normal returns the normal at index i, or the zero vector when i is
// outside the loaded normals.
func (m *Model) Normal(i int) [3]float32 {
	if i < 0 || i >= len(m.Normals) {
		return [3]float32{}
	}
	return m.Normals[i]
}

// Stats returns element counts for the model.
func (m *Model) Stats() ModelStats {
	s := ModelStats{
		Vertices: len(m.Vertices),
		Normals:  len(m.Normals),
		Faces:    len(m.Faces),
		Groups:   m.Groups,
	}
	for _, f := range m.Faces {
		s.Corners += len(f.Indices)
	}
	return s
}

// ExceedsLegacyCapacity reports whether the model holds more vertices or
// normals than the legacy fixed-size loader could.
func (m *Model) ExceedsLegacyCapacity() bool {
	return len(m.Vertices) > LegacyModelCapacity || len(m.Normals) > LegacyModelCapacity
}

// ParseModel parses a text model from r.
//
// Each line is classified by its first byte: "v" vertex, "n" normal,
// "g" group marker, "f" face. Faces list 1-based indices. Lines that are
// not recognized or do not parse are skipped.
func ParseModel(r io.Reader) (*Model, error) {
	m := &Model{}
	group := -1

	br := bufio.NewReaderSize(r, 64*1024)
	buf := make([]byte, 0, 256)

	for {
		raw, tooLong, err := readModelLine(br, buf[:0])
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrModelRead, err)
		}
		buf = raw
		if tooLong || len(raw) == 0 {
			continue
		}

		line := string(raw)
		switch line[0] {
		case markerVertex:
			if v, ok := parseTriple(line[1:]); ok {
				m.Vertices = append(m.Vertices, v)
			}
		case markerNormal:
			if n, ok := parseTriple(line[1:]); ok {
				m.Normals = append(m.Normals, n)
			}
		case markerGroup:
			group++
			m.Groups++
		case markerFace:
			if indices, ok := parseFace(line); ok {
				m.Faces = append(m.Faces, ModelFace{Indices: indices, Group: group})
			}
		}
	}

	return m, nil
}

// readModelLine appends the next line of br to buf, without its line
// ending. A line longer than maxModelLine is drained and reported as
// tooLong with no content. io.EOF is returned only when no line is left.
func readModelLine(br *bufio.Reader, buf []byte) (line []byte, tooLong bool, err error) {
	for {
		chunk, isPrefix, err := br.ReadLine()
		if err != nil {
			return buf, tooLong, err
		}
		if !tooLong {
			if len(buf)+len(chunk) > maxModelLine {
				tooLong = true
				buf = buf[:0]
			} else {
				buf = append(buf, chunk...)
			}
		}
		if !isPrefix {
			return buf, tooLong, nil
		}
	}
}

// ParseModelFile parses a text model from disk.
func ParseModelFile(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrModelNotFound, path)
		}
		return nil, fmt.Errorf("opening model file: %w", err)
	}
	defer f.Close()

	m, err := ParseModel(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return m, nil
}

// parseTriple reads the first three floats of s. Trailing fields are ignored.
func parseTriple(s string) ([3]float32, bool) {
	fields := strings.Fields(s)
	if len(fields) < 3 {
		return [3]float32{}, false
	}

	var out [3]float32
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return [3]float32{}, false
		}
		out[i] = float32(v)
	}
	return out, true
}

// parseFace reads the corner list of a face line. The first field is the
// marker token and is skipped.
func parseFace(line string) ([]int, bool) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return nil, false
	}

	indices := make([]int, 0, len(fields)-1)
	for _, field := range fields[1:] {
		idx, err := strconv.Atoi(field)
		if err != nil || idx < 1 {
			return nil, false
		}
		indices = append(indices, idx-1)
	}
	return indices, true
}
