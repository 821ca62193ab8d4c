package mesh

import (
	"encoding/binary"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

const quadOBJ = `# unit quad
o plane
v -1 0 -1
v  1 0 -1
v  1 0  1
v -1 0  1
vt 0 0
vt 1 0
vt 1 1
vt 0 1
vn 0 1 0
s off
f 1/1/1 2/2/1 3/3/1 4/4/1
`

func near(a, b float32) bool { return math.Abs(float64(a-b)) < 1e-6 }

func TestParseQuad(t *testing.T) {
	m, err := Parse(strings.NewReader(quadOBJ))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := len(m.Vertices); got != 4 {
		t.Errorf("vertices = %d, want 4 (shared corners deduplicated)", got)
	}
	want := []uint32{0, 1, 2, 0, 2, 3}
	if len(m.Indices) != len(want) {
		t.Fatalf("indices = %v, want %v", m.Indices, want)
	}
	for i := range want {
		if m.Indices[i] != want[i] {
			t.Errorf("Indices[%d] = %d, want %d", i, m.Indices[i], want[i])
		}
	}
	if m.Triangles() != 2 {
		t.Errorf("Triangles() = %d, want 2", m.Triangles())
	}
	for i, v := range m.Vertices {
		if v.Normal != [3]float32{0, 1, 0} {
			t.Errorf("vertex %d normal = %v, want +Y", i, v.Normal)
		}
	}
	// vt 0 0 is flipped to (0, 1).
	if m.Vertices[0].UV != [2]float32{0, 1} {
		t.Errorf("vertex 0 uv = %v, want [0 1]", m.Vertices[0].UV)
	}
	if m.Vertices[2].UV != [2]float32{1, 0} {
		t.Errorf("vertex 2 uv = %v, want [1 0]", m.Vertices[2].UV)
	}
	wantBox := r3.Box{Min: r3.Vec{X: -1, Y: 0, Z: -1}, Max: r3.Vec{X: 1, Y: 0, Z: 1}}
	if m.Bounds != wantBox {
		t.Errorf("Bounds = %v, want %v", m.Bounds, wantBox)
	}
}

func TestParseFaceForms(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		vertices int
	}{
		{"positions only", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n", 3},
		{"position and uv", "v 0 0 0\nv 1 0 0\nv 0 1 0\nvt 0 0\nf 1/1 2/1 3/1\n", 3},
		{"position and normal", "v 0 0 0\nv 1 0 0\nv 0 1 0\nvn 0 0 1\nf 1//1 2//1 3//1\n", 3},
		{"negative indices", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf -3 -2 -1\n", 3},
		{"comments and blanks", "# header\n\nv 0 0 0 # origin\nv 1 0 0\nv 0 1 0\ng group\nusemtl red\nf 1 2 3\n", 3},
		{"pentagon", "v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0.5 1.5 0\nv 0 1 0\nf 1 2 3 4 5\n", 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Parse(strings.NewReader(tt.src))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if len(m.Vertices) != tt.vertices {
				t.Errorf("vertices = %d, want %d", len(m.Vertices), tt.vertices)
			}
			if len(m.Indices)%3 != 0 {
				t.Errorf("indices = %d, not a triangle list", len(m.Indices))
			}
		})
	}
}

func TestGeneratedNormals(t *testing.T) {
	// Counter-clockwise triangle in the XY plane faces +Z.
	m, err := Parse(strings.NewReader("v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"))
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range m.Vertices {
		if !near(v.Normal[0], 0) || !near(v.Normal[1], 0) || !near(v.Normal[2], 1) {
			t.Errorf("vertex %d normal = %v, want +Z", i, v.Normal)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		line int
	}{
		{"index out of range", "v 0 0 0\nv 1 0 0\nf 1 2 3\n", 3},
		{"zero index", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n", 4},
		{"bad float", "v 0 zero 0\n", 1},
		{"short vertex", "v 0 0\n", 1},
		{"two-vertex face", "v 0 0 0\nv 1 0 0\nf 1 2\n", 3},
		{"bad uv index", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1/4 2 3\n", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.src))
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("error = %v, want *ParseError", err)
			}
			if pe.Line != tt.line {
				t.Errorf("Line = %d, want %d", pe.Line, tt.line)
			}
		})
	}
}

func TestParseEmpty(t *testing.T) {
	for _, src := range []string{"", "# nothing\n", "v 0 0 0\nv 1 0 0\n"} {
		if _, err := Parse(strings.NewReader(src)); !errors.Is(err, ErrEmptyMesh) {
			t.Errorf("Parse(%q) error = %v, want ErrEmptyMesh", src, err)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plane.obj")
	if err := os.WriteFile(path, []byte(quadOBJ), 0o600); err != nil {
		t.Fatal(err)
	}
	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Triangles() != 2 {
		t.Errorf("Triangles() = %d, want 2", m.Triangles())
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.obj")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want os.ErrNotExist", err)
	}
}

func TestPackedBytes(t *testing.T) {
	m, err := Parse(strings.NewReader(quadOBJ))
	if err != nil {
		t.Fatal(err)
	}
	vb := m.VertexBytes()
	if len(vb) != len(m.Vertices)*VertexStride {
		t.Fatalf("VertexBytes len = %d, want %d", len(vb), len(m.Vertices)*VertexStride)
	}
	// Vertex 1: position (1, 0, -1), normal +Y, uv (1, 1).
	base := VertexStride
	want := []float32{1, 0, -1, 0, 1, 0, 1, 1}
	for i, w := range want {
		got := math.Float32frombits(binary.LittleEndian.Uint32(vb[base+i*4:]))
		if got != w {
			t.Errorf("vertex 1 float %d = %v, want %v", i, got, w)
		}
	}

	ib := m.IndexBytes()
	if len(ib) != 4*len(m.Indices) {
		t.Fatalf("IndexBytes len = %d", len(ib))
	}
	if got := binary.LittleEndian.Uint32(ib[8:]); got != m.Indices[2] {
		t.Errorf("packed index 2 = %d, want %d", got, m.Indices[2])
	}
}
