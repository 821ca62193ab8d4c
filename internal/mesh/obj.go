package mesh

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// Errors returned by the OBJ parser.
var (
	// ErrEmptyMesh is returned when a model has no faces.
	ErrEmptyMesh = errors.New("mesh: no faces")

	errIndexRange = errors.New("index out of range")
	errFaceArity  = errors.New("face needs at least 3 vertices")
)

// ParseError reports a malformed line in an OBJ file.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("mesh: line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Load reads and parses an OBJ file.
func Load(path string) (*Mesh, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("mesh: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return m, nil
}

// corner is one face vertex as indices into the position, uv and normal
// lists. Missing components are -1.
type corner struct {
	v, vt, vn int
}

type parser struct {
	positions []r3.Vec
	uvs       [][2]float32
	normals   []r3.Vec

	mesh   Mesh
	lookup map[corner]uint32
	// accumulated face normals for vertices without an explicit normal
	smooth map[uint32]r3.Vec
}

// Parse reads an OBJ model.
func Parse(r io.Reader) (*Mesh, error) {
	p := &parser{
		lookup: make(map[corner]uint32),
		smooth: make(map[uint32]r3.Vec),
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		if err := p.statement(fields); err != nil {
			return nil, &ParseError{Line: line, Err: err}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("mesh: read: %w", err)
	}
	if len(p.mesh.Indices) == 0 {
		return nil, ErrEmptyMesh
	}

	p.finishNormals()
	p.mesh.Bounds = p.bounds()
	return &p.mesh, nil
}

func (p *parser) statement(fields []string) error {
	switch fields[0] {
	case "v":
		v, err := parseVec(fields[1:], 3)
		if err != nil {
			return err
		}
		p.positions = append(p.positions, v)
	case "vn":
		v, err := parseVec(fields[1:], 3)
		if err != nil {
			return err
		}
		p.normals = append(p.normals, v)
	case "vt":
		v, err := parseVec(fields[1:], 1)
		if err != nil {
			return err
		}
		// V is flipped for top-left texture origin.
		p.uvs = append(p.uvs, [2]float32{float32(v.X), float32(1 - v.Y)})
	case "f":
		return p.face(fields[1:])
	}
	return nil
}

// parseVec parses up to three floats. At least need are required; the
// rest default to zero.
func parseVec(fields []string, need int) (r3.Vec, error) {
	if len(fields) < need {
		return r3.Vec{}, fmt.Errorf("want %d components, got %d", need, len(fields))
	}
	var c [3]float64
	for i := 0; i < len(fields) && i < 3; i++ {
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return r3.Vec{}, err
		}
		c[i] = f
	}
	return r3.Vec{X: c[0], Y: c[1], Z: c[2]}, nil
}

func (p *parser) face(fields []string) error {
	if len(fields) < 3 {
		return errFaceArity
	}
	corners := make([]corner, len(fields))
	for i, f := range fields {
		c, err := p.parseCorner(f)
		if err != nil {
			return err
		}
		corners[i] = c
	}

	// Fan triangulation: (0, i, i+1).
	for i := 1; i+1 < len(corners); i++ {
		tri := [3]corner{corners[0], corners[i], corners[i+1]}
		n := r3.Cross(
			r3.Sub(p.positions[tri[1].v], p.positions[tri[0].v]),
			r3.Sub(p.positions[tri[2].v], p.positions[tri[0].v]),
		)
		for _, c := range tri {
			idx := p.vertex(c)
			if c.vn < 0 {
				p.smooth[idx] = r3.Add(p.smooth[idx], n)
			}
			p.mesh.Indices = append(p.mesh.Indices, idx)
		}
	}
	return nil
}

func (p *parser) parseCorner(s string) (corner, error) {
	parts := strings.Split(s, "/")
	if len(parts) > 3 {
		return corner{}, fmt.Errorf("bad face vertex %q", s)
	}
	c := corner{v: -1, vt: -1, vn: -1}
	var err error
	if c.v, err = resolve(parts[0], len(p.positions)); err != nil {
		return corner{}, err
	}
	if c.v < 0 {
		return corner{}, fmt.Errorf("face vertex %q has no position", s)
	}
	if len(parts) > 1 && parts[1] != "" {
		if c.vt, err = resolve(parts[1], len(p.uvs)); err != nil {
			return corner{}, err
		}
	}
	if len(parts) > 2 && parts[2] != "" {
		if c.vn, err = resolve(parts[2], len(p.normals)); err != nil {
			return corner{}, err
		}
	}
	return c, nil
}

// resolve converts a 1-based or negative relative OBJ index into a
// 0-based index. An empty string yields -1.
func resolve(s string, n int) (int, error) {
	if s == "" {
		return -1, nil
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	switch {
	case i > 0 && i <= n:
		return i - 1, nil
	case i < 0 && -i <= n:
		return n + i, nil
	default:
		return 0, fmt.Errorf("%w: %d of %d", errIndexRange, i, n)
	}
}

// vertex returns the index of the interleaved vertex for c, adding it on
// first use.
func (p *parser) vertex(c corner) uint32 {
	if idx, ok := p.lookup[c]; ok {
		return idx
	}
	pos := p.positions[c.v]
	v := Vertex{Position: [3]float32{float32(pos.X), float32(pos.Y), float32(pos.Z)}}
	if c.vt >= 0 {
		v.UV = p.uvs[c.vt]
	}
	if c.vn >= 0 {
		n := p.normals[c.vn]
		v.Normal = [3]float32{float32(n.X), float32(n.Y), float32(n.Z)}
	}
	idx := uint32(len(p.mesh.Vertices))
	p.mesh.Vertices = append(p.mesh.Vertices, v)
	p.lookup[c] = idx
	return idx
}

// finishNormals normalizes the accumulated face normals of vertices that
// had none in the file. Degenerate accumulations fall back to +Z.
func (p *parser) finishNormals() {
	for idx, n := range p.smooth {
		if r3.Norm(n) == 0 {
			p.mesh.Vertices[idx].Normal = [3]float32{0, 0, 1}
			continue
		}
		u := r3.Unit(n)
		p.mesh.Vertices[idx].Normal = [3]float32{float32(u.X), float32(u.Y), float32(u.Z)}
	}
}

func (p *parser) bounds() r3.Box {
	lo := r3.Vec{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	hi := r3.Vec{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}
	for _, v := range p.mesh.Vertices {
		x, y, z := float64(v.Position[0]), float64(v.Position[1]), float64(v.Position[2])
		lo = r3.Vec{X: math.Min(lo.X, x), Y: math.Min(lo.Y, y), Z: math.Min(lo.Z, z)}
		hi = r3.Vec{X: math.Max(hi.X, x), Y: math.Max(hi.Y, y), Z: math.Max(hi.Z, z)}
	}
	return r3.Box{Min: lo, Max: hi}
}
