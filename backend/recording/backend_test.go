package recording

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/arimage"
	"github.com/gogpu/arimage/backend"
	"github.com/gogpu/arimage/internal/mesh"
	"github.com/gogpu/arimage/overlay"
	"github.com/gogpu/arimage/registry"
)

const triangleOBJ = "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func writeFiles(t *testing.T, files map[string][]byte) string {
	t.Helper()
	dir := t.TempDir()
	for name, data := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o600))
	}
	return dir
}

func newBackend(t *testing.T, opts ...Option) *Backend {
	t.Helper()
	b := New(opts...)
	require.NoError(t, b.Init())
	t.Cleanup(b.Close)
	return b
}

func TestRegistered(t *testing.T) {
	require.True(t, backend.IsRegistered(backend.NameRecording))
	b := backend.Get(backend.NameRecording)
	require.NotNil(t, b)
	require.Equal(t, "recording", b.Name())
}

func TestNewRendererRequiresInit(t *testing.T) {
	_, err := New().NewRenderer("a.obj", "", arimage.DefaultMaterial)
	require.ErrorIs(t, err, backend.ErrNotInitialized)
}

func TestNewRendererChecksFiles(t *testing.T) {
	dir := writeFiles(t, map[string][]byte{"red.obj": []byte(triangleOBJ), "red.png": {1}})
	b := newBackend(t)

	r, err := b.NewRenderer(filepath.Join(dir, "red.obj"), filepath.Join(dir, "red.png"), arimage.DefaultMaterial)
	require.NoError(t, err)
	require.Equal(t, "red.obj+red.png", r.(*Renderer).Label())

	r, err = b.NewRenderer(filepath.Join(dir, "red.obj"), "", arimage.DefaultMaterial)
	require.NoError(t, err)
	require.Equal(t, "red.obj", r.(*Renderer).Label())

	_, err = b.NewRenderer(filepath.Join(dir, "blue.obj"), "", arimage.DefaultMaterial)
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = b.NewRenderer(filepath.Join(dir, "red.obj"), filepath.Join(dir, "blue.png"), arimage.DefaultMaterial)
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = b.NewRenderer(dir, "", arimage.DefaultMaterial)
	require.Error(t, err, "directories are not models")
}

func TestValidation(t *testing.T) {
	dir := writeFiles(t, map[string][]byte{
		"red.obj":    []byte(triangleOBJ),
		"red.png":    pngBytes(t, 8, 4),
		"broken.obj": []byte("v 0 0 0\nf 1 2 3\n"),
		"bad.png":    []byte("not a png"),
	})
	b := newBackend(t, WithValidation(true))

	r, err := b.NewRenderer(filepath.Join(dir, "red.obj"), filepath.Join(dir, "red.png"), arimage.DefaultMaterial)
	require.NoError(t, err)
	rr := r.(*Renderer)
	require.Equal(t, 1, rr.Triangles())
	w, h := rr.TextureSize()
	require.Equal(t, [2]int{8, 4}, [2]int{w, h})

	_, err = b.NewRenderer(filepath.Join(dir, "broken.obj"), "", arimage.DefaultMaterial)
	var pe *mesh.ParseError
	require.ErrorAs(t, err, &pe)

	_, err = b.NewRenderer(filepath.Join(dir, "red.obj"), filepath.Join(dir, "bad.png"), arimage.DefaultMaterial)
	require.Error(t, err)

	r, err = b.NewRenderer(filepath.Join(dir, "red.obj"), "", arimage.DefaultMaterial)
	require.NoError(t, err)
	w, h = r.(*Renderer).TextureSize()
	require.Equal(t, [2]int{1, 1}, [2]int{w, h})
}

func TestDrawRecords(t *testing.T) {
	dir := writeFiles(t, map[string][]byte{"red.obj": []byte(triangleOBJ)})
	b := newBackend(t)
	mat := arimage.Material{Diffuse: 1}
	r, err := b.NewRenderer(filepath.Join(dir, "red.obj"), "", mat)
	require.NoError(t, err)

	p := arimage.DrawParams{
		Model:           arimage.Translate(1, 2, 3),
		Scale:           0.4,
		View:            arimage.Identity(),
		Projection:      arimage.ScaleUniform(2),
		ColorCorrection: [4]float32{1, 1, 1, 0.5},
		Tint:            arimage.TintFor(1),
	}
	require.NoError(t, r.Draw(p))

	want := []Command{{
		Label:           "red.obj",
		Model:           p.Model,
		Scale:           0.4,
		View:            p.View,
		Projection:      p.Projection,
		ColorCorrection: p.ColorCorrection,
		Tint:            p.Tint,
		Material:        mat,
	}}
	if diff := cmp.Diff(want, b.Recording().Commands()); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}

	b.Recording().Reset()
	require.Zero(t, b.Recording().Len())

	r.(*Renderer).Destroy()
	require.ErrorIs(t, r.Draw(p), ErrRendererDestroyed)
}

func TestRecordingConcurrent(t *testing.T) {
	rec := &Recording{}
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				rec.append(Command{Scale: float32(i)})
			}
		}()
	}
	wg.Wait()
	require.Equal(t, 800, rec.Len())
}

func TestSharedRecording(t *testing.T) {
	rec := &Recording{}
	a := New(WithRecording(rec))
	b := New(WithRecording(rec))
	require.Same(t, a.Recording(), b.Recording())
}

// TestOverlayFrame drives the full path: directory scan, registry build
// and per-frame dispatch, with draws captured by the recording backend.
func TestOverlayFrame(t *testing.T) {
	obj := []byte(triangleOBJ)
	dir := writeFiles(t, map[string][]byte{
		"red.obj":         obj,
		"red.png":         {1},
		"group1-red.webp": {1},
		"plane.obj":       obj,
		"andy.obj":        obj,
		"andy.png":        {1},
	})
	b := newBackend(t)

	reg, err := registry.Build(context.Background(), dir, b)
	require.NoError(t, err)
	defer reg.Destroy()

	d := overlay.New(reg)
	anchor := arimage.StaticAnchor(arimage.TranslationPose(0, 0, -1))
	frame := overlay.Frame{
		View:       arimage.Identity(),
		Projection: arimage.Identity(),
		Targets: []overlay.Target{
			{Image: arimage.TrackedImage{Name: "group1-red.png", Index: 1, ExtentX: 0.2}, Anchor: anchor},
			{Image: arimage.TrackedImage{Name: "group1-green.png", Index: 2}, Anchor: anchor},
			{Image: arimage.TrackedImage{Name: "group1-blue.png", Index: 3}},
		},
	}
	require.NoError(t, d.DrawFrame(frame))

	var labels []string
	for _, c := range b.Recording().Commands() {
		labels = append(labels, c.Label)
	}
	want := []string{"red.obj+red.png", "plane.obj+group1-red.webp", "andy.obj+andy.png"}
	if diff := cmp.Diff(want, labels); diff != "" {
		t.Errorf("draw order mismatch (-want +got):\n%s", diff)
	}

	cmds := b.Recording().Commands()
	require.Equal(t, arimage.DescriptorMatrix(arimage.TranslationPose(0, 0, -1), 0.2), cmds[1].Model)
	require.Equal(t, float32(0.2), cmds[1].Scale)
	require.Equal(t, arimage.TintFor(2), cmds[2].Tint)

	reg.Destroy()
	err = d.DrawFrame(frame)
	require.True(t, errors.Is(err, overlay.ErrNoRenderer), "draw after destroy: %v", err)
}
