package asset

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, n := range names {
		if err := os.WriteFile(filepath.Join(dir, n), []byte("x"), 0o600); err != nil {
			t.Fatal(err)
		}
	}
}

func TestHasExt(t *testing.T) {
	tests := []struct {
		name string
		ext  string
		want bool
	}{
		{"red.obj", ".obj", true},
		{"RED.OBJ", ".obj", true},
		{"red.obj.bak", ".obj", false},
		{"red.objx", ".obj", false},
		{".obj", ".obj", false},
		{"obj", ".obj", false},
		{"group1-red.webp", ".webp", true},
		{"red.png", ".webp", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasExt(tt.ext)(tt.name); got != tt.want {
				t.Errorf("HasExt(%q)(%q) = %v, want %v", tt.ext, tt.name, got, tt.want)
			}
		})
	}
}

func TestKey(t *testing.T) {
	tests := []struct {
		path string
		ext  string
		want string
	}{
		{"red.obj", ".obj", "red"},
		{"/assets/group1-red.webp", ".webp", "group1-red"},
		{"Andy.OBJ", ".obj", "Andy"},
		{"notes.txt", ".obj", "notes.txt"},
		{"a.b.obj", ".obj", "a.b"},
	}
	for _, tt := range tests {
		if got := Key(tt.path, tt.ext); got != tt.want {
			t.Errorf("Key(%q, %q) = %q, want %q", tt.path, tt.ext, got, tt.want)
		}
	}
}

func TestSibling(t *testing.T) {
	got := Sibling(filepath.Join("assets", "red.obj"), ".obj", ".png")
	if want := filepath.Join("assets", "red.png"); got != want {
		t.Errorf("Sibling = %q, want %q", got, want)
	}
}

func TestScanFilters(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "red.obj", "red.png", "blue.OBJ", "plane.obj", "readme.txt")
	if err := os.Mkdir(filepath.Join(dir, "nested.obj"), 0o700); err != nil {
		t.Fatal(err)
	}

	got, err := Collect(Scan(dir, HasExt(".obj")))
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	slices.Sort(got)
	want := []string{
		filepath.Join(dir, "blue.OBJ"),
		filepath.Join(dir, "plane.obj"),
		filepath.Join(dir, "red.obj"),
	}
	if !slices.Equal(got, want) {
		t.Errorf("Scan = %v, want %v", got, want)
	}
}

func TestScanEmptyDir(t *testing.T) {
	got, err := Collect(Scan(t.TempDir(), HasExt(".obj")))
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Scan of empty dir = %v, want none", got)
	}
}

func TestScanLazy(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.obj")
	seq := Scan(dir, HasExt(".obj"))

	// Files created before the first iteration are still seen.
	touch(t, dir, "b.obj")
	got, err := Collect(seq)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("Scan found %d files, want 2", len(got))
	}
}

func TestScanConsumed(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.obj")
	seq := Scan(dir, HasExt(".obj"))
	if _, err := Collect(seq); err != nil {
		t.Fatalf("first Collect: %v", err)
	}
	_, err := Collect(seq)
	if !errors.Is(err, ErrConsumed) {
		t.Errorf("second Collect error = %v, want ErrConsumed", err)
	}
}

func TestScanEarlyStop(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.obj", "b.obj", "c.obj")
	n := 0
	for _, err := range Scan(dir, HasExt(".obj")) {
		if err != nil {
			t.Fatal(err)
		}
		n++
		break
	}
	if n != 1 {
		t.Errorf("visited %d entries, want 1", n)
	}
}

func TestScanMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")
	var errs []error
	for p, err := range Scan(dir, HasExt(".obj")) {
		if err == nil {
			t.Errorf("unexpected path %q", p)
			continue
		}
		errs = append(errs, err)
	}
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1", len(errs))
	}
	var se *ScanError
	if !errors.As(errs[0], &se) {
		t.Fatalf("error %T, want *ScanError", errs[0])
	}
	if se.Dir != dir {
		t.Errorf("ScanError.Dir = %q, want %q", se.Dir, dir)
	}
	if !errors.Is(errs[0], os.ErrNotExist) {
		t.Errorf("error %v does not wrap os.ErrNotExist", errs[0])
	}
}
