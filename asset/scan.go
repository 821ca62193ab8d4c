package asset

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
)

// scanBatch is the number of directory entries read per ReadDir call.
const scanBatch = 64

// ErrConsumed is yielded when a scan sequence is iterated a second time.
var ErrConsumed = errors.New("asset: scan already consumed")

// ScanError reports a directory that could not be listed.
type ScanError struct {
	Dir string
	Err error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("asset: scan %s: %v", e.Dir, e.Err)
}

func (e *ScanError) Unwrap() error { return e.Err }

// Matcher selects file names during a scan.
type Matcher func(name string) bool

// HasExt matches names ending in ext, ignoring case. The name must be
// longer than the extension itself.
func HasExt(ext string) Matcher {
	return func(name string) bool {
		return len(name) > len(ext) && strings.EqualFold(name[len(name)-len(ext):], ext)
	}
}

// Key returns the asset key of a file: its base name with ext removed.
// The extension is compared without regard to case. Names that do not
// end in ext are returned unchanged.
func Key(path, ext string) string {
	name := filepath.Base(path)
	if len(name) >= len(ext) && strings.EqualFold(name[len(name)-len(ext):], ext) {
		return name[:len(name)-len(ext)]
	}
	return name
}

// Sibling returns the path of the file next to path that shares its key
// but carries ext instead of fromExt.
func Sibling(path, fromExt, ext string) string {
	return filepath.Join(filepath.Dir(path), Key(path, fromExt)+ext)
}

// Scan returns the paths of regular files in dir whose names satisfy match.
//
// The sequence is lazy: the directory is opened on first iteration and
// read in batches. It can be iterated only once; later iterations yield
// ErrConsumed. If the directory cannot be opened or listed, a *ScanError
// is yielded and the sequence ends. Entry order is the directory's order.
func Scan(dir string, match Matcher) iter.Seq2[string, error] {
	var used atomic.Bool
	return func(yield func(string, error) bool) {
		if used.Swap(true) {
			yield("", ErrConsumed)
			return
		}

		f, err := os.Open(filepath.Clean(dir))
		if err != nil {
			yield("", &ScanError{Dir: dir, Err: err})
			return
		}
		defer func() { _ = f.Close() }()

		for {
			entries, err := f.ReadDir(scanBatch)
			for _, e := range entries {
				if !e.Type().IsRegular() || !match(e.Name()) {
					continue
				}
				if !yield(filepath.Join(dir, e.Name()), nil) {
					return
				}
			}
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield("", &ScanError{Dir: dir, Err: err})
				return
			}
		}
	}
}

// Collect drains a scan into a slice. It stops at the first error.
func Collect(seq iter.Seq2[string, error]) ([]string, error) {
	var paths []string
	for p, err := range seq {
		if err != nil {
			return paths, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}
