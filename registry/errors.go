package registry

import (
	"errors"
	"fmt"

	"github.com/gogpu/arimage/asset"
)

// Kind classifies a registry entry.
type Kind int

const (
	// KindModel is a model file drawn at the anchor.
	KindModel Kind = iota
	// KindDescriptor is a descriptor texture drawn beside the image.
	KindDescriptor
	// KindFallback is the overlay drawn when no model matches.
	KindFallback
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindModel:
		return "model"
	case KindDescriptor:
		return "descriptor"
	case KindFallback:
		return "fallback"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ScanError is returned when an asset directory cannot be listed.
type ScanError = asset.ScanError

// AssetBuildError reports a renderer that could not be created from its
// model and texture files.
type AssetBuildError struct {
	Kind    Kind
	Key     string
	Model   string
	Texture string
	Err     error
}

func (e *AssetBuildError) Error() string {
	tex := e.Texture
	if tex == "" {
		tex = "<default>"
	}
	return fmt.Sprintf("registry: build %s %q (%s, %s): %v", e.Kind, e.Key, e.Model, tex, e.Err)
}

func (e *AssetBuildError) Unwrap() error { return e.Err }

// Result is the outcome for one candidate file, or for a whole category
// when its scan failed. Err is nil on success.
type Result struct {
	Kind    Kind
	Key     string
	Model   string
	Texture string
	Err     error
	// Replaced is set when a later file with the same key replaced this
	// entry and its renderer was destroyed.
	Replaced bool
}

// OK reports whether the entry was built and is still in the registry.
func (r Result) OK() bool { return r.Err == nil && !r.Replaced }

var errNilRenderer = errors.New("registry: factory returned nil renderer")
