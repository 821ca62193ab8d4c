// Package arimage places visual overlays on images tracked in a live
// camera feed.
//
// # Overview
//
// An application keeps a directory of assets next to its reference image
// database. Each tracked image is bound to those assets by filename, and
// every frame arimage decides which overlay to draw, where to draw it and
// with which tint.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/arimage/backend"
//	    "github.com/gogpu/arimage/overlay"
//	    "github.com/gogpu/arimage/registry"
//	    _ "github.com/gogpu/arimage/backend/gpu"
//	)
//
//	b, _ := backend.InitDefault()
//	reg, err := registry.Build(ctx, assetDir, b)
//	if err != nil {
//	    // fallback model missing: nothing can be drawn
//	}
//	d := overlay.New(reg)
//
//	// per frame, on the GPU thread
//	d.Draw(view, proj, image, anchor, colorCorrection)
//
// # Asset Layout
//
// The asset directory holds:
//   - <key>.obj models with optional <key>.png textures
//   - <group>-<key>.webp descriptor textures, drawn on plane.obj
//   - andy.obj and andy.png, the fallback overlay
//
// A tracked image named "group1-red.png" draws the "red" model and the
// "group1-red" descriptor. Images whose color key has no model draw the
// fallback.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Pose, Mat4, RGBA, TrackedImage, Anchor, Renderer, Factory
//   - asset: directory scanning and key derivation
//   - registry: asset key to renderer binding, built once
//   - overlay: per-frame resolution and draw sequencing
//   - backend: renderer implementations (gpu, recording)
//
// # Coordinate System
//
// Poses and matrices follow the tracking runtime's conventions:
//   - Right-handed, Y up, meters
//   - Matrices are column-major, points are column vectors
//   - Angles in radians
package arimage

// Version is the current version of the library.
const Version = "0.1.0"
