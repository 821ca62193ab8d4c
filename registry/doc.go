// Package registry binds asset keys to renderers.
//
// Build scans an asset directory once and asks a Factory for one renderer
// per model file and one per descriptor texture. The resulting Registry is
// read-only and can be read from the frame thread without locking:
//
//	reg, err := registry.Build(ctx, "assets", factory)
//	if err != nil {
//		return err // the fallback overlay could not be built
//	}
//	defer reg.Destroy()
//
//	for _, r := range reg.Failures() {
//		log.Printf("skipped %s: %v", r.Key, r.Err)
//	}
//
// Only the fallback overlay is required. A model or descriptor that fails
// to load is recorded as a Result and skipped.
package registry
