// Package cache provides a generic LRU cache for loaded assets.
//
//	meshes := cache.New[string, *mesh.Mesh](64, nil)
//	m, err := meshes.Load(path, func() (*mesh.Mesh, error) {
//		return mesh.Load(path)
//	})
//
// Load calls the loader at most once per key while the entry is cached.
// Evicted values are passed to an optional callback so owners can
// release GPU resources.
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
