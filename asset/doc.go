// Package asset enumerates asset directories and derives asset keys from
// file names.
//
// A key is a file's base name with a known extension removed:
//
//	red.obj          -> "red"
//	group1-red.webp  -> "group1-red"
//
// Scanning is lazy and read-only. Keys are not guaranteed unique: callers
// that store assets by key keep whichever entry was scanned last.
package asset
