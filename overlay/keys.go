package overlay

import "strings"

// Default key derivation settings.
const (
	DefaultImageSuffix = ".png"
	DefaultDelimiter   = "-"
)

// CompleteKey strips the default image suffix from a tracked image name.
func CompleteKey(name string) string {
	return completeKey(name, DefaultImageSuffix)
}

// ColorKey returns the part of a complete key after the first default
// delimiter. A key without a delimiter is returned whole.
func ColorKey(complete string) string {
	return colorKey(complete, DefaultDelimiter)
}

func completeKey(name, suffix string) string {
	return strings.TrimSuffix(name, suffix)
}

func colorKey(complete, delim string) string {
	if delim == "" {
		return complete
	}
	if _, after, ok := strings.Cut(complete, delim); ok {
		return after
	}
	return complete
}
