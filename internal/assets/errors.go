package assets

import "errors"

// Sentinel errors for theme asset operations.
var (
	// ErrThemeNotFound indicates the requested theme does not exist.
	ErrThemeNotFound = errors.New("theme not found")

	// ErrInvalidAssetName indicates the asset name contains invalid
	// characters such as path separators or traversal sequences.
	ErrInvalidAssetName = errors.New("invalid asset name")
)
