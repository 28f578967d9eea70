package note2doc

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyContent  = errors.New("content cannot be empty")
	ErrInvalidFormat = errors.New("invalid output format")

	// PDF export errors.
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")

	// Theme and page-setup validation errors.
	ErrInvalidOpacity     = errors.New("invalid watermark opacity")
	ErrInvalidBorderStyle = errors.New("invalid page border style")
	ErrInvalidPageSize    = errors.New("invalid page size")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidNumberStyle = errors.New("invalid page number style")

	// Markdown import errors.
	ErrMarkdownImport = errors.New("markdown import failed")
)
