package format

import "errors"

var (
	// ErrMalformed indicates a file's contents don't match the shape its
	// declared (or detected) format requires: a missing field, a count that
	// doesn't match the number of data lines present, or similar.
	ErrMalformed = errors.New("format: malformed input")

	// ErrUnknownFormat indicates FORMAT.txt names a format this package
	// doesn't recognize.
	ErrUnknownFormat = errors.New("format: unknown instance format")

	// ErrFormatFileMissing indicates a directory has no FORMAT.txt sibling
	// to declare which syntax its instance file uses.
	ErrFormatFileMissing = errors.New("format: FORMAT.txt not found")

	// ErrCertificateSizeMismatch indicates a certificate file's line count
	// doesn't match the instance's total item count.
	ErrCertificateSizeMismatch = errors.New("format: certificate size does not match instance")
)
