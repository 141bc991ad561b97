package fontawesome

import "errors"

var (
	// ErrInvalidStyle is returned when a style is not one of all, regular, solid or brands
	ErrInvalidStyle = errors.New("fontawesome: style must be one of all, regular, solid, brands")

	// ErrInvalidVersion is returned when a version is not a MAJOR.MINOR.PATCH string
	ErrInvalidVersion = errors.New("fontawesome: invalid version")

	// ErrFetch is returned when a remote asset cannot be downloaded
	ErrFetch = errors.New("fontawesome: fetch failed")

	// ErrIntegrityMismatch is returned when downloaded bytes do not match the known SRI digest
	ErrIntegrityMismatch = errors.New("fontawesome: integrity mismatch")

	// ErrNotLocal is returned when local serving is requested without a synchronizer
	ErrNotLocal = errors.New("fontawesome: local serving requires a synchronizer")
)
