package schema

import "errors"

var (
	// ErrSchemaURI wraps registry lookup and URI parse failures.
	ErrSchemaURI = errors.New("schema URI error")

	// ErrNotMinimizable is returned when the addressed schema cannot be
	// walked for normalization.
	ErrNotMinimizable = errors.New("schema not walkable for normalization")
)
