package ir

import "time"

// Metadata holds the document-level attributes extracted from the fixed
// header cells of the source document.
type Metadata struct {
	OperationID   string // Operation identifier
	OperationName string // Human-readable operation name
	Version       string // Document version
	Category      string // Category identifier
	Component     string // Component identifier
	Service       string // Service identifier
	Description   string // Free-text description

	// Provenance. ExtractedAt is for in-process consumers only and is never
	// part of the canonical serialized form.
	SourcePath      string
	ResolverVersion string
	ExtractedAt     time.Time
}
