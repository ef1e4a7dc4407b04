package config

import "time"

const (
	// MaxUploadBytes is the largest document accepted for conversion.
	// 50MB covers scanned PDFs while keeping memory and temp-disk use sane.
	MaxUploadBytes = 50 << 20

	// MaxFilenameLength is the maximum length for uploaded file names.
	// Limited to 255 to match common filesystem limits.
	MaxFilenameLength = 255

	// ConvertTimeout bounds a single external converter invocation.
	// Marker on a large scanned PDF is the slow case.
	ConvertTimeout = 5 * time.Minute

	// MaxMarkerFileBytes is the largest PDF marker will claim support for.
	// Larger files route to the next converter in the priority list.
	MaxMarkerFileBytes = 100 << 20
)
