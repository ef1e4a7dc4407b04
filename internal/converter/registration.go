package converter

import (
	"errors"

	"docmill/internal/config"
)

// builtinEntries declares every known converter backend.
// Registration order matters: it is the fallback preference for files whose
// extension has no priority entry, and the order of the final unconditional
// fallback.
func builtinEntries(cfg *config.Config) []Entry {
	return []Entry{
		{
			ID:    "markitdown",
			Info:  markitdownInfo,
			Probe: probeBinary("markitdown"),
			New:   newMarkitdownConverter,
		},
		{
			ID:    "docling",
			Info:  doclingInfo,
			Probe: probeBinary("docling"),
			New:   newDoclingConverter,
		},
		{
			ID:    "marker",
			Info:  markerInfo,
			Probe: probeBinary("marker_single"),
			New:   newMarkerConverter,
		},
		{
			ID:    "pypandoc",
			Info:  pandocInfo,
			Probe: probeBinary("pandoc"),
			New:   newPandocConverter,
		},
		{
			ID:    "unstructured",
			Info:  unstructuredInfo,
			Probe: probeUnstructured(cfg),
			New:   newUnstructuredFactory(cfg),
		},
		{
			ID:    "mammoth",
			Info:  mammothInfo,
			Probe: probeBinary("mammoth"),
			New:   newMammothConverter,
		},
		{
			ID:    "html2text",
			Info:  html2textInfo,
			Probe: func() error { return nil }, // in-process, always available
			New:   newHTML2TextConverter,
		},
	}
}

// probeUnstructured checks that the hosted API is configured. The backend's
// optional dependency is a credential rather than a binary.
func probeUnstructured(cfg *config.Config) func() error {
	return func() error {
		if cfg.UnstructuredAPIKey == "" {
			return errors.New("UNSTRUCTURED_API_KEY not configured")
		}
		return nil
	}
}
