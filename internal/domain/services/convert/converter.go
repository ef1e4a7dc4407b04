package convert

import "context"

// DocumentConverter converts a document file to markdown text.
// Each backend wraps an external tool or service (markitdown, pandoc, ...)
// or performs the conversion in-process.
//
// Implementations should be stateless and thread-safe.
type DocumentConverter interface {
	// Convert transforms the file at path to markdown.
	// Returns an error if conversion fails.
	Convert(ctx context.Context, path string) (markdown string, err error)

	// SupportsFile reports whether this converter can handle the given file.
	// Beyond the extension it may inspect the file itself (existence, size).
	// It must not panic for well-formed paths; callers tolerate panics
	// defensively, but the contract expects a plain boolean.
	SupportsFile(path string) bool

	// Name returns a human-readable converter name for logging/debugging.
	Name() string
}

// Info is the static descriptive metadata a backend publishes.
// It is available without constructing an instance.
type Info struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Extensions  []string `json:"extensions"`
}

// Options carries optional credentials forwarded verbatim to backend
// constructors. Backends that need neither ignore them.
type Options struct {
	APIKey  string
	BaseURL string
}
