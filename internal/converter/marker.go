package converter

import (
	"context"
	"os"

	"docmill/internal/config"
	"docmill/internal/domain/services/convert"
)

var markerInfo = convert.Info{
	Name:        "Marker",
	Description: "Marker CLI (marker_single). High-accuracy PDF to markdown; preferred for PDFs when installed.",
	Extensions:  markerExtensions,
}

var markerExtensions = []string{"pdf"}

// markerConverter shells out to marker_single. Output lands in a
// per-document subdirectory of the chosen output dir.
type markerConverter struct {
	apiKey string
}

func newMarkerConverter(opts convert.Options) (convert.DocumentConverter, error) {
	return &markerConverter{apiKey: opts.APIKey}, nil
}

func (c *markerConverter) Convert(ctx context.Context, path string) (string, error) {
	outDir, err := os.MkdirTemp("", "marker-*")
	if err != nil {
		return "", err
	}
	defer os.RemoveAll(outDir)

	args := []string{path, "--output_format", "markdown", "--output_dir", outDir}
	var env []string
	if c.apiKey != "" {
		// LLM mode improves tables and forms when a Gemini key is available.
		args = append(args, "--use_llm")
		env = append(env, "GOOGLE_API_KEY="+c.apiKey)
	}

	if _, err := runCLI(ctx, "marker_single", args, env...); err != nil {
		return "", err
	}

	return findMarkdown(outDir)
}

// SupportsFile accepts PDFs up to the configured size limit. When the file
// cannot be stat'd the size check is skipped; extension alone decides.
func (c *markerConverter) SupportsFile(path string) bool {
	if !hasExtension(path, markerExtensions) {
		return false
	}
	if info, err := os.Stat(path); err == nil && info.Size() > config.MaxMarkerFileBytes {
		return false
	}
	return true
}

func (c *markerConverter) Name() string { return "marker" }
