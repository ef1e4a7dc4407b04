package converter

import (
	"context"

	"docmill/internal/domain/services/convert"
)

var markitdownInfo = convert.Info{
	Name:        "MarkItDown",
	Description: "Microsoft MarkItDown CLI. Broadest format coverage: office documents, PDF, images (OCR) and audio (transcription).",
	Extensions:  markitdownExtensions,
}

var markitdownExtensions = []string{
	"pdf", "docx", "doc", "pptx", "ppt", "xlsx", "xls",
	"html", "htm", "csv", "json", "xml", "epub", "txt", "md",
	"png", "jpg", "jpeg", "gif", "bmp", "webp", "tiff", "heic",
	"mp3", "wav", "m4a", "ogg", "flac",
}

// markitdownConverter shells out to the markitdown binary.
type markitdownConverter struct {
	apiKey string
}

func newMarkitdownConverter(opts convert.Options) (convert.DocumentConverter, error) {
	return &markitdownConverter{apiKey: opts.APIKey}, nil
}

// Convert runs markitdown and returns its stdout.
// When an API key is configured it is exposed to the subprocess so image
// descriptions can use an LLM.
func (c *markitdownConverter) Convert(ctx context.Context, path string) (string, error) {
	var env []string
	if c.apiKey != "" {
		env = append(env, "OPENAI_API_KEY="+c.apiKey)
	}
	return runCLI(ctx, "markitdown", []string{path}, env...)
}

func (c *markitdownConverter) SupportsFile(path string) bool {
	return hasExtension(path, markitdownExtensions)
}

func (c *markitdownConverter) Name() string { return "markitdown" }
