package converter

import (
	"context"
	"fmt"
	"os"

	md "github.com/JohannesKaufmann/html-to-markdown"

	"docmill/internal/converter/sanitizer"
	"docmill/internal/domain/services/convert"
)

var html2textInfo = convert.Info{
	Name:        "HTML to Text",
	Description: "In-process HTML to markdown conversion. Sanitizes input before converting; no external tools required.",
	Extensions:  html2textExtensions,
}

var html2textExtensions = []string{"html", "htm", "xml"}

// html2textConverter converts HTML files to markdown in-process.
// Two-stage: sanitize (XSS removal) then convert.
type html2textConverter struct {
	sanitizer *sanitizer.HTMLSanitizer
	converter *md.Converter
}

func newHTML2TextConverter(opts convert.Options) (convert.DocumentConverter, error) {
	return &html2textConverter{
		sanitizer: sanitizer.NewHTMLSanitizer(),
		converter: md.NewConverter("", true, nil),
	}, nil
}

func (c *html2textConverter) Convert(ctx context.Context, path string) (string, error) {
	input, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	sanitized, err := c.sanitizer.Sanitize(string(input))
	if err != nil {
		return "", fmt.Errorf("failed to sanitize HTML: %w", err)
	}

	markdown, err := c.converter.ConvertString(sanitized)
	if err != nil {
		return "", fmt.Errorf("failed to convert HTML to markdown: %w", err)
	}

	return markdown, nil
}

func (c *html2textConverter) SupportsFile(path string) bool {
	return hasExtension(path, html2textExtensions)
}

func (c *html2textConverter) Name() string { return "html2text" }
