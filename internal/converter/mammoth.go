package converter

import (
	"context"

	"docmill/internal/domain/services/convert"
)

var mammothInfo = convert.Info{
	Name:        "Mammoth",
	Description: "Mammoth CLI. Purpose-built .docx to markdown conversion with clean semantic output.",
	Extensions:  mammothExtensions,
}

var mammothExtensions = []string{"docx"}

// mammothConverter shells out to the mammoth binary.
type mammothConverter struct{}

func newMammothConverter(opts convert.Options) (convert.DocumentConverter, error) {
	return &mammothConverter{}, nil
}

func (c *mammothConverter) Convert(ctx context.Context, path string) (string, error) {
	return runCLI(ctx, "mammoth", []string{path, "--output-format=markdown"})
}

func (c *mammothConverter) SupportsFile(path string) bool {
	return hasExtension(path, mammothExtensions)
}

func (c *mammothConverter) Name() string { return "mammoth" }
