package converter

import (
	"context"
	"os"

	"docmill/internal/domain/services/convert"
)

var doclingInfo = convert.Info{
	Name:        "Docling",
	Description: "IBM Docling CLI. Layout-aware conversion of PDF and office formats, with OCR for images.",
	Extensions:  doclingExtensions,
}

var doclingExtensions = []string{
	"pdf", "docx", "pptx", "xlsx", "html", "htm", "md",
	"png", "jpg", "jpeg", "gif", "bmp", "webp", "tiff",
}

// doclingConverter shells out to the docling binary. Docling writes its
// output into a directory rather than stdout, so conversion goes through a
// scratch directory.
type doclingConverter struct{}

func newDoclingConverter(opts convert.Options) (convert.DocumentConverter, error) {
	return &doclingConverter{}, nil
}

func (c *doclingConverter) Convert(ctx context.Context, path string) (string, error) {
	outDir, err := os.MkdirTemp("", "docling-*")
	if err != nil {
		return "", err
	}
	defer os.RemoveAll(outDir)

	args := []string{"--to", "md", "--output", outDir, path}
	if _, err := runCLI(ctx, "docling", args); err != nil {
		return "", err
	}

	return findMarkdown(outDir)
}

func (c *doclingConverter) SupportsFile(path string) bool {
	return hasExtension(path, doclingExtensions)
}

func (c *doclingConverter) Name() string { return "docling" }
