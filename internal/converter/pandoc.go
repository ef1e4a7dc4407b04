package converter

import (
	"context"

	"docmill/internal/domain/services/convert"
)

// The identifier stays "pypandoc" even though this backend drives the pandoc
// binary directly: converter ids are part of the public API and clients
// already select by this name.
var pandocInfo = convert.Info{
	Name:        "Pandoc",
	Description: "Pandoc universal document converter. Strong for markup formats: LaTeX, reStructuredText, EPUB, notebooks.",
	Extensions:  pandocExtensions,
}

var pandocExtensions = []string{
	"docx", "odt", "rtf", "html", "htm", "json",
	"tex", "latex", "rst", "epub", "ipynb", "md", "markdown",
}

// pandocConverter shells out to pandoc, asking for GitHub-flavored markdown
// on stdout.
type pandocConverter struct{}

func newPandocConverter(opts convert.Options) (convert.DocumentConverter, error) {
	return &pandocConverter{}, nil
}

func (c *pandocConverter) Convert(ctx context.Context, path string) (string, error) {
	return runCLI(ctx, "pandoc", []string{path, "--to", "gfm", "--wrap", "none"})
}

func (c *pandocConverter) SupportsFile(path string) bool {
	return hasExtension(path, pandocExtensions)
}

func (c *pandocConverter) Name() string { return "pypandoc" }
