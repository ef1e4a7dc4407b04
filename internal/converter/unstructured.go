package converter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"docmill/internal/config"
	"docmill/internal/domain/services/convert"
)

var unstructuredInfo = convert.Info{
	Name:        "Unstructured",
	Description: "Unstructured hosted partition API. General-purpose element extraction across document formats.",
	Extensions:  unstructuredExtensions,
}

var unstructuredExtensions = []string{
	"pdf", "docx", "doc", "pptx", "ppt", "xlsx", "xls",
	"html", "htm", "csv", "xml", "rst", "txt", "md",
	"png", "jpg", "jpeg", "gif", "bmp", "webp", "tiff", "heic",
}

// unstructuredConverter calls the hosted partition endpoint and joins the
// returned element texts into a plain-text document.
type unstructuredConverter struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// newUnstructuredFactory binds the server-configured defaults; per-call
// credentials in opts take precedence.
func newUnstructuredFactory(cfg *config.Config) func(convert.Options) (convert.DocumentConverter, error) {
	return func(opts convert.Options) (convert.DocumentConverter, error) {
		apiKey := opts.APIKey
		if apiKey == "" {
			apiKey = cfg.UnstructuredAPIKey
		}
		baseURL := opts.BaseURL
		if baseURL == "" {
			baseURL = cfg.UnstructuredBaseURL
		}
		return &unstructuredConverter{
			apiKey:  apiKey,
			baseURL: strings.TrimSuffix(baseURL, "/"),
			client:  &http.Client{Timeout: config.ConvertTimeout},
		}, nil
	}
}

// unstructuredElement is the subset of the partition response we consume.
type unstructuredElement struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

func (c *unstructuredConverter) Convert(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("files", filepath.Base(path))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, f); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/general/v0/general", &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Accept", "application/json")
	req.Header.Set("unstructured-api-key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("unstructured API returned %d: %s",
			resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	var elements []unstructuredElement
	if err := json.NewDecoder(resp.Body).Decode(&elements); err != nil {
		return "", fmt.Errorf("failed to decode unstructured response: %w", err)
	}

	texts := make([]string, 0, len(elements))
	for _, el := range elements {
		if el.Text != "" {
			texts = append(texts, el.Text)
		}
	}
	return strings.Join(texts, "\n\n"), nil
}

func (c *unstructuredConverter) SupportsFile(path string) bool {
	return hasExtension(path, unstructuredExtensions)
}

func (c *unstructuredConverter) Name() string { return "unstructured" }
