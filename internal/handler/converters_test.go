package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"docmill/internal/config"
	"docmill/internal/converter"
	"docmill/internal/domain/services/convert"
)

// stubConverter is a test implementation of DocumentConverter.
type stubConverter struct {
	id       string
	supports bool
	output   string
}

func (s *stubConverter) Convert(ctx context.Context, path string) (string, error) {
	return s.output, nil
}

func (s *stubConverter) SupportsFile(path string) bool { return s.supports }
func (s *stubConverter) Name() string                  { return s.id }

func stubEntry(id string, probeErr error, supports bool, output string) converter.Entry {
	return converter.Entry{
		ID:    id,
		Info:  convert.Info{Name: id, Description: id + " stub"},
		Probe: func() error { return probeErr },
		New: func(opts convert.Options) (convert.DocumentConverter, error) {
			return &stubConverter{id: id, supports: supports, output: output}, nil
		},
	}
}

func newTestHandler(t *testing.T, entries []converter.Entry, table converter.PriorityTable) *ConverterHandler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	d := converter.NewDirectoryWithEntries(entries, table, logger)
	return NewConverterHandler(d, &config.Config{}, logger)
}

func TestConverterHandler_ListConverters(t *testing.T) {
	h := newTestHandler(t, []converter.Entry{
		stubEntry("good", nil, true, ""),
		stubEntry("bad", errors.New("missing dependency"), true, ""),
	}, converter.PriorityTable{})

	req := httptest.NewRequest(http.MethodGet, "/api/converters", nil)
	rec := httptest.NewRecorder()
	h.ListConverters(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body struct {
		Converters []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"converters"`
		Unavailable map[string]string `json:"unavailable"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if len(body.Converters) != 1 || body.Converters[0].ID != "good" {
		t.Errorf("converters = %+v, want single 'good'", body.Converters)
	}
	if body.Unavailable["bad"] != "missing dependency" {
		t.Errorf("unavailable = %v", body.Unavailable)
	}
}

func TestConverterHandler_SelectConverter(t *testing.T) {
	table := converter.PriorityTable{"pdf": {"second", "first"}}
	h := newTestHandler(t, []converter.Entry{
		stubEntry("first", nil, true, ""),
		stubEntry("second", nil, true, ""),
	}, table)

	t.Run("priority table decides", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/converters/select",
			strings.NewReader(`{"filename":"report.pdf"}`))
		rec := httptest.NewRecorder()
		h.SelectConverter(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
		}
		var body map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatal(err)
		}
		if body["converter"] != "second" {
			t.Errorf("converter = %q, want second", body["converter"])
		}
	})

	t.Run("missing filename is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/converters/select",
			strings.NewReader(`{}`))
		rec := httptest.NewRecorder()
		h.SelectConverter(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("invalid json is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/converters/select",
			strings.NewReader(`{`))
		rec := httptest.NewRecorder()
		h.SelectConverter(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})
}

func multipartUpload(t *testing.T, filename, content, converterField string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if converterField != "" {
		if err := mw.WriteField("converter", converterField); err != nil {
			t.Fatal(err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}
	return &buf, mw.FormDataContentType()
}

func TestConverterHandler_Convert(t *testing.T) {
	h := newTestHandler(t, []converter.Entry{
		stubEntry("stub", nil, true, "# converted"),
	}, converter.PriorityTable{})

	t.Run("auto selection converts", func(t *testing.T) {
		body, contentType := multipartUpload(t, "notes.txt", "hello", "")
		req := httptest.NewRequest(http.MethodPost, "/api/convert", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		h.Convert(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
		}
		var resp ConvertResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatal(err)
		}
		if resp.Markdown != "# converted" || resp.Converter != "stub" {
			t.Errorf("response = %+v", resp)
		}
	})

	t.Run("explicit converter id", func(t *testing.T) {
		body, contentType := multipartUpload(t, "notes.txt", "hello", "stub")
		req := httptest.NewRequest(http.MethodPost, "/api/convert", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		h.Convert(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("unknown converter id returns 404 with available list", func(t *testing.T) {
		body, contentType := multipartUpload(t, "notes.txt", "hello", "ghost")
		req := httptest.NewRequest(http.MethodPost, "/api/convert", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		h.Convert(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "stub") {
			t.Errorf("error body should list available converters: %s", rec.Body.String())
		}
	})

	t.Run("missing file field", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/convert", strings.NewReader("not multipart"))
		rec := httptest.NewRecorder()
		h.Convert(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})
}

func TestConverterHandler_Convert_NoConverters(t *testing.T) {
	h := newTestHandler(t, []converter.Entry{
		stubEntry("broken", errors.New("nope"), true, ""),
	}, converter.PriorityTable{})

	body, contentType := multipartUpload(t, "notes.txt", "hello", "")
	req := httptest.NewRequest(http.MethodPost, "/api/convert", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.Convert(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
}
