package converter

import (
	"reflect"
	"testing"
)

func TestLoadPriorityTable(t *testing.T) {
	table, err := LoadPriorityTable()
	if err != nil {
		t.Fatalf("LoadPriorityTable error: %v", err)
	}

	t.Run("pdf order", func(t *testing.T) {
		order, ok := table.ForExtension("pdf")
		if !ok {
			t.Fatal("pdf missing from table")
		}
		want := []string{"marker", "docling", "markitdown", "pypandoc", "unstructured"}
		if !reflect.DeepEqual(order, want) {
			t.Errorf("pdf order = %v, want %v", order, want)
		}
	})

	t.Run("docx prefers mammoth", func(t *testing.T) {
		order, _ := table.ForExtension("docx")
		if len(order) == 0 || order[0] != "mammoth" {
			t.Errorf("docx order = %v, want mammoth first", order)
		}
	})

	t.Run("image group expanded", func(t *testing.T) {
		want := []string{"markitdown", "docling", "unstructured"}
		for _, ext := range []string{"png", "jpg", "jpeg", "gif", "bmp", "webp", "tiff", "heic"} {
			order, ok := table.ForExtension(ext)
			if !ok {
				t.Errorf("%s missing from table", ext)
				continue
			}
			if !reflect.DeepEqual(order, want) {
				t.Errorf("%s order = %v, want %v", ext, order, want)
			}
		}
	})

	t.Run("audio group is markitdown only", func(t *testing.T) {
		for _, ext := range []string{"mp3", "wav", "m4a", "ogg", "flac"} {
			order, ok := table.ForExtension(ext)
			if !ok {
				t.Errorf("%s missing from table", ext)
				continue
			}
			if len(order) != 1 || order[0] != "markitdown" {
				t.Errorf("%s order = %v, want [markitdown]", ext, order)
			}
		}
	})

	t.Run("lookup normalizes case and leading dot", func(t *testing.T) {
		if _, ok := table.ForExtension(".PDF"); !ok {
			t.Error("ForExtension(.PDF) missed")
		}
	})

	t.Run("unlisted extension misses", func(t *testing.T) {
		if _, ok := table.ForExtension("weird"); ok {
			t.Error("ForExtension(weird) unexpectedly hit")
		}
	})
}
