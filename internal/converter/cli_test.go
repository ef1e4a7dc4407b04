package converter

import (
	"os"
	"path/filepath"
	"testing"
)

func TestHasExtension(t *testing.T) {
	exts := []string{"pdf", "docx"}

	cases := []struct {
		path string
		want bool
	}{
		{"/tmp/a.pdf", true},
		{"/tmp/a.PDF", true},
		{"/tmp/a.docx", true},
		{"/tmp/a.txt", false},
		{"/tmp/noext", false},
		{"/tmp/.pdf", true}, // dotfile whose name is the extension
	}
	for _, tc := range cases {
		if got := hasExtension(tc.path, exts); got != tc.want {
			t.Errorf("hasExtension(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}

func TestFindMarkdown(t *testing.T) {
	t.Run("finds nested output", func(t *testing.T) {
		dir := t.TempDir()
		sub := filepath.Join(dir, "report")
		if err := os.MkdirAll(sub, 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(sub, "report.md"), []byte("# out"), 0644); err != nil {
			t.Fatal(err)
		}

		got, err := findMarkdown(dir)
		if err != nil {
			t.Fatalf("findMarkdown error: %v", err)
		}
		if got != "# out" {
			t.Errorf("findMarkdown = %q, want %q", got, "# out")
		}
	})

	t.Run("empty directory errors", func(t *testing.T) {
		if _, err := findMarkdown(t.TempDir()); err == nil {
			t.Error("findMarkdown on empty dir succeeded")
		}
	})
}
