package converter

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"docmill/internal/config"
)

// probeBinary returns a probe that resolves an external converter binary on
// PATH. A missing binary is the usual "optional dependency absent" case.
func probeBinary(name string) func() error {
	return func() error {
		if _, err := exec.LookPath(name); err != nil {
			return fmt.Errorf("%s binary not found on PATH: %w", name, err)
		}
		return nil
	}
}

// runCLI executes an external converter binary with a bounded timeout and
// returns its stdout. Stderr is folded into the error on failure.
func runCLI(ctx context.Context, name string, args []string, extraEnv ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, config.ConvertTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	if len(extraEnv) > 0 {
		cmd.Env = append(os.Environ(), extraEnv...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return "", fmt.Errorf("%s failed: %w: %s", name, err, msg)
		}
		return "", fmt.Errorf("%s failed: %w", name, err)
	}

	return stdout.String(), nil
}

// findMarkdown locates the first .md file under dir. Converters like docling
// and marker write output files into a directory instead of stdout.
func findMarkdown(dir string) (string, error) {
	var found string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".md") {
			found = path
			return filepath.SkipAll
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	if found == "" {
		return "", fmt.Errorf("no markdown output found in %s", dir)
	}

	data, err := os.ReadFile(found)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// fileExt returns the lowercase extension of path without the leading dot.
func fileExt(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

// hasExtension reports whether path's extension is in exts (lowercase, no dot).
func hasExtension(path string, exts []string) bool {
	ext := fileExt(path)
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}
