package resume

import (
	"context"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"
)

// allowedExtensions are the upload types the pipeline can read.
var allowedExtensions = map[string]bool{
	"pdf":  true,
	"docx": true,
	"doc":  true,
	"txt":  true,
}

const extractTimeout = 30 * time.Second

// AllowedFile reports whether the filename has a supported extension.
func AllowedFile(filename string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	return ext != "" && allowedExtensions[ext]
}

// ExtractText pulls plain text out of an uploaded resume. Extraction
// failures return an empty string, never an error; the caller rejects short
// results.
func ExtractText(ctx context.Context, path, filename string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))

	switch ext {
	case "pdf":
		return runExtractor(ctx, "pdftotext", "-layout", path, "-")
	case "docx":
		if text := runExtractor(ctx, "docx2txt", path, "-"); text != "" {
			return text
		}
		return runExtractor(ctx, "antiword", path)
	case "doc":
		if text := runExtractor(ctx, "antiword", path); text != "" {
			return text
		}
		return runExtractor(ctx, "docx2txt", path, "-")
	case "txt":
		return readTextFile(path)
	default:
		return ""
	}
}

// runExtractor shells out to an external converter, returning its stdout or
// an empty string on any failure.
func runExtractor(ctx context.Context, name string, args ...string) string {
	if _, err := exec.LookPath(name); err != nil {
		slog.Warn("resume: extractor not installed", slog.String("tool", name))
		return ""
	}

	ctx, cancel := context.WithTimeout(ctx, extractTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		slog.Warn("resume: extraction failed", slog.String("tool", name), slog.Any("error", err))
		return ""
	}
	return string(out)
}

// readTextFile reads a plain-text resume leniently: invalid UTF-8 bytes are
// dropped rather than failing the upload.
func readTextFile(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("resume: txt read failed", slog.Any("error", err))
		return ""
	}
	if utf8.Valid(data) {
		return string(data)
	}
	return strings.ToValidUTF8(string(data), "")
}
