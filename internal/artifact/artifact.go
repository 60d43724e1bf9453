// Package artifact writes the dated shopping-list and recipe text files and
// hands them to the OS default viewer. Files are append-only: every
// invocation adds one timestamped section, so a day's runs accumulate in the
// same file.
package artifact

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"
	"unicode/utf8"
)

// Kinds of artifact files produced during a plan run.
const (
	KindShoppingList = "shopping-list"
	KindRecipes      = "recipes"
)

// DatedPath returns the file path for an artifact kind on the given day,
// e.g. ".../shopping-list-2026-08-30.txt".
func DatedPath(dir, kind string, day time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("%s-%s.txt", kind, day.Format("2006-01-02")))
}

// AppendSection appends a timestamped section to the artifact file, creating
// it if needed. The section is a clock-time header, a dashed underline of the
// same width, the body, and a blank trailing line.
func AppendSection(path string, stamp time.Time, body string) error {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open artifact %q: %w", path, err)
	}

	header := stamp.Format("03:04 pm")
	section := fmt.Sprintf("%s\n%s\n%s\n\n", header, strings.Repeat("-", utf8.RuneCountInString(header)), body)
	if _, err := file.WriteString(section); err != nil {
		file.Close()
		return fmt.Errorf("append artifact section: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close artifact: %w", err)
	}
	return nil
}

// OpenInViewer asks the OS to open the file with its default handler. The
// viewer is spawned and not waited on.
func OpenInViewer(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/C", "start", "", path)
	case "darwin":
		cmd = exec.Command("open", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open %q in viewer: %w", path, err)
	}
	return nil
}
