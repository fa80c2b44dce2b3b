package logfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sporadisk/worktock/logging"
)

// ReadLog returns the content of the log at path. A log that does not exist
// yet reads as empty.
func ReadLog(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("os.ReadFile: %w", err)
	}
	return string(b), nil
}

// Writer appends records to a log. Existing content is never rewritten.
type Writer struct {
	Path string
}

func NewWriter(path string) *Writer {
	return &Writer{Path: path}
}

// Append writes each record on its own line, creating the log and its
// directory if needed.
func (w *Writer) Append(records ...string) error {
	if len(records) == 0 {
		return nil
	}

	err := os.MkdirAll(filepath.Dir(w.Path), 0o755)
	if err != nil {
		return fmt.Errorf("os.MkdirAll: %w", err)
	}

	f, err := os.OpenFile(w.Path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("os.OpenFile: %w", err)
	}
	defer f.Close()

	var sb strings.Builder
	missingNewline, err := endsWithoutNewline(f)
	if err != nil {
		return err
	}
	if missingNewline {
		sb.WriteString("\n")
	}
	for _, r := range records {
		sb.WriteString(r + "\n")
	}

	_, err = f.WriteString(sb.String())
	if err != nil {
		return fmt.Errorf("f.WriteString: %w", err)
	}

	logging.Log.Debugf("appended %q to %s", records, w.Path)
	return nil
}

func endsWithoutNewline(f *os.File) (bool, error) {
	info, err := f.Stat()
	if err != nil {
		return false, fmt.Errorf("f.Stat: %w", err)
	}
	if info.Size() == 0 {
		return false, nil
	}

	last := make([]byte, 1)
	_, err = f.ReadAt(last, info.Size()-1)
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("f.ReadAt: %w", err)
	}
	return last[0] != '\n', nil
}
