package ics

import (
	"os"
	"path/filepath"

	ical "github.com/arran4/golang-ical"

	appLog "calfilter/internal/log"
)

// Serialize renders cal in RFC 5545 wire format (CRLF line endings,
// folded long lines, escaped text values). golang-ical defaults to the
// platform newline, so CRLF is requested explicitly.
func Serialize(cal *ical.Calendar) []byte {
	return []byte(cal.Serialize(ical.WithNewLineWindows))
}

// Write stores data as dir/file and returns the final path.
//
// Implementation details:
//   - Ensures dir exists (0755); an existing dir is fine.
//   - Writes atomically via a temp file in dir + rename, so readers never
//     observe a half-written calendar and a failed run leaves no output.
//   - Final file permissions are 0644.
func Write(dir, file string, data []byte) (string, error) {
	path := filepath.Join(dir, file)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &WriteError{Path: path, Err: err}
	}

	tmp, err := os.CreateTemp(dir, ".calfilter-*.tmp")
	if err != nil {
		return "", &WriteError{Path: path, Err: err}
	}
	tmpName := tmp.Name()

	// No-op once the rename succeeded.
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", &WriteError{Path: path, Err: err}
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return "", &WriteError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return "", &WriteError{Path: path, Err: err}
	}

	if err := os.Chmod(tmpName, 0o644); err != nil {
		return "", &WriteError{Path: path, Err: err}
	}

	if err := os.Rename(tmpName, path); err != nil {
		return "", &WriteError{Path: path, Err: err}
	}

	appLog.Info("calendar written", "path", path, "bytes", len(data))
	return path, nil
}
