package test

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

// TmpFile returns the path of a new SQLite database file in a directory
// that is removed when the test finishes.
func TmpFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "gofinances-"+uuid.NewString()+".db")
}
