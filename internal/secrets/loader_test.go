package secrets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadFromFileTakesPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key")
	if err := os.WriteFile(path, []byte("  file-secret \n"), 0o600); err != nil {
		t.Fatalf("writing the secret file: %s", err)
	}

	secret, err := Load(Source{Name: "api key", Value: "inline-secret", File: path})
	if err != nil {
		t.Fatalf("load failed: %s", err)
	}
	if secret != "file-secret" {
		t.Fatalf("expected the trimmed file secret, got %q", secret)
	}
}

func TestLoadInlineValue(t *testing.T) {
	secret, err := Load(Source{Name: "api key", Value: " inline "})
	if err != nil {
		t.Fatalf("load failed: %s", err)
	}
	if secret != "inline" {
		t.Fatalf("expected the trimmed inline secret, got %q", secret)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(Source{Name: "api key"}); err == nil {
		t.Fatalf("expected an error without any source")
	}

	if _, err := Load(Source{Name: "api key", File: "/does/not/exist"}); err == nil {
		t.Fatalf("expected an error for a missing file")
	}

	empty := filepath.Join(t.TempDir(), "empty")
	if err := os.WriteFile(empty, []byte("  \n"), 0o600); err != nil {
		t.Fatalf("writing the empty file: %s", err)
	}
	_, err := Load(Source{Name: "api key", File: empty})
	if err == nil || !strings.Contains(err.Error(), "empty") {
		t.Fatalf("expected an empty-file error, got %v", err)
	}
}
