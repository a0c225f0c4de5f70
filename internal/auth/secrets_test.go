package auth

import (
	"errors"
	"strings"
	"testing"
)

func TestLoadAPIKeyUsesEnvVarFirst(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "  env-key  ")

	origGet := keyringGet
	defer func() { keyringGet = origGet }()

	keyringCalled := false
	keyringGet = func(service, user string) (string, error) {
		keyringCalled = true
		return "keyring-key", nil
	}

	got, err := LoadAPIKey()
	if err != nil {
		t.Fatalf("LoadAPIKey() unexpected error: %v", err)
	}
	if got != "env-key" {
		t.Fatalf("LoadAPIKey() = %q, want %q", got, "env-key")
	}
	if keyringCalled {
		t.Fatal("LoadAPIKey() called keyringGet even though GEMINI_API_KEY was set")
	}
}

func TestLoadAPIKeyFallsBackToKeyring(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("ORACLEFED_KEYCHAIN_SERVICE", "svc")

	origGet := keyringGet
	defer func() { keyringGet = origGet }()

	var gotService, gotUser string
	keyringGet = func(service, user string) (string, error) {
		gotService = service
		gotUser = user
		return "  keyring-key  ", nil
	}

	got, err := LoadAPIKey()
	if err != nil {
		t.Fatalf("LoadAPIKey() unexpected error: %v", err)
	}
	if got != "keyring-key" {
		t.Fatalf("LoadAPIKey() = %q, want %q", got, "keyring-key")
	}
	if gotService != "svc" || gotUser != apiKeyAccount {
		t.Fatalf("keyringGet called with (%q, %q), want (%q, %q)", gotService, gotUser, "svc", apiKeyAccount)
	}
}

func TestLoadAPIKeyReturnsErrNoAPIKeyWhenEmpty(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	origGet := keyringGet
	defer func() { keyringGet = origGet }()

	keyringGet = func(service, user string) (string, error) {
		return "   ", nil
	}

	_, err := LoadAPIKey()
	if !errors.Is(err, ErrNoAPIKey) {
		t.Fatalf("LoadAPIKey() error = %v, want ErrNoAPIKey", err)
	}
}

func TestLoadAPIKeyReturnsErrorWhenKeyringFails(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	origGet := keyringGet
	defer func() { keyringGet = origGet }()

	keyringGet = func(service, user string) (string, error) {
		return "", errors.New("boom")
	}

	_, err := LoadAPIKey()
	if err == nil {
		t.Fatal("LoadAPIKey() error = nil, want non-nil")
	}
	if !strings.Contains(err.Error(), "failed to read keyring item") {
		t.Fatalf("LoadAPIKey() error = %q, expected keyring read context", err.Error())
	}
}

func TestSaveAPIKeySavesTrimmedKey(t *testing.T) {
	t.Setenv("ORACLEFED_KEYCHAIN_SERVICE", "svc")

	origSet := keyringSet
	defer func() { keyringSet = origSet }()

	var gotService, gotUser, gotSecret string
	keyringSet = func(service, user, secret string) error {
		gotService = service
		gotUser = user
		gotSecret = secret
		return nil
	}

	if err := SaveAPIKey("  my-key  "); err != nil {
		t.Fatalf("SaveAPIKey() unexpected error: %v", err)
	}
	if gotService != "svc" || gotUser != apiKeyAccount || gotSecret != "my-key" {
		t.Fatalf(
			"SaveAPIKey() called keyringSet with (%q, %q, %q), want (%q, %q, %q)",
			gotService, gotUser, gotSecret, "svc", apiKeyAccount, "my-key",
		)
	}
}

func TestSaveAPIKeyRejectsEmptyKey(t *testing.T) {
	origSet := keyringSet
	defer func() { keyringSet = origSet }()

	keyringSet = func(service, user, secret string) error {
		t.Fatal("keyringSet called for empty key")
		return nil
	}

	if err := SaveAPIKey("   "); err == nil {
		t.Fatal("SaveAPIKey() error = nil, want non-nil")
	}
}

func TestLoadDBKeyUsesEnvVarFirst(t *testing.T) {
	t.Setenv("ORACLEFED_DB_KEY", "env-db-key")

	origGet := keyringGet
	defer func() { keyringGet = origGet }()

	keyringGet = func(service, user string) (string, error) {
		t.Fatal("keyringGet called even though ORACLEFED_DB_KEY was set")
		return "", nil
	}

	got, err := LoadDBKey()
	if err != nil {
		t.Fatalf("LoadDBKey() unexpected error: %v", err)
	}
	if got != "env-db-key" {
		t.Fatalf("LoadDBKey() = %q, want %q", got, "env-db-key")
	}
}

func TestSaveDBKeyWritesToKeyring(t *testing.T) {
	t.Setenv("ORACLEFED_KEYCHAIN_SERVICE", "svc")

	origSet := keyringSet
	defer func() { keyringSet = origSet }()

	var gotUser, gotSecret string
	keyringSet = func(service, user, secret string) error {
		gotUser = user
		gotSecret = secret
		return nil
	}

	if err := SaveDBKey("db-secret"); err != nil {
		t.Fatalf("SaveDBKey() unexpected error: %v", err)
	}
	if gotUser != dbKeyAccount || gotSecret != "db-secret" {
		t.Fatalf("keyringSet called with (%q, %q), want (%q, %q)", gotUser, gotSecret, dbKeyAccount, "db-secret")
	}
}
