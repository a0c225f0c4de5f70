package auth

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	defaultSecretService = "oraclefed"
	apiKeyAccount        = "gemini_api_key"
	dbKeyAccount         = "db_key"
)

var (
	keyringGet    = keyring.Get
	keyringSet    = keyring.Set
	keyringDelete = keyring.Delete
)

// ErrNoAPIKey reports that no Gemini API key is configured anywhere;
// the app then runs the advisor in offline mode.
var ErrNoAPIKey = errors.New("no gemini api key configured")

// LoadAPIKey loads the Gemini API key.
//
// Order of precedence:
// 1) GEMINI_API_KEY environment variable.
// 2) System credential store item referenced by service/account.
func LoadAPIKey() (string, error) {
	if key := strings.TrimSpace(os.Getenv("GEMINI_API_KEY")); key != "" {
		return key, nil
	}

	key, err := loadFromKeyring(apiKeyAccount)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNoAPIKey
		}
		return "", err
	}
	if key == "" {
		return "", ErrNoAPIKey
	}
	return key, nil
}

// SaveAPIKey stores the Gemini API key in the system credential store.
func SaveAPIKey(key string) error {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return errors.New("gemini api key cannot be empty")
	}
	return saveToKeyring(apiKeyAccount, trimmed)
}

// DeleteAPIKey removes the stored Gemini API key.
func DeleteAPIKey() error {
	service := envOrDefault("ORACLEFED_KEYCHAIN_SERVICE", defaultSecretService)
	if err := keyringDelete(service, apiKeyAccount); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("failed to delete keyring item service=%q account=%q: %w", service, apiKeyAccount, err)
	}
	return nil
}

// LoadDBKey loads the local database encryption key.
func LoadDBKey() (string, error) {
	if key := strings.TrimSpace(os.Getenv("ORACLEFED_DB_KEY")); key != "" {
		return key, nil
	}
	return loadFromKeyring(dbKeyAccount)
}

// SaveDBKey stores the local database encryption key.
func SaveDBKey(key string) error {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return errors.New("db key cannot be empty")
	}
	return saveToKeyring(dbKeyAccount, trimmed)
}

func loadFromKeyring(account string) (string, error) {
	service := envOrDefault("ORACLEFED_KEYCHAIN_SERVICE", defaultSecretService)

	secret, err := keyringGet(service, account)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", err
		}
		return "", fmt.Errorf(
			"failed to read keyring item service=%q account=%q: %w",
			service,
			account,
			err,
		)
	}

	return strings.TrimSpace(secret), nil
}

func saveToKeyring(account, secret string) error {
	service := envOrDefault("ORACLEFED_KEYCHAIN_SERVICE", defaultSecretService)

	if err := keyringSet(service, account, secret); err != nil {
		return fmt.Errorf(
			"failed to store keyring item service=%q account=%q: %w",
			service,
			account,
			err,
		)
	}
	return nil
}

func envOrDefault(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}
