//go:build !sqlcipher
// +build !sqlcipher

package profile

import (
	"database/sql"
	"fmt"
)

func openSecureSQLite(path string, key string) (*sql.DB, error) {
	return nil, fmt.Errorf(
		"profile store requires a sqlcipher-enabled build; rebuild with '-tags sqlcipher'",
	)
}

func secureSQLiteSupported() bool {
	return false
}
