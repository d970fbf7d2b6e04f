package main

import (
	"strings"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ParseDatabaseDriver resolves the gorm driver for a database URL. mysql:// URLs use
// the MySQL driver; anything else is treated as a sqlite file path, which is what local
// development and the test suite use. Returns nil for an empty URL.
func ParseDatabaseDriver(dbURL string) gorm.Dialector {
	if dbURL == "" {
		return nil
	}
	if strings.HasPrefix(dbURL, "mysql://") {
		return mysql.Open(strings.TrimPrefix(dbURL, "mysql://"))
	}
	return sqlite.Open(dbURL)
}
