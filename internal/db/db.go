package db

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open returns a connected GORM DB for the configured driver. TranslateError
// is enabled so unique-constraint violations surface as gorm.ErrDuplicatedKey
// regardless of driver.
func Open(driver, sqlitePath, mysqlDSN string) (*gorm.DB, error) {
	cfg := &gorm.Config{TranslateError: true}

	switch driver {
	case "mysql":
		db, err := gorm.Open(mysql.Open(mysqlDSN), cfg)
		if err != nil {
			return nil, fmt.Errorf("connect mysql: %w", err)
		}
		return db, nil
	case "sqlite", "":
		db, err := gorm.Open(sqlite.Open(sqlitePath), cfg)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unsupported db driver %q", driver)
	}
}
