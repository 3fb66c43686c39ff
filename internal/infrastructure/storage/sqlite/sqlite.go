package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// sqlite3 драйвер для database/sql
	_ "github.com/mattn/go-sqlite3"

	"codekeeper/internal/infrastructure/migration"
)

type Storage struct {
	db   *sql.DB
	path string
}

// New открывает базу и применяет встроенные миграции.
func New(path string, engine migration.MigrationEngine) (*Storage, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	mg := migration.NewMigration(path, engine)
	if err := mg.Up(); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// один писатель: SQLite не любит параллельные транзакции записи
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Storage{db: db, path: path}, nil
}

func (s *Storage) DB() *sql.DB {
	return s.db
}

func (s *Storage) Path() string {
	return s.path
}

func (s *Storage) Close() error {
	return s.db.Close()
}
