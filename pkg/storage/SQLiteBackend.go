package storage

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"
	"time"

	_ "github.com/glebarez/sqlite"
	"github.com/rfberaldo/sqlz"
	"github.com/rfberaldo/sqlz/binds"
)

var (
	//go:embed sql-migrations
	sqlMigrationsFs embed.FS

	registerBinds sync.Once
)

type slotRow struct {
	Value string `db:"value"`
}

/*
SQLiteBackend stores slots as rows in the gallery_slots table.
*/
type SQLiteBackend struct {
	db *sqlz.DB
}

/*
OpenSQLite connects to the database at dsn and applies the embedded
migrations.
*/
func OpenSQLite(dsn string) (SQLiteBackend, error) {
	var (
		err error
		db  *sqlz.DB
	)

	registerBinds.Do(func() {
		binds.Register("sqlite", binds.BindByDriver("sqlite3"))
	})

	if db, err = sqlz.Connect("sqlite", dsn); err != nil {
		return SQLiteBackend{}, fmt.Errorf("error connecting to sqlite database: %w", err)
	}

	result := SQLiteBackend{db: db}

	if err = result.migrate(); err != nil {
		return SQLiteBackend{}, err
	}

	return result, nil
}

func (b SQLiteBackend) Get(ctx context.Context, slot string) ([]byte, error) {
	var (
		err error
		row slotRow
	)

	sql := `
SELECT
   s.value
FROM gallery_slots AS s
WHERE 1=1
   AND s.name=?
   `

	ctx, cancel := context.WithTimeout(ctx, time.Second*5)
	defer cancel()

	if err = b.db.QueryRow(ctx, &row, sql, slot); err != nil {
		if sqlz.IsNotFound(err) {
			return nil, ErrSlotNotFound
		}

		return nil, fmt.Errorf("error querying for slot '%s': %w", slot, err)
	}

	return []byte(row.Value), nil
}

func (b SQLiteBackend) Put(ctx context.Context, slot string, data []byte) error {
	sql := `
INSERT INTO gallery_slots (
   name,
   value
) VALUES (?, ?)
ON CONFLICT(name) DO UPDATE SET
   value=excluded.value,
   updated_at=CURRENT_TIMESTAMP
`

	ctx, cancel := context.WithTimeout(ctx, time.Second*5)
	defer cancel()

	if _, err := b.db.Exec(ctx, sql, slot, string(data)); err != nil {
		return fmt.Errorf("error saving slot '%s': %w", slot, err)
	}

	return nil
}

func (b SQLiteBackend) migrate() error {
	var (
		err    error
		dirs   []fs.DirEntry
		script []byte
	)

	if dirs, err = sqlMigrationsFs.ReadDir("sql-migrations"); err != nil {
		return fmt.Errorf("error reading migrations: %w", err)
	}

	for _, d := range dirs {
		if d.IsDir() || !strings.HasPrefix(d.Name(), "commit") {
			continue
		}

		if script, err = fs.ReadFile(sqlMigrationsFs, path.Join("sql-migrations", d.Name())); err != nil {
			return fmt.Errorf("error reading migration '%s': %w", d.Name(), err)
		}

		if err = b.runSqlScript(script); err != nil && !isIgnorableError(err) {
			return fmt.Errorf("error running migration '%s': %w", d.Name(), err)
		}
	}

	return nil
}

func (b SQLiteBackend) runSqlScript(script []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()

	_, err := b.db.Exec(ctx, string(script))
	return err
}

func isIgnorableError(err error) bool {
	return strings.Contains(err.Error(), "duplicate column")
}
