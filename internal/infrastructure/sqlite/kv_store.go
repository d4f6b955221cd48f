// Package sqlite almacenamiento local clave-valor de la consola (equivalente al
// almacenamiento persistente del navegador). Driver puro Go, sin cgo.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/asesor-cotizaciones/internal/application/ports"

	_ "modernc.org/sqlite"
)

var _ ports.KeyValueStore = (*KVStore)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS kv (
    key        TEXT PRIMARY KEY,
    value      TEXT NOT NULL,
    updated_at TIMESTAMP NOT NULL
);`

// KVStore tabla kv sobre un archivo SQLite.
type KVStore struct {
	db *sql.DB
}

// Open abre (o crea) el archivo y asegura el esquema. Seguro de llamar varias veces.
// path ":memory:" sirve para tests.
func Open(ctx context.Context, path string) (*KVStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: abrir %s: %w", path, err)
	}
	// Una sola conexión: la base en memoria vive por conexión y las escrituras son mínimas.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: ping: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: crear esquema: %w", err)
	}
	return &KVStore{db: db}, nil
}

// Get devuelve el valor de key; ok=false si no existe.
func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("sqlite: leer %s: %w", key, err)
	}
	return value, true, nil
}

// Set inserta o sobrescribe key.
func (s *KVStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("sqlite: guardar %s: %w", key, err)
	}
	return nil
}

// Delete borra key; borrar una clave inexistente no es error.
func (s *KVStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("sqlite: borrar %s: %w", key, err)
	}
	return nil
}

// Close cierra la base.
func (s *KVStore) Close() error {
	return s.db.Close()
}
