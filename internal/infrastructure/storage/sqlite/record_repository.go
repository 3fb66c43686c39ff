package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"

	"codekeeper/internal/domain/barcode"
)

type RecordRepository struct {
	db  *sql.DB
	log *slog.Logger
}

func NewRecordRepository(storage *Storage, log *slog.Logger) *RecordRepository {
	return &RecordRepository{
		db:  storage.DB(),
		log: log.With("component", "record_repository"),
	}
}

func (r *RecordRepository) Create(ctx context.Context, rec *barcode.Record) error {
	const query = `
		INSERT INTO barcodes (id, name, payload, symbology_id, checksum, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	var symbologyID sql.NullString
	if rec.SymbologyID != "" {
		symbologyID = sql.NullString{String: rec.SymbologyID, Valid: true}
	}

	_, err := r.db.ExecContext(ctx, query,
		rec.ID, rec.Name, rec.Payload, symbologyID, rec.Checksum, rec.CreatedAt)
	if err != nil {
		r.log.Error("failed to insert barcode", "id", rec.ID, "error", err)
		return fmt.Errorf("insert barcode: %w", err)
	}

	return nil
}

func (r *RecordRepository) List(ctx context.Context) ([]barcode.Record, error) {
	const query = `
		SELECT id, name, payload, symbology_id, checksum, created_at
		FROM barcodes
		ORDER BY payload ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.log.Error("failed to list barcodes", "error", err)
		return nil, fmt.Errorf("list barcodes: %w", err)
	}
	defer rows.Close()

	return r.scanRecords(rows)
}

func (r *RecordRepository) Get(ctx context.Context, id barcode.RecordID) (*barcode.Record, error) {
	const query = `
		SELECT id, name, payload, symbology_id, checksum, created_at
		FROM barcodes
		WHERE id = ?`

	rec, err := r.scanRecord(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, barcode.ErrNotFound
		}
		r.log.Error("failed to get barcode", "id", id, "error", err)
		return nil, fmt.Errorf("get barcode: %w", err)
	}

	return rec, nil
}

func (r *RecordRepository) Delete(ctx context.Context, ids []barcode.RecordID) (removed int, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx, `DELETE FROM barcodes WHERE id = ?`)
	if err != nil {
		return 0, fmt.Errorf("prepare delete: %w", err)
	}
	defer stmt.Close()

	for _, id := range ids {
		res, err := stmt.ExecContext(ctx, id)
		if err != nil {
			return 0, fmt.Errorf("delete barcode %s: %w", id, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("rows affected: %w", err)
		}
		removed += int(n)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit delete: %w", err)
	}

	return removed, nil
}

func (r *RecordRepository) FindByChecksum(ctx context.Context, checksum string) ([]barcode.Record, error) {
	const query = `
		SELECT id, name, payload, symbology_id, checksum, created_at
		FROM barcodes
		WHERE checksum = ?
		ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, checksum)
	if err != nil {
		return nil, fmt.Errorf("find by checksum: %w", err)
	}
	defer rows.Close()

	return r.scanRecords(rows)
}

// Вспомогательные методы
func (r *RecordRepository) scanRecords(rows *sql.Rows) ([]barcode.Record, error) {
	var records []barcode.Record

	for rows.Next() {
		rec, err := r.scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan barcode: %w", err)
		}
		records = append(records, *rec)
	}

	return records, rows.Err()
}

func (r *RecordRepository) scanRecord(row interface {
	Scan(dest ...interface{}) error
}) (*barcode.Record, error) {
	var rec barcode.Record
	var symbologyID sql.NullString

	err := row.Scan(&rec.ID, &rec.Name, &rec.Payload, &symbologyID, &rec.Checksum, &rec.CreatedAt)
	if err != nil {
		return nil, err
	}

	rec.SymbologyID = symbologyID.String

	return &rec, nil
}
