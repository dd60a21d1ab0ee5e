package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	kerrors "github.com/PolarWolf314/passvault/internal/errors"
)

const timeLayout = "2006-01-02 15:04:05"

// Record is a stored credential. Ciphertext is opaque to the store.
type Record struct {
	ID         int64
	Service    string
	Login      string
	Ciphertext []byte
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// RecordRepo is the SQLite implementation of the credential record store.
type RecordRepo struct {
	db *DB
}

func NewRecordRepo(db *DB) *RecordRepo {
	return &RecordRepo{db: db}
}

const selectColumns = `SELECT id, service, login, password, created_at, updated_at FROM passwords`

// GetAll returns every record ordered by id.
func (r *RecordRepo) GetAll(ctx context.Context) ([]Record, error) {
	rows, err := r.db.conn.QueryContext(ctx, selectColumns+` ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}

	return records, nil
}

// Get returns the record with the given id, or ErrRecordNotFound.
func (r *RecordRepo) Get(ctx context.Context, id int64) (Record, error) {
	row := r.db.conn.QueryRowContext(ctx, selectColumns+` WHERE id = ?`, id)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("record %d: %w", id, kerrors.ErrRecordNotFound)
	}
	if err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Insert stores a new record and returns its id.
func (r *RecordRepo) Insert(ctx context.Context, service, login string, ciphertext []byte) (int64, error) {
	const query = `INSERT INTO passwords (service, login, password) VALUES (?, ?, ?)`
	res, err := r.db.conn.ExecContext(ctx, query, service, login, ciphertext)
	if err != nil {
		return 0, fmt.Errorf("insert record for %q: %w", service, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read inserted record id: %w", err)
	}
	return id, nil
}

// Update replaces the fields of an existing record.
func (r *RecordRepo) Update(ctx context.Context, id int64, service, login string, ciphertext []byte) error {
	const query = `UPDATE passwords
		SET service = ?, login = ?, password = ?, updated_at = strftime('%Y-%m-%d %H:%M:%S', 'now')
		WHERE id = ?`
	res, err := r.db.conn.ExecContext(ctx, query, service, login, ciphertext, id)
	if err != nil {
		return fmt.Errorf("update record %d: %w", id, err)
	}
	return expectOneRow(res, id)
}

// Delete removes the record with the given id.
func (r *RecordRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.conn.ExecContext(ctx, `DELETE FROM passwords WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete record %d: %w", id, err)
	}
	return expectOneRow(res, id)
}

// Logins returns the distinct logins that do not look like e-mail addresses.
func (r *RecordRepo) Logins(ctx context.Context) ([]string, error) {
	const query = `SELECT DISTINCT login FROM passwords WHERE login NOT LIKE '%@%.%' ORDER BY login`
	rows, err := r.db.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list logins: %w", err)
	}
	defer rows.Close()

	var logins []string
	for rows.Next() {
		var login string
		if err := rows.Scan(&login); err != nil {
			return nil, fmt.Errorf("scan login: %w", err)
		}
		logins = append(logins, login)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate logins: %w", err)
	}
	return logins, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (Record, error) {
	var rec Record
	var createdAt, updatedAt string
	if err := s.Scan(&rec.ID, &rec.Service, &rec.Login, &rec.Ciphertext, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, err
		}
		return Record{}, fmt.Errorf("scan record: %w", err)
	}

	var err error
	if rec.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return Record{}, fmt.Errorf("parse created_at for record %d: %w", rec.ID, err)
	}
	if rec.UpdatedAt, err = time.Parse(timeLayout, updatedAt); err != nil {
		return Record{}, fmt.Errorf("parse updated_at for record %d: %w", rec.ID, err)
	}
	return rec, nil
}

func expectOneRow(res sql.Result, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for record %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("record %d: %w", id, kerrors.ErrRecordNotFound)
	}
	return nil
}
