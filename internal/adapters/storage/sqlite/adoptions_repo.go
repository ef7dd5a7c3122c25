package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sqlitedrv "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"pet-adoption/internal/domain/adoptions"
)

// pet_name sale del LEFT JOIN; queda vacío si la mascota no existe.
const requestSelect = `
	SELECT
		r.id, r.user_name, r.email, r.phone, r.message,
		r.pet_id, COALESCE(p.name, ''),
		r.approved, r.rejected,
		r.created_at, r.updated_at
	FROM adoption_requests r
	LEFT JOIN pets p ON p.id = r.pet_id
`

type AdoptionsRepo struct {
	db *sql.DB
}

func NewAdoptionsRepo(db *sql.DB) *AdoptionsRepo {
	return &AdoptionsRepo{db: db}
}

func (r *AdoptionsRepo) Create(ctx context.Context, req adoptions.Request) (adoptions.Request, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO adoption_requests (
			user_name, email, phone, message,
			pet_id, approved, rejected,
			created_at, updated_at
		) VALUES (?,?,?,?,?,?,?,?,?)
	`,
		req.UserName,
		req.Email,
		req.Phone,
		req.Message,
		req.PetID,
		req.Approved,
		req.Rejected,
		req.CreatedAt.UTC(),
		req.UpdatedAt.UTC(),
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return adoptions.Request{}, adoptions.ErrPetNotFound
		}
		return adoptions.Request{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return adoptions.Request{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *AdoptionsRepo) GetByID(ctx context.Context, id int64) (adoptions.Request, error) {
	row := r.db.QueryRowContext(ctx, requestSelect+` WHERE r.id = ?`, id)

	req, err := scanRequest(row)
	if errors.Is(err, sql.ErrNoRows) {
		return adoptions.Request{}, adoptions.ErrNotFound
	}
	return req, err
}

func (r *AdoptionsRepo) List(ctx context.Context) ([]adoptions.Request, error) {
	rows, err := r.db.QueryContext(ctx, requestSelect+` ORDER BY r.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]adoptions.Request, 0)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, rows.Err()
}

func (r *AdoptionsRepo) Approve(ctx context.Context, id int64, at time.Time) (adoptions.Request, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return adoptions.Request{}, err
	}
	defer func() { _ = tx.Rollback() }()

	var petID int64
	err = tx.QueryRowContext(ctx, `SELECT pet_id FROM adoption_requests WHERE id = ?`, id).Scan(&petID)
	if errors.Is(err, sql.ErrNoRows) {
		return adoptions.Request{}, adoptions.ErrNotFound
	}
	if err != nil {
		return adoptions.Request{}, err
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE adoption_requests SET approved = 1, updated_at = ? WHERE id = ?`,
		at.UTC(), id,
	); err != nil {
		return adoptions.Request{}, err
	}

	res, err := tx.ExecContext(ctx, `UPDATE pets SET adopted = 1, updated_at = ? WHERE id = ?`, at.UTC(), petID)
	if err != nil {
		return adoptions.Request{}, err
	}
	if err := expectOneRow(res, adoptions.ErrPetNotFound); err != nil {
		return adoptions.Request{}, err
	}

	if err := tx.Commit(); err != nil {
		return adoptions.Request{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *AdoptionsRepo) Reject(ctx context.Context, id int64, at time.Time) (adoptions.Request, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE adoption_requests SET rejected = 1, approved = 0, updated_at = ? WHERE id = ?`,
		at.UTC(), id,
	)
	if err != nil {
		return adoptions.Request{}, err
	}
	if err := expectOneRow(res, adoptions.ErrNotFound); err != nil {
		return adoptions.Request{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *AdoptionsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM adoption_requests WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return expectOneRow(res, adoptions.ErrNotFound)
}

func scanRequest(s scanner) (adoptions.Request, error) {
	var req adoptions.Request
	err := s.Scan(
		&req.ID,
		&req.UserName,
		&req.Email,
		&req.Phone,
		&req.Message,
		&req.PetID,
		&req.PetName,
		&req.Approved,
		&req.Rejected,
		&req.CreatedAt,
		&req.UpdatedAt,
	)
	return req, err
}

func isForeignKeyViolation(err error) bool {
	var se *sqlitedrv.Error
	if !errors.As(err, &se) {
		return false
	}
	return se.Code() == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY
}
