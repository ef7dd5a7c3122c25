package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"pet-adoption/internal/domain/adoptions"
)

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
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO adoption_requests (
			user_name, email, phone, message,
			pet_id, approved, rejected,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING id
	`,
		req.UserName,
		req.Email,
		req.Phone,
		req.Message,
		req.PetID,
		req.Approved,
		req.Rejected,
		req.CreatedAt,
		req.UpdatedAt,
	).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return adoptions.Request{}, adoptions.ErrPetNotFound
		}
		return adoptions.Request{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *AdoptionsRepo) GetByID(ctx context.Context, id int64) (adoptions.Request, error) {
	row := r.db.QueryRowContext(ctx, requestSelect+` WHERE r.id = $1`, id)

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
	err = tx.QueryRowContext(ctx, `
		UPDATE adoption_requests
		SET approved = TRUE, updated_at = $2
		WHERE id = $1
		RETURNING pet_id
	`, id, at).Scan(&petID)
	if errors.Is(err, sql.ErrNoRows) {
		return adoptions.Request{}, adoptions.ErrNotFound
	}
	if err != nil {
		return adoptions.Request{}, err
	}

	res, err := tx.ExecContext(ctx, `UPDATE pets SET adopted = TRUE, updated_at = $2 WHERE id = $1`, petID, at)
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
	res, err := r.db.ExecContext(ctx, `
		UPDATE adoption_requests
		SET rejected = TRUE, approved = FALSE, updated_at = $2
		WHERE id = $1
	`, id, at)
	if err != nil {
		return adoptions.Request{}, err
	}
	if err := expectOneRow(res, adoptions.ErrNotFound); err != nil {
		return adoptions.Request{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *AdoptionsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM adoption_requests WHERE id = $1`, id)
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
