package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"pet-adoption/internal/domain/pets"
)

const petColumns = `id, name, type, breed, gender, age, description, image_url, adopted, created_at, updated_at`

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO pets (
			name, type, breed, gender, age,
			description, image_url, adopted,
			created_at, updated_at
		) VALUES (?,?,?,?,?,?,?,?,?,?)
	`,
		p.Name,
		p.Type,
		p.Breed,
		p.Gender,
		p.Age,
		p.Description,
		p.ImageURL,
		p.Adopted,
		p.CreatedAt.UTC(),
		p.UpdatedAt.UTC(),
	)
	if err != nil {
		return pets.Pet{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return pets.Pet{}, err
	}
	p.ID = id
	return p, nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+petColumns+` FROM pets WHERE id = ?`, id)

	p, err := scanPet(row)
	if errors.Is(err, sql.ErrNoRows) {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, err
}

func (r *PetsRepo) List(ctx context.Context, f pets.Filter) ([]pets.Pet, error) {
	var (
		where []string
		args  []any
	)
	if f.Type != "" {
		where = append(where, "type = ?")
		args = append(args, f.Type)
	}
	if f.Adopted != nil {
		where = append(where, "adopted = ?")
		args = append(args, *f.Adopted)
	}

	q := `SELECT ` + petColumns + ` FROM pets`
	if len(where) > 0 {
		q += ` WHERE ` + strings.Join(where, " AND ")
	}
	q += ` ORDER BY id`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PetsRepo) MarkAdopted(ctx context.Context, id int64, at time.Time) error {
	res, err := r.db.ExecContext(ctx, `UPDATE pets SET adopted = 1, updated_at = ? WHERE id = ?`, at.UTC(), id)
	if err != nil {
		return err
	}
	return expectOneRow(res, pets.ErrNotFound)
}

// Delete depende de ON DELETE CASCADE para las solicitudes.
func (r *PetsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pets WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return expectOneRow(res, pets.ErrNotFound)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPet(s scanner) (pets.Pet, error) {
	var p pets.Pet
	err := s.Scan(
		&p.ID,
		&p.Name,
		&p.Type,
		&p.Breed,
		&p.Gender,
		&p.Age,
		&p.Description,
		&p.ImageURL,
		&p.Adopted,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

func expectOneRow(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}
