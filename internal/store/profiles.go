package store

import (
	"context"

	"github.com/google/uuid"
)

const profileColumns = `id, email, hashed_password, role, order_mode, created_at`

type CreateProfileParams struct {
	Email          string
	HashedPassword string
	Role           string
}

const createProfile = `INSERT INTO profiles (email, hashed_password, role)
VALUES ($1, $2, $3)
RETURNING ` + profileColumns

func (q *Queries) CreateProfile(ctx context.Context, arg CreateProfileParams) (Profile, error) {
	return scanProfile(q.db.QueryRow(ctx, createProfile, arg.Email, arg.HashedPassword, arg.Role))
}

const getProfileByEmail = `SELECT ` + profileColumns + ` FROM profiles WHERE email = $1`

func (q *Queries) GetProfileByEmail(ctx context.Context, email string) (Profile, error) {
	return scanProfile(q.db.QueryRow(ctx, getProfileByEmail, email))
}

const getProfileByID = `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`

func (q *Queries) GetProfileByID(ctx context.Context, id uuid.UUID) (Profile, error) {
	return scanProfile(q.db.QueryRow(ctx, getProfileByID, id))
}

const listProfiles = `SELECT ` + profileColumns + ` FROM profiles ORDER BY created_at DESC`

func (q *Queries) ListProfiles(ctx context.Context) ([]Profile, error) {
	rows, err := q.db.Query(ctx, listProfiles)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

type UpdateOrderModeParams struct {
	ID        uuid.UUID
	OrderMode string
}

const updateOrderMode = `UPDATE profiles SET order_mode = $2 WHERE id = $1
RETURNING ` + profileColumns

func (q *Queries) UpdateOrderMode(ctx context.Context, arg UpdateOrderModeParams) (Profile, error) {
	return scanProfile(q.db.QueryRow(ctx, updateOrderMode, arg.ID, arg.OrderMode))
}

type SetProfileRoleParams struct {
	Email string
	Role  string
}

// SetProfileRole is the direct administrative promotion path used by the
// seed command. There is no in-app promotion flow.
const setProfileRole = `UPDATE profiles SET role = $2 WHERE email = $1
RETURNING ` + profileColumns

func (q *Queries) SetProfileRole(ctx context.Context, arg SetProfileRoleParams) (Profile, error) {
	return scanProfile(q.db.QueryRow(ctx, setProfileRole, arg.Email, arg.Role))
}

func scanProfile(row interface{ Scan(dest ...any) error }) (Profile, error) {
	var p Profile
	err := row.Scan(&p.ID, &p.Email, &p.HashedPassword, &p.Role, &p.OrderMode, &p.CreatedAt)
	return p, err
}
