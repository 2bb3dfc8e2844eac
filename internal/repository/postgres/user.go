package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dtroode/bankcards-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

const userSelect = `SELECT u.id, u.username, u.password_hash, u.created_at,
			  COALESCE(string_agg(r.role, ',' ORDER BY r.role), '')
			  FROM users u LEFT JOIN user_roles r ON r.user_id = u.id`

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func scanUser(row rowScanner) (model.User, error) {
	var (
		user  model.User
		roles string
	)
	if err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt, &roles); err != nil {
		return model.User{}, err
	}
	user.Roles = splitRoles(roles)
	return user, nil
}

func splitRoles(s string) []model.Role {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	roles := make([]model.Role, 0, len(parts))
	for _, p := range parts {
		roles = append(roles, model.Role(p))
	}
	return roles
}

func joinRoles(roles []model.Role) string {
	parts := make([]string, 0, len(roles))
	for _, r := range roles {
		parts = append(parts, string(r))
	}
	return strings.Join(parts, ",")
}

// Create inserts the user together with its roles in one statement.
func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	query := `WITH u AS (
				  INSERT INTO users (id, username, password_hash, created_at)
				  VALUES ($1, $2, $3, $4)
				  RETURNING id, created_at
			  ), r AS (
				  INSERT INTO user_roles (user_id, role)
				  SELECT u.id, unnest(string_to_array(NULLIF($5::text, ''), ',')) FROM u
			  )
			  SELECT created_at FROM u`

	err := r.db.QueryRowContext(ctx, query,
		user.ID, user.Username, user.PasswordHash, user.CreatedAt, joinRoles(user.Roles),
	).Scan(&user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return model.User{}, model.ErrAlreadyExists
		}
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	query := userSelect + ` WHERE u.id = $1 GROUP BY u.id`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (model.User, error) {
	query := userSelect + ` WHERE u.username = $1 GROUP BY u.id`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, username))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	return user, nil
}

func (r *UserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return exists, nil
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`, username).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check username existence: %w", err)
	}
	return exists, nil
}

func (r *UserRepository) List(ctx context.Context, page model.Page) ([]model.User, error) {
	dir := direction(page.Ascending)
	query := userSelect + ` GROUP BY u.id ORDER BY u.created_at ` + dir + `, u.id ` + dir + ` LIMIT $1 OFFSET $2`

	rows, err := r.db.QueryContext(ctx, query, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := make([]model.User, 0, page.Limit)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}

func (r *UserRepository) UpdateUsername(ctx context.Context, id uuid.UUID, username string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE users SET username = $2 WHERE id = $1`, id, username)
	if err != nil && isUniqueViolation(err) {
		return model.ErrAlreadyExists
	}
	return checkAffected(res, err, "update username")
}

func (r *UserRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE users SET password_hash = $2 WHERE id = $1`, id, hash)
	return checkAffected(res, err, "update password hash")
}

// SetRoles replaces the user's role set. Callers run it inside a transaction.
func (r *UserRepository) SetRoles(ctx context.Context, id uuid.UUID, roles []model.Role) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM user_roles WHERE user_id = $1`, id); err != nil {
		return fmt.Errorf("failed to clear user roles: %w", err)
	}
	if len(roles) == 0 {
		return nil
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO user_roles (user_id, role) SELECT $1::uuid, unnest(string_to_array($2::text, ','))`,
		id, joinRoles(roles),
	)
	if err != nil {
		return fmt.Errorf("failed to set user roles: %w", err)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	return checkAffected(res, err, "delete user")
}
