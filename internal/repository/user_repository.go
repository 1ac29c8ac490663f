package repository

import (
    "context"
    "database/sql"
    "strings"

    "github.com/iliyamo/train-station-reservation/internal/model"
    "github.com/iliyamo/train-station-reservation/internal/utils"
)

// UserRepo persists application users.
type UserRepo struct{ DB *sql.DB }

// NewUserRepo returns a UserRepo bound to the given database.
func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// Create hashes the password and inserts a user, returning its ID.
// Duplicate emails surface as ErrEmailExists.
func (r *UserRepo) Create(ctx context.Context, email, password, role string, cost int) (uint64, error) {
    email = strings.ToLower(strings.TrimSpace(email))
    hash, err := utils.HashPassword(password, cost)
    if err != nil {
        return 0, err
    }
    res, err := r.DB.ExecContext(ctx,
        "INSERT INTO users (email, password_hash, role) VALUES (?,?,?)",
        email, hash, role)
    if err != nil {
        if isDuplicateEntry(err) {
            return 0, ErrEmailExists
        }
        return 0, err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return 0, err
    }
    return uint64(id), nil
}

// UpdateCredentials changes a user's email and/or password hash.
// Empty arguments leave the respective column untouched; at least one
// must be set. A duplicate email surfaces as ErrEmailExists.
func (r *UserRepo) UpdateCredentials(ctx context.Context, id uint64, email, passwordHash string) error {
    email = strings.ToLower(strings.TrimSpace(email))
    var sets []string
    var args []interface{}
    if email != "" {
        sets = append(sets, "email=?")
        args = append(args, email)
    }
    if passwordHash != "" {
        sets = append(sets, "password_hash=?")
        args = append(args, passwordHash)
    }
    if len(sets) == 0 {
        return nil
    }
    args = append(args, id)
    _, err := r.DB.ExecContext(ctx,
        "UPDATE users SET "+strings.Join(sets, ", ")+" WHERE id=?", args...)
    if err != nil && isDuplicateEntry(err) {
        return ErrEmailExists
    }
    return err
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
    email = strings.ToLower(strings.TrimSpace(email))
    var u model.User
    err := r.DB.QueryRowContext(ctx,
        "SELECT id,email,password_hash,role,is_active,created_at,updated_at FROM users WHERE email=? LIMIT 1",
        email).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
    return u, err
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
    var u model.User
    err := r.DB.QueryRowContext(ctx,
        "SELECT id,email,password_hash,role,is_active,created_at,updated_at FROM users WHERE id=? LIMIT 1",
        id).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
    return u, err
}
