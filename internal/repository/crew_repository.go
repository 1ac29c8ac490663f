package repository

import (
    "context"
    "database/sql"

    "github.com/iliyamo/train-station-reservation/internal/model"
)

// CrewRepo provides persistence for crew members.
type CrewRepo struct {
    db *sql.DB
}

// NewCrewRepo returns a CrewRepo bound to the given database.
func NewCrewRepo(db *sql.DB) *CrewRepo { return &CrewRepo{db: db} }

// Create inserts a crew member and populates the generated ID.
func (r *CrewRepo) Create(ctx context.Context, c *model.Crew) error {
    const q = `INSERT INTO crews (first_name, last_name) VALUES (?, ?)`
    res, err := r.db.ExecContext(ctx, q, c.FirstName, c.LastName)
    if err != nil {
        return err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    c.ID = uint64(id)
    return nil
}

// List returns all crew members ordered by last then first name.
func (r *CrewRepo) List(ctx context.Context) ([]model.Crew, error) {
    const q = `SELECT id, first_name, last_name FROM crews ORDER BY last_name, first_name`
    rows, err := r.db.QueryContext(ctx, q)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    result := make([]model.Crew, 0)
    for rows.Next() {
        var c model.Crew
        if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName); err != nil {
            return nil, err
        }
        result = append(result, c)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return result, nil
}

// ExistAll reports whether every given crew id refers to a stored crew
// member. It is used before linking crew to a journey so that a bad id
// is reported as a 400 rather than a foreign key failure. Repeated ids
// in the input count once; COUNT matches distinct rows only.
func (r *CrewRepo) ExistAll(ctx context.Context, ids []uint64) (bool, error) {
    if len(ids) == 0 {
        return true, nil
    }
    seen := make(map[uint64]struct{}, len(ids))
    args := make([]interface{}, 0, len(ids))
    query := `SELECT COUNT(*) FROM crews WHERE id IN (`
    for _, id := range ids {
        if _, dup := seen[id]; dup {
            continue
        }
        seen[id] = struct{}{}
        if len(args) > 0 {
            query += ","
        }
        query += "?"
        args = append(args, id)
    }
    query += ")"
    var n int
    if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
        return false, err
    }
    return n == len(args), nil
}
