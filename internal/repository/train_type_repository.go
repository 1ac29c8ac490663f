package repository

import (
    "context"
    "database/sql"

    "github.com/iliyamo/train-station-reservation/internal/model"
)

// TrainTypeRepo provides persistence for train type tags.
type TrainTypeRepo struct {
    db *sql.DB
}

// NewTrainTypeRepo returns a TrainTypeRepo bound to the given database.
func NewTrainTypeRepo(db *sql.DB) *TrainTypeRepo { return &TrainTypeRepo{db: db} }

// Create inserts a train type. Names are unique; a duplicate surfaces
// as ErrConflict.
func (r *TrainTypeRepo) Create(ctx context.Context, t *model.TrainType) error {
    const q = `INSERT INTO train_types (name) VALUES (?)`
    res, err := r.db.ExecContext(ctx, q, t.Name)
    if err != nil {
        if isDuplicateEntry(err) {
            return ErrConflict
        }
        return err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    t.ID = uint64(id)
    return nil
}

// List returns all train types ordered by name.
func (r *TrainTypeRepo) List(ctx context.Context) ([]model.TrainType, error) {
    const q = `SELECT id, name FROM train_types ORDER BY name`
    rows, err := r.db.QueryContext(ctx, q)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    result := make([]model.TrainType, 0)
    for rows.Next() {
        var t model.TrainType
        if err := rows.Scan(&t.ID, &t.Name); err != nil {
            return nil, err
        }
        result = append(result, t)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return result, nil
}
