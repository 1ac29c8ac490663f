package repository

import (
    "context"
    "database/sql"
    "errors"

    "github.com/iliyamo/train-station-reservation/internal/booking"
    "github.com/iliyamo/train-station-reservation/internal/model"
)

// TrainRepo provides persistence for trains.
type TrainRepo struct {
    db *sql.DB
}

// NewTrainRepo returns a TrainRepo bound to the given database.
func NewTrainRepo(db *sql.DB) *TrainRepo { return &TrainRepo{db: db} }

// TrainFilter narrows List results. Name is a case-insensitive
// substring match; TrainTypeID is an exact match. Zero values mean
// "no filter".
type TrainFilter struct {
    Name        string
    TrainTypeID uint64
}

// Create inserts a train and populates the generated ID. An unknown
// train type id surfaces as ErrNotFound.
func (r *TrainRepo) Create(ctx context.Context, t *model.Train) error {
    const q = `INSERT INTO trains (name, cargo_num, places_in_cargo, train_type_id) VALUES (?, ?, ?, ?)`
    res, err := r.db.ExecContext(ctx, q, t.Name, t.CargoNum, t.PlacesInCargo, t.TrainTypeID)
    if err != nil {
        if isForeignKeyFailure(err) {
            return ErrNotFound
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

const trainSelect = `SELECT t.id, t.name, t.cargo_num, t.places_in_cargo, tt.name, t.image_path
                     FROM trains t
                     JOIN train_types tt ON tt.id = t.train_type_id`

func scanTrainDetail(scan func(dest ...interface{}) error) (model.TrainDetail, error) {
    var d model.TrainDetail
    var image sql.NullString
    err := scan(&d.ID, &d.Name, &d.CargoNum, &d.PlacesInCargo, &d.TrainType, &image)
    if err != nil {
        return d, err
    }
    if image.Valid {
        p := image.String
        d.ImagePath = &p
    }
    d.Capacity = booking.Capacity(d.CargoNum, d.PlacesInCargo)
    return d, nil
}

// List returns trains with their type name resolved, optionally
// filtered by name substring and exact type id.
func (r *TrainRepo) List(ctx context.Context, f TrainFilter) ([]model.TrainDetail, error) {
    query := trainSelect
    args := make([]interface{}, 0, 2)
    where := ""
    if f.Name != "" {
        where = " WHERE t.name LIKE ?"
        args = append(args, "%"+f.Name+"%")
    }
    if f.TrainTypeID != 0 {
        if where == "" {
            where = " WHERE t.train_type_id = ?"
        } else {
            where += " AND t.train_type_id = ?"
        }
        args = append(args, f.TrainTypeID)
    }
    query += where + " ORDER BY t.name"

    rows, err := r.db.QueryContext(ctx, query, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    result := make([]model.TrainDetail, 0)
    for rows.Next() {
        d, err := scanTrainDetail(rows.Scan)
        if err != nil {
            return nil, err
        }
        result = append(result, d)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return result, nil
}

// GetByID returns a single train with its type name resolved, or
// ErrNotFound.
func (r *TrainRepo) GetByID(ctx context.Context, id uint64) (*model.TrainDetail, error) {
    row := r.db.QueryRowContext(ctx, trainSelect+" WHERE t.id = ?", id)
    d, err := scanTrainDetail(row.Scan)
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return nil, ErrNotFound
        }
        return nil, err
    }
    return &d, nil
}

// UpdateImagePath stores the relative path of an uploaded train image.
// Returns ErrNotFound when the train does not exist.
func (r *TrainRepo) UpdateImagePath(ctx context.Context, id uint64, path string) error {
    const q = `UPDATE trains SET image_path = ? WHERE id = ?`
    res, err := r.db.ExecContext(ctx, q, path, id)
    if err != nil {
        return err
    }
    if n, _ := res.RowsAffected(); n == 0 {
        // RowsAffected is also 0 when the same path is written twice;
        // confirm existence before reporting not found.
        var exists int
        if err := r.db.QueryRowContext(ctx, `SELECT 1 FROM trains WHERE id = ?`, id).Scan(&exists); err != nil {
            if errors.Is(err, sql.ErrNoRows) {
                return ErrNotFound
            }
            return err
        }
    }
    return nil
}
