package repository

import (
    "context"
    "database/sql"

    "github.com/iliyamo/train-station-reservation/internal/model"
)

// StationRepo provides persistence for stations. Stations are
// read-mostly reference data; besides insertion only listing is
// exposed.
type StationRepo struct {
    db *sql.DB
}

// NewStationRepo returns a StationRepo bound to the given database.
func NewStationRepo(db *sql.DB) *StationRepo { return &StationRepo{db: db} }

// Create inserts a station. Station names are unique; a duplicate
// surfaces as ErrConflict.
func (r *StationRepo) Create(ctx context.Context, s *model.Station) error {
    const q = `INSERT INTO stations (name, latitude, longitude) VALUES (?, ?, ?)`
    res, err := r.db.ExecContext(ctx, q, s.Name, s.Latitude, s.Longitude)
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
    s.ID = uint64(id)
    return nil
}

// List returns all stations ordered by name.
func (r *StationRepo) List(ctx context.Context) ([]model.Station, error) {
    const q = `SELECT id, name, latitude, longitude FROM stations ORDER BY name`
    rows, err := r.db.QueryContext(ctx, q)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    result := make([]model.Station, 0)
    for rows.Next() {
        var s model.Station
        var lat, lon sql.NullFloat64
        if err := rows.Scan(&s.ID, &s.Name, &lat, &lon); err != nil {
            return nil, err
        }
        if lat.Valid {
            v := lat.Float64
            s.Latitude = &v
        }
        if lon.Valid {
            v := lon.Float64
            s.Longitude = &v
        }
        result = append(result, s)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return result, nil
}
