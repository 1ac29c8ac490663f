package repository

import (
    "context"
    "database/sql"
    "errors"

    "github.com/iliyamo/train-station-reservation/internal/model"
)

// RouteRepo provides persistence for routes. The unique key on
// (source_station_id, destination_station_id) is the authority for
// duplicate route pairs; Create never pre-checks it in application
// code.
type RouteRepo struct {
    db *sql.DB
}

// NewRouteRepo returns a RouteRepo bound to the given database.
func NewRouteRepo(db *sql.DB) *RouteRepo { return &RouteRepo{db: db} }

// RouteFilter narrows List results. Zero values mean "no filter".
type RouteFilter struct {
    SourceID      uint64
    DestinationID uint64
}

// Create inserts a route and populates the generated ID. A duplicate
// (source, destination) pair surfaces as ErrConflict; an unknown
// station id fails the foreign key and surfaces as ErrNotFound.
func (r *RouteRepo) Create(ctx context.Context, rt *model.Route) error {
    const q = `INSERT INTO routes (source_station_id, destination_station_id, distance) VALUES (?, ?, ?)`
    res, err := r.db.ExecContext(ctx, q, rt.SourceStationID, rt.DestinationStationID, rt.Distance)
    if err != nil {
        if isDuplicateEntry(err) {
            return ErrConflict
        }
        if isForeignKeyFailure(err) {
            return ErrNotFound
        }
        return err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    rt.ID = uint64(id)
    return nil
}

const routeSelect = `SELECT r.id, r.distance,
                            src.id, src.name, src.latitude, src.longitude,
                            dst.id, dst.name, dst.latitude, dst.longitude
                     FROM routes r
                     JOIN stations src ON src.id = r.source_station_id
                     JOIN stations dst ON dst.id = r.destination_station_id`

func scanRouteDetail(scan func(dest ...interface{}) error) (model.RouteDetail, error) {
    var d model.RouteDetail
    var srcLat, srcLon, dstLat, dstLon sql.NullFloat64
    err := scan(
        &d.ID, &d.Distance,
        &d.Source.ID, &d.Source.Name, &srcLat, &srcLon,
        &d.Destination.ID, &d.Destination.Name, &dstLat, &dstLon,
    )
    if err != nil {
        return d, err
    }
    if srcLat.Valid {
        v := srcLat.Float64
        d.Source.Latitude = &v
    }
    if srcLon.Valid {
        v := srcLon.Float64
        d.Source.Longitude = &v
    }
    if dstLat.Valid {
        v := dstLat.Float64
        d.Destination.Latitude = &v
    }
    if dstLon.Valid {
        v := dstLon.Float64
        d.Destination.Longitude = &v
    }
    return d, nil
}

// List returns routes with both station endpoints resolved, optionally
// filtered by exact source and/or destination station id.
func (r *RouteRepo) List(ctx context.Context, f RouteFilter) ([]model.RouteDetail, error) {
    query := routeSelect
    args := make([]interface{}, 0, 2)
    where := ""
    if f.SourceID != 0 {
        where = " WHERE r.source_station_id = ?"
        args = append(args, f.SourceID)
    }
    if f.DestinationID != 0 {
        if where == "" {
            where = " WHERE r.destination_station_id = ?"
        } else {
            where += " AND r.destination_station_id = ?"
        }
        args = append(args, f.DestinationID)
    }
    query += where + " ORDER BY src.name, dst.name"

    rows, err := r.db.QueryContext(ctx, query, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    result := make([]model.RouteDetail, 0)
    for rows.Next() {
        d, err := scanRouteDetail(rows.Scan)
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

// GetByID returns a single route with station endpoints resolved, or
// ErrNotFound.
func (r *RouteRepo) GetByID(ctx context.Context, id uint64) (*model.RouteDetail, error) {
    row := r.db.QueryRowContext(ctx, routeSelect+" WHERE r.id = ?", id)
    d, err := scanRouteDetail(row.Scan)
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return nil, ErrNotFound
        }
        return nil, err
    }
    return &d, nil
}
