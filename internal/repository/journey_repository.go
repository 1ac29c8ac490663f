package repository

import (
    "context"
    "database/sql"
    "errors"
    "strings"
    "time"

    "github.com/iliyamo/train-station-reservation/internal/booking"
    "github.com/iliyamo/train-station-reservation/internal/model"
)

// JourneyRepo provides persistence for journeys and their crew roster.
// Journey reads compute tickets_available at query time from the
// committed tickets table; the value is never stored on the journey
// row, so it cannot go stale across sales beyond normal read skew.
type JourneyRepo struct {
    db *sql.DB
}

// NewJourneyRepo returns a JourneyRepo bound to the given database.
func NewJourneyRepo(db *sql.DB) *JourneyRepo { return &JourneyRepo{db: db} }

// DB exposes the underlying handle so handlers can open transactions
// that span journeys, orders and tickets.
func (r *JourneyRepo) DB() *sql.DB { return r.db }

// JourneyFilter narrows List results. Zero values mean "no filter".
// DepartureDate and ArrivalDate match the calendar date of the
// respective timestamp.
type JourneyFilter struct {
    TrainID       uint64
    RouteID       uint64
    CrewIDs       []uint64
    DepartureDate *time.Time
    ArrivalDate   *time.Time
}

// Create inserts a journey and its crew links in one transaction. The
// journey ID is populated on success. Unknown route/train ids surface
// as ErrNotFound.
func (r *JourneyRepo) Create(ctx context.Context, j *model.Journey) error {
    tx, err := r.db.BeginTx(ctx, nil)
    if err != nil {
        return err
    }
    committed := false
    defer func() {
        if !committed {
            _ = tx.Rollback()
        }
    }()

    const q = `INSERT INTO journeys (route_id, train_id, departure_time, arrival_time) VALUES (?, ?, ?, ?)`
    res, err := tx.ExecContext(ctx, q, j.RouteID, j.TrainID, j.DepartureTime.UTC(), j.ArrivalTime.UTC())
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
    j.ID = uint64(id)

    if err := insertCrewLinksTx(ctx, tx, j.ID, j.CrewIDs); err != nil {
        return err
    }
    if err := tx.Commit(); err != nil {
        return err
    }
    committed = true
    return nil
}

// Update rewrites a journey's fields and replaces its crew roster in
// one transaction. Returns ErrNotFound when the journey does not
// exist.
func (r *JourneyRepo) Update(ctx context.Context, j *model.Journey) error {
    tx, err := r.db.BeginTx(ctx, nil)
    if err != nil {
        return err
    }
    committed := false
    defer func() {
        if !committed {
            _ = tx.Rollback()
        }
    }()

    var exists int
    if err := tx.QueryRowContext(ctx, `SELECT 1 FROM journeys WHERE id = ?`, j.ID).Scan(&exists); err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return ErrNotFound
        }
        return err
    }

    const q = `UPDATE journeys SET route_id = ?, train_id = ?, departure_time = ?, arrival_time = ? WHERE id = ?`
    if _, err := tx.ExecContext(ctx, q, j.RouteID, j.TrainID, j.DepartureTime.UTC(), j.ArrivalTime.UTC(), j.ID); err != nil {
        if isForeignKeyFailure(err) {
            return ErrNotFound
        }
        return err
    }
    if _, err := tx.ExecContext(ctx, `DELETE FROM journey_crew WHERE journey_id = ?`, j.ID); err != nil {
        return err
    }
    if err := insertCrewLinksTx(ctx, tx, j.ID, j.CrewIDs); err != nil {
        return err
    }
    if err := tx.Commit(); err != nil {
        return err
    }
    committed = true
    return nil
}

// Delete removes a journey; its tickets and crew links cascade.
// Returns ErrNotFound when no row was deleted.
func (r *JourneyRepo) Delete(ctx context.Context, id uint64) error {
    res, err := r.db.ExecContext(ctx, `DELETE FROM journeys WHERE id = ?`, id)
    if err != nil {
        return err
    }
    if n, _ := res.RowsAffected(); n == 0 {
        return ErrNotFound
    }
    return nil
}

func insertCrewLinksTx(ctx context.Context, tx *sql.Tx, journeyID uint64, crewIDs []uint64) error {
    if len(crewIDs) == 0 {
        return nil
    }
    query := `INSERT INTO journey_crew (journey_id, crew_id) VALUES `
    args := make([]interface{}, 0, len(crewIDs)*2)
    for i, cid := range crewIDs {
        if i > 0 {
            query += ","
        }
        query += "(?, ?)"
        args = append(args, journeyID, cid)
    }
    _, err := tx.ExecContext(ctx, query, args...)
    if err != nil && isForeignKeyFailure(err) {
        return ErrNotFound
    }
    return err
}

// journeySelect resolves route endpoints, train layout and the count
// of committed tickets. Remaining seats are derived in the scanner so
// reads reflect what a booking sees after its transaction lands.
const journeySelect = `SELECT j.id, j.route_id, src.name, dst.name,
                              j.train_id, t.name, t.cargo_num, t.places_in_cargo,
                              j.departure_time, j.arrival_time,
                              (SELECT COUNT(*) FROM tickets tk WHERE tk.journey_id = j.id) AS tickets_sold
                       FROM journeys j
                       JOIN routes r ON r.id = j.route_id
                       JOIN stations src ON src.id = r.source_station_id
                       JOIN stations dst ON dst.id = r.destination_station_id
                       JOIN trains t ON t.id = j.train_id`

func scanJourneyDetail(scan func(dest ...interface{}) error) (model.JourneyDetail, error) {
    var d model.JourneyDetail
    var sold int
    err := scan(
        &d.ID, &d.RouteID, &d.SourceName, &d.DestinationName,
        &d.TrainID, &d.TrainName, &d.CargoNum, &d.PlacesInCargo,
        &d.DepartureTime, &d.ArrivalTime, &sold,
    )
    if err != nil {
        return d, err
    }
    d.TicketsAvailable = booking.Availability(d.CargoNum, d.PlacesInCargo, sold)
    d.Crew = []model.Crew{}
    return d, nil
}

// List returns journeys matching the filter, each with resolved
// names, crew roster and tickets_available. Crew filtering matches
// journeys rostering at least one of the given ids.
func (r *JourneyRepo) List(ctx context.Context, f JourneyFilter) ([]model.JourneyDetail, error) {
    query := journeySelect
    var conds []string
    var args []interface{}

    if f.TrainID != 0 {
        conds = append(conds, "j.train_id = ?")
        args = append(args, f.TrainID)
    }
    if f.RouteID != 0 {
        conds = append(conds, "j.route_id = ?")
        args = append(args, f.RouteID)
    }
    if len(f.CrewIDs) > 0 {
        placeholders := strings.TrimSuffix(strings.Repeat("?,", len(f.CrewIDs)), ",")
        conds = append(conds, "j.id IN (SELECT jc.journey_id FROM journey_crew jc WHERE jc.crew_id IN ("+placeholders+"))")
        for _, cid := range f.CrewIDs {
            args = append(args, cid)
        }
    }
    if f.DepartureDate != nil {
        conds = append(conds, "DATE(j.departure_time) = ?")
        args = append(args, f.DepartureDate.Format("2006-01-02"))
    }
    if f.ArrivalDate != nil {
        conds = append(conds, "DATE(j.arrival_time) = ?")
        args = append(args, f.ArrivalDate.Format("2006-01-02"))
    }
    if len(conds) > 0 {
        query += " WHERE " + strings.Join(conds, " AND ")
    }
    query += " ORDER BY j.departure_time"

    rows, err := r.db.QueryContext(ctx, query, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    details := make([]model.JourneyDetail, 0)
    index := make(map[uint64]int)
    for rows.Next() {
        d, err := scanJourneyDetail(rows.Scan)
        if err != nil {
            return nil, err
        }
        index[d.ID] = len(details)
        details = append(details, d)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    if len(details) == 0 {
        return details, nil
    }

    // Populate crew for all journeys in a single query.
    ids := make([]interface{}, 0, len(details))
    placeholders := make([]string, 0, len(details))
    for _, d := range details {
        ids = append(ids, d.ID)
        placeholders = append(placeholders, "?")
    }
    crewQuery := `SELECT jc.journey_id, c.id, c.first_name, c.last_name
                  FROM journey_crew jc
                  JOIN crews c ON c.id = jc.crew_id
                  WHERE jc.journey_id IN (` + strings.Join(placeholders, ",") + `)
                  ORDER BY jc.journey_id, c.last_name, c.first_name`
    crows, err := r.db.QueryContext(ctx, crewQuery, ids...)
    if err != nil {
        return nil, err
    }
    defer crows.Close()
    for crows.Next() {
        var jid uint64
        var c model.Crew
        if err := crows.Scan(&jid, &c.ID, &c.FirstName, &c.LastName); err != nil {
            return nil, err
        }
        if idx, ok := index[jid]; ok {
            details[idx].Crew = append(details[idx].Crew, c)
        }
    }
    if err := crows.Err(); err != nil {
        return nil, err
    }
    return details, nil
}

// GetByID returns a single journey with crew and availability, or
// ErrNotFound.
func (r *JourneyRepo) GetByID(ctx context.Context, id uint64) (*model.JourneyDetail, error) {
    row := r.db.QueryRowContext(ctx, journeySelect+" WHERE j.id = ?", id)
    d, err := scanJourneyDetail(row.Scan)
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return nil, ErrNotFound
        }
        return nil, err
    }
    const crewQ = `SELECT c.id, c.first_name, c.last_name
                   FROM journey_crew jc
                   JOIN crews c ON c.id = jc.crew_id
                   WHERE jc.journey_id = ?
                   ORDER BY c.last_name, c.first_name`
    rows, err := r.db.QueryContext(ctx, crewQ, id)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    for rows.Next() {
        var c model.Crew
        if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName); err != nil {
            return nil, err
        }
        d.Crew = append(d.Crew, c)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return &d, nil
}

// TrainLayoutTx loads the carriage layout of the train assigned to a
// journey inside an open transaction. Order creation uses it to
// validate requested seats against the same snapshot the ticket
// inserts will run under. Returns ErrNotFound for unknown journeys.
func (r *JourneyRepo) TrainLayoutTx(ctx context.Context, tx *sql.Tx, journeyID uint64) (cargoNum, placesInCargo int, err error) {
    const q = `SELECT t.cargo_num, t.places_in_cargo
               FROM journeys j
               JOIN trains t ON t.id = j.train_id
               WHERE j.id = ?`
    err = tx.QueryRowContext(ctx, q, journeyID).Scan(&cargoNum, &placesInCargo)
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return 0, 0, ErrNotFound
        }
        return 0, 0, err
    }
    return cargoNum, placesInCargo, nil
}

// Availability returns the remaining seat count for a journey, or
// ErrNotFound. It reflects committed tickets only.
func (r *JourneyRepo) Availability(ctx context.Context, journeyID uint64) (int, error) {
    const q = `SELECT t.cargo_num * t.places_in_cargo - (
                   SELECT COUNT(*) FROM tickets tk WHERE tk.journey_id = j.id
               )
               FROM journeys j
               JOIN trains t ON t.id = j.train_id
               WHERE j.id = ?`
    var n int
    if err := r.db.QueryRowContext(ctx, q, journeyID).Scan(&n); err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return 0, ErrNotFound
        }
        return 0, err
    }
    return n, nil
}
