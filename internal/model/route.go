package model

import "errors"

// ErrSameSourceDestination is returned by Route.Validate when a route
// loops back to its own source station.
var ErrSameSourceDestination = errors.New("source and destination cannot be the same")

// ErrNonPositiveDistance is returned by Route.Validate when the distance
// is zero or negative.
var ErrNonPositiveDistance = errors.New("distance must be a positive integer")

// Route is a directed link between two stations. The pair
// (SourceStationID, DestinationStationID) is unique in the database;
// the reverse direction is a distinct route.
//
// Fields:
//  ID                   – primary key identifier.
//  SourceStationID      – station the route departs from.
//  DestinationStationID – station the route arrives at.
//  Distance             – length of the route (positive).
type Route struct {
    ID                   uint64 `json:"id"`          // routes.id
    SourceStationID      uint64 `json:"source"`      // routes.source_station_id
    DestinationStationID uint64 `json:"destination"` // routes.destination_station_id
    Distance             int    `json:"distance"`    // routes.distance
}

// Validate checks the route invariants before persistence: a route may
// not loop back to its source, and distance must be positive. The
// uniqueness of the (source, destination) pair is enforced by the
// database, not here.
func (r Route) Validate() error {
    if r.SourceStationID == r.DestinationStationID {
        return ErrSameSourceDestination
    }
    if r.Distance <= 0 {
        return ErrNonPositiveDistance
    }
    return nil
}

// RouteDetail is the route representation returned by list and detail
// endpoints, with station names resolved.
type RouteDetail struct {
    ID          uint64 `json:"id"`
    Source      Station `json:"source"`
    Destination Station `json:"destination"`
    Distance    int     `json:"distance"`
}
