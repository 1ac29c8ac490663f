package model

import (
    "errors"
    "time"
)

// ErrDepartureNotBeforeArrival is returned by Journey.Validate when the
// departure time is equal to or later than the arrival time.
var ErrDepartureNotBeforeArrival = errors.New("departure_time must be strictly before arrival_time")

// Journey is one scheduled run of a train over a route. Tickets are
// sold against journeys; deleting a journey cascades to its tickets.
//
// Fields:
//  ID            – primary key identifier.
//  RouteID       – route being operated.
//  TrainID       – train assigned to the run.
//  CrewIDs       – rostered crew members (journey_crew rows).
//  DepartureTime – scheduled departure (strictly before arrival).
//  ArrivalTime   – scheduled arrival.
type Journey struct {
    ID            uint64    `json:"id"`             // journeys.id
    RouteID       uint64    `json:"route"`          // journeys.route_id
    TrainID       uint64    `json:"train"`          // journeys.train_id
    CrewIDs       []uint64  `json:"crew"`           // journey_crew.crew_id
    DepartureTime time.Time `json:"departure_time"` // journeys.departure_time
    ArrivalTime   time.Time `json:"arrival_time"`   // journeys.arrival_time
}

// Validate enforces the time-ordering invariant. Equal timestamps are
// rejected as well; a journey must take a nonzero amount of time.
func (j Journey) Validate() error {
    if !j.DepartureTime.Before(j.ArrivalTime) {
        return ErrDepartureNotBeforeArrival
    }
    return nil
}

// JourneyDetail is the journey representation for list and detail
// endpoints: route endpoints and train layout resolved, crew names
// listed and remaining seats computed at read time.
type JourneyDetail struct {
    ID               uint64    `json:"id"`
    RouteID          uint64    `json:"route"`
    SourceName       string    `json:"source"`
    DestinationName  string    `json:"destination"`
    TrainID          uint64    `json:"train"`
    TrainName        string    `json:"train_name"`
    CargoNum         int       `json:"cargo_num"`
    PlacesInCargo    int       `json:"places_in_cargo"`
    DepartureTime    time.Time `json:"departure_time"`
    ArrivalTime      time.Time `json:"arrival_time"`
    Crew             []Crew    `json:"crew"`
    TicketsAvailable int       `json:"tickets_available"`
}
