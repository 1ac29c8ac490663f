package model

import (
    "errors"
    "testing"
    "time"
)

func TestRouteValidate(t *testing.T) {
    cases := []struct {
        name  string
        route Route
        want  error
    }{
        {"valid", Route{SourceStationID: 1, DestinationStationID: 2, Distance: 10}, nil},
        {"self loop", Route{SourceStationID: 7, DestinationStationID: 7, Distance: 10}, ErrSameSourceDestination},
        {"zero distance", Route{SourceStationID: 1, DestinationStationID: 2, Distance: 0}, ErrNonPositiveDistance},
        {"negative distance", Route{SourceStationID: 1, DestinationStationID: 2, Distance: -5}, ErrNonPositiveDistance},
    }
    for _, tc := range cases {
        t.Run(tc.name, func(t *testing.T) {
            if err := tc.route.Validate(); !errors.Is(err, tc.want) {
                t.Fatalf("Validate() = %v, want %v", err, tc.want)
            }
        })
    }
}

func TestJourneyValidate(t *testing.T) {
    dep := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

    cases := []struct {
        name    string
        arrival time.Time
        want    error
    }{
        {"arrival after departure", dep.Add(2 * time.Hour), nil},
        {"arrival before departure", dep.Add(-time.Hour), ErrDepartureNotBeforeArrival},
        {"arrival equals departure", dep, ErrDepartureNotBeforeArrival},
        {"one second journey", dep.Add(time.Second), nil},
    }
    for _, tc := range cases {
        t.Run(tc.name, func(t *testing.T) {
            j := Journey{RouteID: 1, TrainID: 1, DepartureTime: dep, ArrivalTime: tc.arrival}
            if err := j.Validate(); !errors.Is(err, tc.want) {
                t.Fatalf("Validate() = %v, want %v", err, tc.want)
            }
        })
    }
}

func TestTrainValidate(t *testing.T) {
    if err := (Train{CargoNum: 10, PlacesInCargo: 50}).Validate(); err != nil {
        t.Fatalf("valid layout rejected: %v", err)
    }
    if err := (Train{CargoNum: 0, PlacesInCargo: 50}).Validate(); !errors.Is(err, ErrInvalidCarriageLayout) {
        t.Fatalf("zero cargo_num accepted")
    }
    if err := (Train{CargoNum: 3, PlacesInCargo: 0}).Validate(); !errors.Is(err, ErrInvalidCarriageLayout) {
        t.Fatalf("zero places_in_cargo accepted")
    }
}

func TestCrewFullName(t *testing.T) {
    c := Crew{FirstName: "Anna", LastName: "Kovalenko"}
    if got := c.FullName(); got != "Anna Kovalenko" {
        t.Fatalf("FullName() = %q", got)
    }
}
