package repository

import (
    "errors"
    "testing"
)

func TestIsDuplicateEntry(t *testing.T) {
    cases := []struct {
        name string
        err  error
        want bool
    }{
        {"nil", nil, false},
        {"duplicate key", errors.New("Error 1062 (23000): Duplicate entry '3-1-1' for key 'uq_tickets_journey_cargo_seat'"), true},
        {"foreign key", errors.New("Error 1452 (23000): Cannot add or update a child row"), false},
        {"unrelated", errors.New("connection refused"), false},
    }
    for _, tc := range cases {
        if got := isDuplicateEntry(tc.err); got != tc.want {
            t.Errorf("%s: isDuplicateEntry = %v, want %v", tc.name, got, tc.want)
        }
    }
}

func TestIsForeignKeyFailure(t *testing.T) {
    cases := []struct {
        name string
        err  error
        want bool
    }{
        {"nil", nil, false},
        {"foreign key", errors.New("Error 1452 (23000): Cannot add or update a child row: a foreign key constraint fails"), true},
        {"duplicate key", errors.New("Error 1062 (23000): Duplicate entry"), false},
    }
    for _, tc := range cases {
        if got := isForeignKeyFailure(tc.err); got != tc.want {
            t.Errorf("%s: isForeignKeyFailure = %v, want %v", tc.name, got, tc.want)
        }
    }
}
