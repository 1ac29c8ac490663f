// Package repository implements data access for the train station API
// on top of database/sql. Sentinel errors defined here let handlers
// distinguish failure scenarios without inspecting driver errors:
// ErrNotFound maps to HTTP 404, ErrConflict to 409 and ErrSeatTaken to
// the booking-specific 409 returned during order creation.
package repository

import (
    "errors"
    "strings"
)

// ErrNotFound is returned when a lookup by id yields no row.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when an insert or update violates a unique
// constraint on reference data, such as a duplicate station name or a
// duplicate (source, destination) route pair.
var ErrConflict = errors.New("conflict")

// ErrSeatTaken is returned when a ticket insert loses the race for a
// (journey, cargo, seat) triple. It is deliberately distinct from
// ErrConflict so handlers can answer "seat already taken" rather than a
// generic conflict.
var ErrSeatTaken = errors.New("seat already taken")

// ErrEmailExists is returned when user registration hits the unique
// email constraint.
var ErrEmailExists = errors.New("email already exists")

// isDuplicateEntry reports whether err is a MySQL duplicate-key
// violation (error 1062). The driver returns these as opaque errors,
// so the code is sniffed from the message.
func isDuplicateEntry(err error) bool {
    if err == nil {
        return false
    }
    return strings.Contains(strings.ToLower(err.Error()), "1062")
}

// isForeignKeyFailure reports whether err is a MySQL foreign-key
// violation (error 1452), which happens when an insert references a
// row that does not exist.
func isForeignKeyFailure(err error) bool {
    if err == nil {
        return false
    }
    return strings.Contains(strings.ToLower(err.Error()), "1452")
}
