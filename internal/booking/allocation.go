// Package booking holds the seat allocation rules for journeys. The
// functions here are pure: they decide whether a requested seat exists
// on a train and how many seats a journey has left. Whether a seat is
// still free is decided by the tickets table's unique key, not here —
// checking availability in application code and then inserting would be
// a check-then-act race under concurrent orders.
package booking

import "fmt"

// FieldError tags a validation failure with the request field it
// belongs to, so handlers can surface field-level messages.
type FieldError struct {
    Field   string `json:"field"`
    Message string `json:"message"`
}

// Error implements the error interface.
func (e FieldError) Error() string {
    return e.Field + ": " + e.Message
}

// ValidateSeat checks a requested (cargo, seat) claim against a train's
// physical layout. Both bounds are checked independently and every
// violation is reported, so a request that is out of range on both
// fields yields two errors. A nil slice means the claim is admissible.
func ValidateSeat(cargo, seat, cargoNum, placesInCargo int) []FieldError {
    var errs []FieldError
    if cargo < 1 || cargo > cargoNum {
        errs = append(errs, FieldError{
            Field:   "cargo",
            Message: fmt.Sprintf("cargo number must be in available range: (1, %d)", cargoNum),
        })
    }
    if seat < 1 || seat > placesInCargo {
        errs = append(errs, FieldError{
            Field:   "seat",
            Message: fmt.Sprintf("seat number must be in available range: (1, %d)", placesInCargo),
        })
    }
    return errs
}

// Capacity returns the total number of seats on a train with the given
// layout.
func Capacity(cargoNum, placesInCargo int) int {
    return cargoNum * placesInCargo
}

// Availability returns the number of unsold seats given a train layout
// and the count of committed tickets. The count must come from the
// database at read time; callers must never persist this value on the
// journey, as it goes stale under concurrent sales.
func Availability(cargoNum, placesInCargo, sold int) int {
    return Capacity(cargoNum, placesInCargo) - sold
}
