package model

import "errors"

// ErrInvalidCarriageLayout is returned by Train.Validate when the
// carriage count or seats-per-carriage is below one.
var ErrInvalidCarriageLayout = errors.New("cargo_num and places_in_cargo must be at least 1")

// TrainType tags trains with a category such as "Intercity" or
// "Night express". Names are unique.
type TrainType struct {
    ID   uint64 `json:"id"`   // train_types.id
    Name string `json:"name"` // train_types.name
}

// Train describes the physical layout of a train: how many carriages
// it has and how many seats each carriage holds. Total capacity is
// CargoNum * PlacesInCargo.
//
// Fields:
//  ID            – primary key identifier.
//  Name          – display name of the train.
//  CargoNum      – number of carriages (>= 1).
//  PlacesInCargo – seats per carriage (>= 1).
//  TrainTypeID   – reference to the train's type.
//  ImagePath     – optional path of an uploaded image, relative to the
//                  media root.
type Train struct {
    ID            uint64  `json:"id"`              // trains.id
    Name          string  `json:"name"`            // trains.name
    CargoNum      int     `json:"cargo_num"`       // trains.cargo_num
    PlacesInCargo int     `json:"places_in_cargo"` // trains.places_in_cargo
    TrainTypeID   uint64  `json:"train_type"`      // trains.train_type_id
    ImagePath     *string `json:"image,omitempty"` // trains.image_path (nullable)
}

// Validate checks that the train describes a physically possible
// layout. Both bounds are required for seat validation to be
// meaningful later.
func (t Train) Validate() error {
    if t.CargoNum < 1 || t.PlacesInCargo < 1 {
        return ErrInvalidCarriageLayout
    }
    return nil
}

// TrainDetail is a train with its type name resolved, returned by
// list and detail endpoints.
type TrainDetail struct {
    ID            uint64  `json:"id"`
    Name          string  `json:"name"`
    CargoNum      int     `json:"cargo_num"`
    PlacesInCargo int     `json:"places_in_cargo"`
    Capacity      int     `json:"capacity"`
    TrainType     string  `json:"train_type"`
    ImagePath     *string `json:"image,omitempty"`
}
