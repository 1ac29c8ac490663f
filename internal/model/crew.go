package model

// Crew is a crew member who can be rostered onto journeys. The
// many-to-many link to journeys lives in the journey_crew table.
type Crew struct {
    ID        uint64 `json:"id"`         // crews.id
    FirstName string `json:"first_name"` // crews.first_name
    LastName  string `json:"last_name"`  // crews.last_name
}

// FullName joins first and last name with a single space.
func (c Crew) FullName() string {
    return c.FirstName + " " + c.LastName
}
