package model

// Station is a named location on the network. Coordinates are
// optional; not every imported station record carries them.
//
// Fields:
//  ID        – primary key identifier.
//  Name      – unique station name.
//  Latitude  – optional latitude in degrees.
//  Longitude – optional longitude in degrees.
type Station struct {
    ID        uint64   `json:"id"`        // stations.id
    Name      string   `json:"name"`      // stations.name
    Latitude  *float64 `json:"latitude"`  // stations.latitude (nullable)
    Longitude *float64 `json:"longitude"` // stations.longitude (nullable)
}
