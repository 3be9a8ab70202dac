package domain

// Coordinate is a WGS-84 point in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat" validate:"lat"`
	Lng float64 `json:"lng" validate:"lng"`
}

func (c Coordinate) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}
