package models

import "fmt"

// Location is a geocoded place
type Location struct {
	Query     string  `json:"query"`     // text the user typed
	Address   string  `json:"address"`   // display address from the geocoder
	Latitude  float64 `json:"latitude"`  // decimal degrees
	Longitude float64 `json:"longitude"` // decimal degrees
}

func (l Location) String() string {
	return fmt.Sprintf("%s (%.4f, %.4f)", l.Address, l.Latitude, l.Longitude)
}
