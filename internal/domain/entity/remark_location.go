package entity

import (
	domainerrors "statistics/internal/domain/errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

const (
	// LocationTypePoint is the GeoJSON geometry type of every remark location.
	LocationTypePoint = "Point"

	minLatitude  = -90.0
	maxLatitude  = 90.0
	minLongitude = -180.0
	maxLongitude = 180.0
)

// RemarkLocation is the geographic point a remark was reported at.
// Coordinates are kept in GeoJSON order: longitude first, then latitude.
type RemarkLocation struct {
	point   orb.Point
	address string
}

// NewRemarkLocation validates the coordinates and builds a RemarkLocation.
// It returns an InvalidArgumentError naming the first coordinate out of range.
func NewRemarkLocation(latitude, longitude float64, address string) (RemarkLocation, error) {
	if !(latitude >= minLatitude && latitude <= maxLatitude) {
		return RemarkLocation{}, domainerrors.NewInvalidArgumentError("latitude", latitude)
	}
	if !(longitude >= minLongitude && longitude <= maxLongitude) {
		return RemarkLocation{}, domainerrors.NewInvalidArgumentError("longitude", longitude)
	}

	return RemarkLocation{
		point:   orb.Point{longitude, latitude},
		address: address,
	}, nil
}

// Type returns the fixed GeoJSON geometry type.
func (l RemarkLocation) Type() string {
	return LocationTypePoint
}

// Latitude returns the latitude in degrees.
func (l RemarkLocation) Latitude() float64 {
	return l.point.Lat()
}

// Longitude returns the longitude in degrees.
func (l RemarkLocation) Longitude() float64 {
	return l.point.Lon()
}

// Coordinates returns the [longitude, latitude] pair.
func (l RemarkLocation) Coordinates() [2]float64 {
	return [2]float64(l.point)
}

// Address returns the optional human-readable address.
func (l RemarkLocation) Address() string {
	return l.address
}

// Point returns the location as an orb point.
func (l RemarkLocation) Point() orb.Point {
	return l.point
}

// GeoJSON returns the location as a GeoJSON point geometry.
func (l RemarkLocation) GeoJSON() *geojson.Geometry {
	return geojson.NewGeometry(l.point)
}
