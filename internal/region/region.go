package region

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a district name has no entry in the table.
// It maps to a client error, never a server fault.
var ErrNotFound = errors.New("unknown district")

// Coordinates is a latitude/longitude pair in decimal degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Table maps district display names to fixed coordinates. It is built once
// at startup and never mutated, so lookups are safe from any goroutine.
type Table struct {
	coords map[string]Coordinates
}

// NewTable copies the given mapping into an immutable lookup table.
func NewTable(coords map[string]Coordinates) *Table {
	m := make(map[string]Coordinates, len(coords))
	for name, c := range coords {
		m[name] = c
	}
	return &Table{coords: m}
}

// Resolve returns the coordinates for a district, or ErrNotFound.
func (t *Table) Resolve(district string) (Coordinates, error) {
	c, ok := t.coords[district]
	if !ok {
		return Coordinates{}, fmt.Errorf("%w: %q", ErrNotFound, district)
	}
	return c, nil
}

// Names returns all district names in the table, in no particular order.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.coords))
	for name := range t.coords {
		names = append(names, name)
	}
	return names
}

// Kerala returns the table of the 14 Kerala districts the service covers.
func Kerala() *Table {
	return NewTable(map[string]Coordinates{
		"Thiruvananthapuram": {Lat: 8.524139, Lon: 76.936638},
		"Kollam":             {Lat: 8.893212, Lon: 76.614136},
		"Alappuzha":          {Lat: 9.498066, Lon: 76.338493},
		"Pathanamthitta":     {Lat: 9.2645, Lon: 76.787},
		"Kottayam":           {Lat: 9.591566, Lon: 76.522116},
		"Idukki":             {Lat: 9.87862, Lon: 77.168903},
		"Ernakulam":          {Lat: 9.981634, Lon: 76.299872},
		"Thrissur":           {Lat: 10.527642, Lon: 76.214423},
		"Palakkad":           {Lat: 10.78666, Lon: 76.654778},
		"Malappuram":         {Lat: 11.072445, Lon: 76.062389},
		"Kozhikode":          {Lat: 11.258753, Lon: 75.780411},
		"Wayanad":            {Lat: 11.685455, Lon: 76.13266},
		"Kannur":             {Lat: 11.874521, Lon: 75.370369},
		"Kasaragod":          {Lat: 12.49858, Lon: 74.989059},
	})
}
