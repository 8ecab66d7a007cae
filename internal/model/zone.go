package model

import "strconv"

// Zone identifies one of the twelve pitch rectangles, "1".."12". The grid is
// four rows of three columns, row 1 nearest the defended goal.
type Zone string

const (
	zoneRows = 4
	zoneCols = 3

	// Row boundaries for advisory classification.
	defensiveMax = 3
	offensiveMin = 10
)

// Zones lists all valid zone identifiers in grid order.
func Zones() []Zone {
	zs := make([]Zone, 0, zoneRows*zoneCols)
	for i := 1; i <= zoneRows*zoneCols; i++ {
		zs = append(zs, Zone(strconv.Itoa(i)))
	}
	return zs
}

// Valid reports whether z is one of the twelve zone identifiers.
func (z Zone) Valid() bool {
	n, err := strconv.Atoi(string(z))
	return err == nil && n >= 1 && n <= zoneRows*zoneCols
}

// Defensive reports whether the zone sits in the defensive row (1-3).
func (z Zone) Defensive() bool {
	n, _ := strconv.Atoi(string(z))
	return z.Valid() && n <= defensiveMax
}

// Offensive reports whether the zone sits in the offensive row (10-12).
func (z Zone) Offensive() bool {
	n, _ := strconv.Atoi(string(z))
	return z.Valid() && n >= offensiveMin
}

// ZoneAt maps a point on the pitch to its zone. x and y are normalized to
// [0,1), x left-to-right across the columns and y from the defended goal
// line towards the attacking one. The second return is false when the point
// falls outside the pitch.
func ZoneAt(x, y float64) (Zone, bool) {
	if x < 0 || x >= 1 || y < 0 || y >= 1 {
		return "", false
	}
	col := int(x * zoneCols)
	row := int(y * zoneRows)
	return Zone(strconv.Itoa(row*zoneCols + col + 1)), true
}
