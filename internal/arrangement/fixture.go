package arrangement

import (
	"embed"
	"fmt"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses SVG fixtures and turns their polygons into segment sets.
// It is not a full (or even correct) SVG parser: it requires exactly one
// <polygon> element and converts its "points" attribute into a closed chain
// of Segments, truncating coordinates to int64 since the
// arrangement is built over integer coordinates. A simple polygon's
// boundary is non-crossing by construction, which makes it a convenient
// source of non-crossing segment sets for Insert.
//
// Fixtures live in fixtures/, sans extension.

//go:embed fixtures
var fixtures embed.FS

// LoadFixtureSegments parses the named SVG fixture and returns the
// polygon's edges as Segments, in boundary order.
func LoadFixtureSegments(name string) ([]*Segment, error) {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		return nil, fmt.Errorf("arrangement: opening fixture %q: %w", name, err)
	}
	defer fixture.Close()

	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		return nil, fmt.Errorf("arrangement: parsing fixture %q: %w", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		return nil, fmt.Errorf("arrangement: fixture %q has %d polygons, want 1", name, len(polygons))
	}

	points, err := parsePolygonPoints(polygons[0].Attributes["points"])
	if err != nil {
		return nil, fmt.Errorf("arrangement: fixture %q: %w", name, err)
	}

	segments := make([]*Segment, 0, len(points))
	for i, p := range points {
		q := points[(i+1)%len(points)]
		if p.X == q.X {
			// Vertical edges aren't representable (ErrVertical); skip them
			// rather than fail the whole polygon.
			continue
		}
		segments = append(segments, NewSegment(p, q))
	}
	return segments, nil
}

func parsePolygonPoints(pointString string) ([]*Point, error) {
	pointStrings := strings.Fields(strings.ReplaceAll(pointString, ",", " "))
	if len(pointStrings)%2 != 0 {
		return nil, fmt.Errorf("odd number of coordinate fields in %q", pointString)
	}

	points := make([]*Point, 0, len(pointStrings)/2)
	for i := 0; i < len(pointStrings); i += 2 {
		x, err := strconv.ParseFloat(pointStrings[i], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid x value %q: %w", pointStrings[i], err)
		}
		y, err := strconv.ParseFloat(pointStrings[i+1], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid y value %q: %w", pointStrings[i+1], err)
		}
		points = append(points, &Point{X: int64(x), Y: int64(y)})
	}
	return points, nil
}
