// Package geometry provides the small set of planar primitives the document
// model needs: points, axis-aligned bounding boxes and polygons given as
// whitespace separated "x,y" pairs.
//
// All operations are pure functions on value types.
package geometry

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidPolygon is returned when a points string is malformed or
// describes fewer than three points.
var ErrInvalidPolygon = errors.New("invalid polygon")

// Coordinate is a 2D point
type Coordinate struct {
	X float64
	Y float64
}

// BoundingBox is an axis-aligned rectangle.
// MinX <= MaxX and MinY <= MaxY hold for every box built by this package.
type BoundingBox struct {
	MinX float64 // Left coordinate
	MinY float64 // Top coordinate
	MaxX float64 // Right coordinate
	MaxY float64 // Bottom coordinate
}

// NewBoundingBox creates a bounding box from two corner coordinates.
// The corners are ordered so the min <= max invariant holds.
func NewBoundingBox(x1, y1, x2, y2 float64) BoundingBox {
	return BoundingBox{
		MinX: math.Min(x1, x2),
		MinY: math.Min(y1, y2),
		MaxX: math.Max(x1, x2),
		MaxY: math.Max(y1, y2),
	}
}

// BoundingBoxFromPoints returns the minimal box enclosing all points.
func BoundingBoxFromPoints(points []Coordinate) (BoundingBox, error) {
	if len(points) == 0 {
		return BoundingBox{}, fmt.Errorf("%w: no points", ErrInvalidPolygon)
	}
	box := BoundingBox{MinX: points[0].X, MinY: points[0].Y, MaxX: points[0].X, MaxY: points[0].Y}
	for _, p := range points[1:] {
		box.MinX = math.Min(box.MinX, p.X)
		box.MinY = math.Min(box.MinY, p.Y)
		box.MaxX = math.Max(box.MaxX, p.X)
		box.MaxY = math.Max(box.MaxY, p.Y)
	}
	return box, nil
}

// Width returns the horizontal extent
func (b BoundingBox) Width() float64 { return b.MaxX - b.MinX }

// Height returns the vertical extent
func (b BoundingBox) Height() float64 { return b.MaxY - b.MinY }

// Area returns width times height
func (b BoundingBox) Area() float64 { return b.Width() * b.Height() }

// Contains reports whether p lies inside the box or on its border.
func (b BoundingBox) Contains(p Coordinate) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Union returns the smallest box containing both boxes.
func (b BoundingBox) Union(other BoundingBox) BoundingBox {
	return BoundingBox{
		MinX: math.Min(b.MinX, other.MinX),
		MinY: math.Min(b.MinY, other.MinY),
		MaxX: math.Max(b.MaxX, other.MaxX),
		MaxY: math.Max(b.MaxY, other.MaxY),
	}
}

// Points returns the four corners clockwise starting top-left.
func (b BoundingBox) Points() []Coordinate {
	return []Coordinate{
		{X: b.MinX, Y: b.MinY},
		{X: b.MaxX, Y: b.MinY},
		{X: b.MaxX, Y: b.MaxY},
		{X: b.MinX, Y: b.MaxY},
	}
}

func (b BoundingBox) String() string {
	return fmt.Sprintf("(%g,%g)-(%g,%g)", b.MinX, b.MinY, b.MaxX, b.MaxY)
}

// IntersectionArea returns the overlapping area of two boxes, 0 if disjoint.
func IntersectionArea(a, b BoundingBox) float64 {
	xOverlap := math.Max(0, math.Min(a.MaxX, b.MaxX)-math.Max(a.MinX, b.MinX))
	yOverlap := math.Max(0, math.Min(a.MaxY, b.MaxY)-math.Max(a.MinY, b.MinY))
	return xOverlap * yOverlap
}

// UnionArea returns the area covered by at least one of both boxes.
func UnionArea(a, b BoundingBox) float64 {
	return a.Area() + b.Area() - IntersectionArea(a, b)
}

// IoU returns intersection over union, 0 when the union is empty.
func IoU(a, b BoundingBox) float64 {
	union := UnionArea(a, b)
	if union == 0 {
		return 0
	}
	return IntersectionArea(a, b) / union
}

// ParsePolygon reads a points string like "0,0 100,0 100,100 0,100".
func ParsePolygon(points string) ([]Coordinate, error) {
	var coords []Coordinate
	for _, token := range strings.Fields(points) {
		parts := strings.Split(token, ",")
		if len(parts) != 2 {
			return nil, fmt.Errorf("%w: point %q", ErrInvalidPolygon, token)
		}
		x, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: x of %q: %v", ErrInvalidPolygon, token, err)
		}
		y, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: y of %q: %v", ErrInvalidPolygon, token, err)
		}
		coords = append(coords, Coordinate{X: x, Y: y})
	}
	if len(coords) < 3 {
		return nil, fmt.Errorf("%w: need at least 3 points, got %d", ErrInvalidPolygon, len(coords))
	}
	return coords, nil
}

// PolygonBoundingBox parses a points string and returns its enclosing box.
func PolygonBoundingBox(points string) (BoundingBox, error) {
	coords, err := ParsePolygon(points)
	if err != nil {
		return BoundingBox{}, err
	}
	return BoundingBoxFromPoints(coords)
}

// PointInPolygon reports whether p lies inside the closed ring given by
// polygon. Rings with fewer than three points contain nothing.
func PointInPolygon(p Coordinate, polygon []Coordinate) bool {
	if len(polygon) < 3 {
		return false
	}
	inside := false
	j := len(polygon) - 1
	for i := range polygon {
		pi, pj := polygon[i], polygon[j]
		if (pi.Y > p.Y) != (pj.Y > p.Y) {
			crossX := (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y) + pi.X
			if p.X < crossX {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}
