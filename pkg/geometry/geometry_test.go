package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoundingBox_OrdersCorners(t *testing.T) {
	box := NewBoundingBox(600, 300, 100, 200)
	assert.Equal(t, BoundingBox{MinX: 100, MinY: 200, MaxX: 600, MaxY: 300}, box)
	assert.Equal(t, 500.0, box.Width())
	assert.Equal(t, 100.0, box.Height())
	assert.Equal(t, 50000.0, box.Area())
}

func TestBoundingBox_Contains(t *testing.T) {
	box := NewBoundingBox(0, 0, 10, 10)
	tests := []struct {
		name string
		p    Coordinate
		want bool
	}{
		{"center", Coordinate{5, 5}, true},
		{"corner", Coordinate{0, 0}, true},
		{"edge", Coordinate{10, 5}, true},
		{"outside x", Coordinate{11, 5}, false},
		{"outside y", Coordinate{5, -1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, box.Contains(tt.p))
		})
	}
}

func TestIntersectionUnionIoU(t *testing.T) {
	tests := []struct {
		name         string
		a, b         BoundingBox
		intersection float64
		union        float64
		iou          float64
	}{
		{"identical", NewBoundingBox(0, 0, 10, 10), NewBoundingBox(0, 0, 10, 10), 100, 100, 1},
		{"half overlap", NewBoundingBox(0, 0, 10, 10), NewBoundingBox(5, 0, 15, 10), 50, 150, 50.0 / 150.0},
		{"disjoint", NewBoundingBox(0, 0, 10, 10), NewBoundingBox(20, 20, 30, 30), 0, 200, 0},
		{"touching", NewBoundingBox(0, 0, 10, 10), NewBoundingBox(10, 0, 20, 10), 0, 200, 0},
		{"degenerate", NewBoundingBox(0, 0, 0, 0), NewBoundingBox(0, 0, 0, 0), 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.intersection, IntersectionArea(tt.a, tt.b), 1e-9)
			assert.InDelta(t, tt.union, UnionArea(tt.a, tt.b), 1e-9)
			assert.InDelta(t, tt.iou, IoU(tt.a, tt.b), 1e-9)
		})
	}
}

func TestParsePolygon(t *testing.T) {
	coords, err := ParsePolygon("100,100 500,100 500,200 100,200")
	require.NoError(t, err)
	require.Len(t, coords, 4)
	assert.Equal(t, Coordinate{X: 500, Y: 200}, coords[2])

	box, err := BoundingBoxFromPoints(coords)
	require.NoError(t, err)
	assert.Equal(t, NewBoundingBox(100, 100, 500, 200), box)
}

func TestParsePolygon_Errors(t *testing.T) {
	tests := []struct {
		name   string
		points string
	}{
		{"empty", ""},
		{"two points", "0,0 10,10"},
		{"missing comma", "0,0 10 10,10"},
		{"not a number", "0,0 a,10 10,10"},
		{"triple", "0,0,0 10,10 10,0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePolygon(tt.points)
			assert.ErrorIs(t, err, ErrInvalidPolygon)
		})
	}
}

func TestPolygonBoundingBox(t *testing.T) {
	box, err := PolygonBoundingBox("10,40 30,20 50,60")
	require.NoError(t, err)
	assert.Equal(t, NewBoundingBox(10, 20, 50, 60), box)
}

func TestPointInPolygon(t *testing.T) {
	square := NewBoundingBox(0, 0, 10, 10).Points()
	triangle := []Coordinate{{0, 0}, {10, 0}, {0, 10}}

	assert.True(t, PointInPolygon(Coordinate{5, 5}, square))
	assert.False(t, PointInPolygon(Coordinate{15, 5}, square))
	assert.True(t, PointInPolygon(Coordinate{2, 2}, triangle))
	assert.False(t, PointInPolygon(Coordinate{8, 8}, triangle))
	assert.False(t, PointInPolygon(Coordinate{1, 1}, []Coordinate{{0, 0}, {10, 10}}))
}

func TestBoundingBox_Union(t *testing.T) {
	a := NewBoundingBox(0, 0, 10, 10)
	b := NewBoundingBox(5, -5, 20, 8)
	assert.Equal(t, NewBoundingBox(0, -5, 20, 10), a.Union(b))
}
