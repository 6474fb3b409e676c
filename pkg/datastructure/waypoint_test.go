package datastructure

import (
	"testing"
)

func TestParseRole(t *testing.T) {
	testCases := []struct {
		in   string
		want Role
	}{
		{"start", START},
		{"via", VIA},
		{"end", END},
		{"depot", UNKNOWN_ROLE},
		{"", UNKNOWN_ROLE},
	}
	for _, tt := range testCases {
		if got := ParseRole(tt.in); got != tt.want {
			t.Errorf("ParseRole(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestValidateWaypoints(t *testing.T) {
	valid := []Waypoint{
		NewWaypoint(33.57, -7.59, START),
		NewWaypoint(34.02, -6.83, VIA),
		NewWaypoint(31.63, -8.01, END),
	}

	testCases := []struct {
		name    string
		points  []Waypoint
		wantErr bool
	}{
		{name: "valid three points", points: valid, wantErr: false},
		{
			name: "valid five points",
			points: []Waypoint{
				NewWaypoint(33.57, -7.59, START),
				NewWaypoint(34.02, -6.83, VIA),
				NewWaypoint(35.76, -5.83, VIA),
				NewWaypoint(30.42, -9.58, VIA),
				NewWaypoint(31.63, -8.01, END),
			},
			wantErr: false,
		},
		{
			name: "too few points",
			points: []Waypoint{
				NewWaypoint(33.57, -7.59, START),
				NewWaypoint(31.63, -8.01, END),
			},
			wantErr: true,
		},
		{
			name: "too many points",
			points: []Waypoint{
				NewWaypoint(33.57, -7.59, START),
				NewWaypoint(34.02, -6.83, VIA),
				NewWaypoint(35.76, -5.83, VIA),
				NewWaypoint(30.42, -9.58, VIA),
				NewWaypoint(29.70, -9.73, VIA),
				NewWaypoint(31.63, -8.01, END),
			},
			wantErr: true,
		},
		{
			name: "two starts",
			points: []Waypoint{
				NewWaypoint(33.57, -7.59, START),
				NewWaypoint(34.02, -6.83, START),
				NewWaypoint(31.63, -8.01, END),
			},
			wantErr: true,
		},
		{
			name: "missing end",
			points: []Waypoint{
				NewWaypoint(33.57, -7.59, START),
				NewWaypoint(34.02, -6.83, VIA),
				NewWaypoint(31.63, -8.01, VIA),
			},
			wantErr: true,
		},
		{
			name: "unknown role",
			points: []Waypoint{
				NewWaypoint(33.57, -7.59, START),
				NewWaypoint(34.02, -6.83, UNKNOWN_ROLE),
				NewWaypoint(31.63, -8.01, END),
			},
			wantErr: true,
		},
		{
			name: "latitude out of range",
			points: []Waypoint{
				NewWaypoint(133.57, -7.59, START),
				NewWaypoint(34.02, -6.83, VIA),
				NewWaypoint(31.63, -8.01, END),
			},
			wantErr: true,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWaypoints(tt.points)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateWaypoints() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGeometryCoords(t *testing.T) {
	g := Geometry{
		Type:        "LineString",
		Coordinates: [][]float64{{-7.59, 33.57}, {-6.83, 34.02}},
	}
	coords := g.Coords()
	if len(coords) != 2 {
		t.Fatalf("want 2 coords, got %d", len(coords))
	}
	if coords[0].GetLat() != 33.57 || coords[0].GetLon() != -7.59 {
		t.Errorf("lon/lat swap broken: %+v", coords[0])
	}
}
