package report

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/lildude/stravastats/internal/analysis"
)

func TestPrettyLabel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Run", "Run"},
		{"Ride", "Ride"},
		{"VirtualRide", "Virtual Ride"},
		{"WeightTraining", "Weight Training"},
		{"EBikeRide", "EBike Ride"},
		{"yoga", "Yoga"},
		{"", "Unknown"},
	}

	for _, tc := range tests {
		if got := PrettyLabel(tc.in); got != tc.want {
			t.Errorf("PrettyLabel(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestSortedTypes(t *testing.T) {
	counts := map[string]int{"Walk": 3, "Run": 12, "Ride": 3, "Swim": 1}

	got := SortedTypes(counts)
	want := []string{"Run", "Ride", "Walk", "Swim"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func testReport() *Report {
	return &Report{
		Days: []analysis.DayDistance{
			{Date: time.Date(2023, 6, 14, 0, 0, 0, 0, time.UTC), Kilometres: 5.0123},
			{Date: time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC), Kilometres: 24.3118},
		},
		Types: map[string]int{"Run": 2, "VirtualRide": 1},
		Splits: []analysis.SplitEstimate{
			{TargetKm: 5, Estimate: 1500 * time.Second, OK: true},
			{TargetKm: 21.1, OK: false},
		},
	}
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	if err := testReport().Render(&buf); err != nil {
		t.Fatalf("expected nil error, got %q", err)
	}

	html := buf.String()
	for _, want := range []string{
		"Daily distance",
		"Activity types",
		"Estimated fastest times",
		"2023-06-14",
		"Virtual Ride",
		"5 km",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("expected rendered page to contain %q", want)
		}
	}

	// A split with no qualifying activity must not be charted.
	if strings.Contains(html, "21.1 km") {
		t.Error("expected no chart entry for the unestimated split")
	}
}

func TestRenderEmptyReport(t *testing.T) {
	var buf bytes.Buffer
	r := &Report{}
	if err := r.Render(&buf); err != nil {
		t.Fatalf("expected nil error, got %q", err)
	}
	if buf.Len() == 0 {
		t.Error("expected a rendered page")
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stravastats.html")
	if err := testReport().WriteFile(path); err != nil {
		t.Fatalf("expected nil error, got %q", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected report file, got %q", err)
	}
	if !strings.Contains(string(data), "<html") {
		t.Error("expected report file to contain an HTML page")
	}
}
