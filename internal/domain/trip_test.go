package domain

import (
	"math"
	"testing"
	"time"
)

func TestClockTime(t *testing.T) {
	c := NewClockTime(7, 5)
	if c.Hour() != 7 || c.Minute() != 5 {
		t.Fatalf("clock = %d:%d, want 7:5", c.Hour(), c.Minute())
	}
	if c.String() != "07:05:00" {
		t.Fatalf("String() = %q, want %q", c.String(), "07:05:00")
	}
	if c.SinceMidnight() != 7*time.Hour+5*time.Minute {
		t.Fatalf("SinceMidnight() = %v", c.SinceMidnight())
	}
	if s := NewClockTime(23, 59).String(); s != "23:59:00" {
		t.Fatalf("String() = %q, want 23:59:00", s)
	}
}

func TestTripRecordRatios(t *testing.T) {
	trip := TripRecord{ActualMiles: 130, FuelGallons: 20, FuelCost: 65}

	if got := trip.MPG(); math.Abs(got-6.5) > 1e-9 {
		t.Fatalf("MPG = %v, want 6.5", got)
	}
	if got := trip.CostPerMile(); math.Abs(got-0.5) > 1e-9 {
		t.Fatalf("CostPerMile = %v, want 0.5", got)
	}

	var zero TripRecord
	if zero.MPG() != 0 || zero.CostPerMile() != 0 {
		t.Fatal("zero trip should report zero ratios")
	}
}

func TestRouteLaneName(t *testing.T) {
	r := Route{RouteID: 3, OriginCity: "Dallas", DestinationCity: "Houston", OriginState: "TX", BaselineDistanceMiles: 239}
	if r.LaneName() != "Dallas-Houston" {
		t.Fatalf("lane = %q", r.LaneName())
	}
	ref := r.Ref()
	if ref.RouteID != 3 || ref.OriginState != "TX" || ref.BaselineDistanceMiles != 239 {
		t.Fatalf("unexpected ref %+v", ref)
	}
}
