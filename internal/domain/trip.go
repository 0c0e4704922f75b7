package domain

import (
	"fmt"
	"time"
)

// ClockTime is a time of day at minute granularity, stored as minutes since midnight.
type ClockTime int

func NewClockTime(hour, minute int) ClockTime {
	return ClockTime(hour*60 + minute)
}

func (c ClockTime) Hour() int   { return int(c) / 60 }
func (c ClockTime) Minute() int { return int(c) % 60 }

// SinceMidnight converts the clock time to an offset from midnight.
func (c ClockTime) SinceMidnight() time.Duration {
	return time.Duration(c) * time.Minute
}

// String formats as a SQL TIME literal (HH:MM:00).
func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d:00", c.Hour(), c.Minute())
}

// TripRecord is one synthesized freight trip.
// All derived quantities are computed from the record's own sampled inputs.
type TripRecord struct {
	RouteID            int
	TripDate           time.Time
	DepartureTime      ClockTime
	ArrivalDate        time.Time
	ActualMiles        float64
	FuelGallons        float64
	FuelCost           float64
	DriveHours         float64
	AvgSpeedMPH        float64
	Stops              int
	DelayHours         float64
	Weather            Weather
	LoadWeightLbs      int
	FuelPricePerGallon float64
}

// MPG is the fuel efficiency achieved on the trip.
func (t TripRecord) MPG() float64 {
	if t.FuelGallons == 0 {
		return 0
	}
	return t.ActualMiles / t.FuelGallons
}

// CostPerMile is the fuel cost per mile driven.
func (t TripRecord) CostPerMile() float64 {
	if t.ActualMiles == 0 {
		return 0
	}
	return t.FuelCost / t.ActualMiles
}
