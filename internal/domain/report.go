package domain

import "time"

// RouteOptimization summarizes per-route fuel performance and the savings
// available if every trip matched the route's best cost per mile.
type RouteOptimization struct {
	RouteID               int
	LaneName              string
	BaselineDistanceMiles float64
	TotalTrips            int
	AvgMPG                float64
	BestMPG               float64
	WorstMPG              float64
	AvgCostPerMile        float64
	BestCostPerMile       float64
	BestWeather           Weather
	OptimalDepartureHour  int
	SavingsPerTrip        float64
	AnnualSavings         float64
}

// WeatherImpact aggregates trips by weather condition.
type WeatherImpact struct {
	Weather        Weather
	TripCount      int
	AvgMPG         float64
	AvgCostPerMile float64
	AvgSpeedMPH    float64
	AvgDelayHours  float64
}

// HourlyPerformance aggregates trips by departure hour.
type HourlyPerformance struct {
	DepartureHour  int
	Trips          int
	AvgMPG         float64
	AvgCostPerMile float64
	AvgDelayHours  float64
}

// KPIMetrics is the fleet-wide headline summary.
type KPIMetrics struct {
	TotalRoutes    int
	TotalTrips     int
	AvgMPG         float64
	AvgCostPerMile float64
	TotalFuelCost  float64
	TotalMiles     float64
}

// OptimizationResult is a stored per-route recommendation.
type OptimizationResult struct {
	RouteID              int
	LaneName             string
	OriginCity           string
	DestinationCity      string
	AvgFuelCostPerMile   float64
	OptimalDepartureHour int
	OptimalDepartureDay  string
	AvgMPG               float64
	BestCaseMPG          float64
	WorstCaseMPG         float64
	SavingsPerTrip       float64
	AnnualSavings        float64
	Recommendation       string
}

// TripExportRow is a flattened trip joined with its route and same-day fuel price.
// PricePerGallon is nil when no observation exists for that exact date.
type TripExportRow struct {
	LaneName              string
	OriginCity            string
	DestinationCity       string
	BaselineDistanceMiles float64
	DepartureDate         time.Time
	DepartureHour         int
	DayOfWeek             string
	ActualMiles           float64
	FuelGallons           float64
	FuelCost              float64
	MPG                   float64
	CostPerMile           float64
	DriveHours            float64
	AvgSpeedMPH           float64
	Weather               Weather
	DelayHours            float64
	LoadWeightLbs         int
	PricePerGallon        *float64
}
