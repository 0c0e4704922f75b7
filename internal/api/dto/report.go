package dto

type RouteOptimizationResponse struct {
	RouteID               int     `json:"route_id"`
	LaneName              string  `json:"lane_name"`
	BaselineDistanceMiles float64 `json:"baseline_distance_miles"`
	TotalTrips            int     `json:"total_trips"`
	AvgMPG                float64 `json:"avg_mpg"`
	BestMPG               float64 `json:"best_mpg"`
	WorstMPG              float64 `json:"worst_mpg"`
	AvgCostPerMile        float64 `json:"avg_cost_per_mile"`
	BestCostPerMile       float64 `json:"best_cost_per_mile"`
	BestWeather           string  `json:"best_weather"`
	OptimalDepartureHour  int     `json:"optimal_departure_hour"`
	SavingsPerTrip        float64 `json:"savings_per_trip"`
	AnnualSavings         float64 `json:"annual_savings"`
}

type RouteOptimizationReport struct {
	TripsPerYear       int                         `json:"trips_per_year"`
	TotalAnnualSavings float64                     `json:"total_annual_savings"`
	Routes             []RouteOptimizationResponse `json:"routes"`
}

type WeatherImpactResponse struct {
	Weather        string  `json:"weather_conditions"`
	TripCount      int     `json:"trip_count"`
	AvgMPG         float64 `json:"avg_mpg"`
	AvgCostPerMile float64 `json:"avg_cost_per_mile"`
	AvgSpeedMPH    float64 `json:"avg_speed_mph"`
	AvgDelayHours  float64 `json:"avg_delay_hours"`
}

type WeatherImpactReport struct {
	Conditions []WeatherImpactResponse `json:"conditions"`
}

type HourlyPerformanceResponse struct {
	DepartureHour  int     `json:"departure_hour"`
	Trips          int     `json:"trips"`
	AvgMPG         float64 `json:"avg_mpg"`
	AvgCostPerMile float64 `json:"avg_cost_per_mile"`
	AvgDelayHours  float64 `json:"avg_delay_hours"`
}

type HourlyPerformanceReport struct {
	Hours []HourlyPerformanceResponse `json:"hours"`
}

type KPIResponse struct {
	TotalRoutes    int     `json:"total_routes"`
	TotalTrips     int     `json:"total_trips"`
	AvgMPG         float64 `json:"avg_mpg"`
	AvgCostPerMile float64 `json:"avg_cost_per_mile"`
	TotalFuelCost  float64 `json:"total_fuel_cost"`
	TotalMiles     float64 `json:"total_miles"`
}

type OptimizationResponse struct {
	RouteID              int     `json:"route_id"`
	LaneName             string  `json:"lane_name"`
	OriginCity           string  `json:"origin_city"`
	DestinationCity      string  `json:"destination_city"`
	AvgFuelCostPerMile   float64 `json:"avg_fuel_cost_per_mile"`
	OptimalDepartureTime string  `json:"optimal_departure_time"`
	OptimalDepartureDay  string  `json:"optimal_departure_day"`
	AvgMPG               float64 `json:"avg_mpg"`
	BestCaseMPG          float64 `json:"best_case_mpg"`
	WorstCaseMPG         float64 `json:"worst_case_mpg"`
	SavingsPerTrip       float64 `json:"potential_savings_per_trip"`
	AnnualSavings        float64 `json:"annual_savings_estimate"`
	Recommendation       string  `json:"recommendation"`
}

type ListOptimizationsResponse struct {
	Optimizations []OptimizationResponse `json:"optimizations"`
}
