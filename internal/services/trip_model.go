package services

import "freight-optimizer/internal/domain"

// WeatherWeight is one entry of the discrete weather distribution.
type WeatherWeight struct {
	Condition domain.Weather
	Weight    int
}

// TripModel holds the sampling ranges and efficiency penalties used to
// synthesize trips. Penalties are multiplicative and never exceed 1.0.
type TripModel struct {
	Weather        []WeatherWeight
	WeatherPenalty map[domain.Weather]float64

	BaseMPGMin float64
	BaseMPGMax float64

	SpeedMinMPH        float64
	SpeedMaxMPH        float64
	HighSpeedThreshold float64
	HighSpeedPenalty   float64

	LoadMinLbs         int
	LoadMaxLbs         int
	HeavyLoadThreshold int
	HeavyLoadPenalty   float64

	DistanceFactorMin float64
	DistanceFactorMax float64

	StopsMin      int
	StopsMax      int
	DelayMaxHours float64
}

// DefaultTripModel approximates a Class 8 tractor-trailer.
var DefaultTripModel = TripModel{
	Weather: []WeatherWeight{
		{Condition: domain.WeatherClear, Weight: 3},
		{Condition: domain.WeatherPartlyCloudy, Weight: 1},
		{Condition: domain.WeatherCloudy, Weight: 1},
		{Condition: domain.WeatherRain, Weight: 1},
		{Condition: domain.WeatherSnow, Weight: 1},
		{Condition: domain.WeatherFog, Weight: 1},
	},
	WeatherPenalty: map[domain.Weather]float64{
		domain.WeatherRain: 0.95,
		domain.WeatherSnow: 0.88,
		domain.WeatherFog:  0.92,
	},

	BaseMPGMin: 6.0,
	BaseMPGMax: 7.2,

	SpeedMinMPH:        58,
	SpeedMaxMPH:        67,
	HighSpeedThreshold: 65,
	HighSpeedPenalty:   0.94,

	LoadMinLbs:         25000,
	LoadMaxLbs:         45000,
	HeavyLoadThreshold: 40000,
	HeavyLoadPenalty:   0.96,

	DistanceFactorMin: 0.98,
	DistanceFactorMax: 1.05,

	StopsMin:      1,
	StopsMax:      4,
	DelayMaxHours: 2.5,
}

// AdjustedMPG applies the weather, speed, and load penalties to base, once each.
func (m TripModel) AdjustedMPG(base float64, weather domain.Weather, speedMPH float64, loadLbs int) float64 {
	mpg := base
	if f, ok := m.WeatherPenalty[weather]; ok {
		mpg *= f
	}
	if speedMPH > m.HighSpeedThreshold {
		mpg *= m.HighSpeedPenalty
	}
	if loadLbs > m.HeavyLoadThreshold {
		mpg *= m.HeavyLoadPenalty
	}
	return mpg
}

func (m TripModel) totalWeatherWeight() int {
	total := 0
	for _, w := range m.Weather {
		total += w.Weight
	}
	return total
}

// sampleWeather walks the cumulative weights with a single integer draw.
func (m TripModel) sampleWeather(src RandomSource) domain.Weather {
	r := src.IntN(m.totalWeatherWeight())
	for _, w := range m.Weather {
		if r < w.Weight {
			return w.Condition
		}
		r -= w.Weight
	}
	return m.Weather[len(m.Weather)-1].Condition
}
