package domain

// Weather is the condition label recorded on a trip.
type Weather string

const (
	WeatherClear        Weather = "Clear"
	WeatherPartlyCloudy Weather = "Partly Cloudy"
	WeatherCloudy       Weather = "Cloudy"
	WeatherRain         Weather = "Rain"
	WeatherSnow         Weather = "Snow"
	WeatherFog          Weather = "Fog"
)

// AllWeather lists every condition in display order.
var AllWeather = []Weather{
	WeatherClear,
	WeatherPartlyCloudy,
	WeatherCloudy,
	WeatherRain,
	WeatherSnow,
	WeatherFog,
}

func (w Weather) String() string { return string(w) }
