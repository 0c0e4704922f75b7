package domain

// Route is a freight lane between two cities.
// BaselineDistanceMiles is the nominal lane distance; actual trips vary around it.
type Route struct {
	RouteID               int
	OriginCity            string
	DestinationCity       string
	OriginState           string
	DestinationState      string
	BaselineDistanceMiles float64
	Origin                Coordinates
	Destination           Coordinates
}

// LaneName returns the "Origin-Destination" label used as the lane's natural key.
func (r Route) LaneName() string {
	return r.OriginCity + "-" + r.DestinationCity
}

// Ref projects the route onto the fields needed for trip synthesis.
func (r Route) Ref() RouteRef {
	return RouteRef{
		RouteID:               r.RouteID,
		BaselineDistanceMiles: r.BaselineDistanceMiles,
		OriginState:           r.OriginState,
	}
}

// RouteRef is the read-only view of a route consumed by the trip synthesizer.
type RouteRef struct {
	RouteID               int
	BaselineDistanceMiles float64
	OriginState           string
}
