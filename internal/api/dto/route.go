package dto

type CoordinatesResponse struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type RouteResponse struct {
	RouteID               int                 `json:"route_id"`
	LaneName              string              `json:"lane_name"`
	OriginCity            string              `json:"origin_city"`
	DestinationCity       string              `json:"destination_city"`
	OriginState           string              `json:"origin_state"`
	DestinationState      string              `json:"destination_state"`
	BaselineDistanceMiles float64             `json:"baseline_distance_miles"`
	Origin                CoordinatesResponse `json:"origin"`
	Destination           CoordinatesResponse `json:"destination"`
}

type ListRoutesResponse struct {
	Routes []RouteResponse `json:"routes"`
}
