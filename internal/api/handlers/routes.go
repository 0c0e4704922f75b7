package handlers

import (
	"freight-optimizer/internal/api/dto"
	"freight-optimizer/internal/platform/obs"
	"freight-optimizer/internal/ports"
	"log"
	"net/http"
)

// RouteHandler exposes the read-only freight lane catalog.
type RouteHandler struct {
	Repo ports.RouteRepository
}

func (h *RouteHandler) List(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	routes, err := h.Repo.ListRoutes(r.Context())
	if err != nil {
		log.Printf("%s list routes failed: %v", obs.Fields(r.Context()), err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListRoutesResponse{
		Routes: make([]dto.RouteResponse, 0, len(routes)),
	}
	for _, rt := range routes {
		res.Routes = append(res.Routes, dto.RouteResponse{
			RouteID:               rt.RouteID,
			LaneName:              rt.LaneName(),
			OriginCity:            rt.OriginCity,
			DestinationCity:       rt.DestinationCity,
			OriginState:           rt.OriginState,
			DestinationState:      rt.DestinationState,
			BaselineDistanceMiles: rt.BaselineDistanceMiles,
			Origin:                dto.CoordinatesResponse{Lat: rt.Origin.Lat, Lon: rt.Origin.Lon},
			Destination:           dto.CoordinatesResponse{Lat: rt.Destination.Lat, Lon: rt.Destination.Lon},
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
