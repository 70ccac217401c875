package pawsgo

import (
	"slices"

	"github.com/pawsandgo/pawsgo/domain"
)

// allRoutes is the static route catalog. Routes are fixed, never user
// created, and referenced by id from walks and walker route sets.
var allRoutes = []domain.WalkRoute{
	{
		ID:              "r_parque",
		Name:            "Parque Hundido",
		Description:     "Caminata relajada con zonas de pasto.",
		StartHour:       7,
		EndHour:         11,
		DistanceKm:      2.5,
		DurationMinutes: 60,
		Difficulty:      "easy",
	},
	{
		ID:              "r_urbana",
		Name:            "Ruta Urbana Centro",
		Description:     "Caminata activa por calles principales.",
		StartHour:       16,
		EndHour:         20,
		DistanceKm:      3.2,
		DurationMinutes: 45,
		Difficulty:      "moderate",
	},
	{
		ID:              "r_bosque",
		Name:            "Bosque de Chapultepec",
		Description:     "Senderismo ligero y aire fresco.",
		StartHour:       6,
		EndHour:         10,
		DistanceKm:      4.0,
		DurationMinutes: 90,
		Difficulty:      "moderate",
	},
	{
		ID:              "r_nocturna",
		Name:            "Vigilancia Nocturna",
		Description:     "Paseo seguro en zona residencial.",
		StartHour:       19,
		EndHour:         23,
		DistanceKm:      2.0,
		DurationMinutes: 40,
		Difficulty:      "easy",
	},
}

// Routes returns the full route catalog.
func Routes() []domain.WalkRoute {
	return slices.Clone(allRoutes)
}

// RouteByID returns the catalog entry with the given id.
func RouteByID(id string) (domain.WalkRoute, bool) {
	for _, route := range allRoutes {
		if route.ID == id {
			return route, true
		}
	}
	return domain.WalkRoute{}, false
}

// RoutesByIDs filters the catalog down to the given ids, preserving catalog
// order. Unknown ids are skipped.
func RoutesByIDs(ids []string) []domain.WalkRoute {
	var routes []domain.WalkRoute
	for _, route := range allRoutes {
		if slices.Contains(ids, route.ID) {
			routes = append(routes, route)
		}
	}
	return routes
}
