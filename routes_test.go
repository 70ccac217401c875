package pawsgo

import "testing"

func TestRoutes(t *testing.T) {
	t.Run("should return the full catalog", func(t *testing.T) {
		routes := Routes()
		if len(routes) != 4 {
			t.Fatalf("wanted: 4 routes\ngot: %d", len(routes))
		}
	})

	t.Run("should return a copy the caller cannot mutate", func(t *testing.T) {
		routes := Routes()
		routes[0].Name = "mutated"

		again := Routes()
		if again[0].Name == "mutated" {
			t.Fatalf("wanted: catalog untouched\ngot: %s", again[0].Name)
		}
	})
}

func TestRouteByID(t *testing.T) {
	t.Run("should find a catalog route", func(t *testing.T) {
		route, ok := RouteByID("r_bosque")
		if !ok {
			t.Fatalf("wanted: route found\ngot: not found")
		}
		if route.Name != "Bosque de Chapultepec" {
			t.Fatalf("wanted: Bosque de Chapultepec\ngot: %s", route.Name)
		}
	})

	t.Run("should report a miss for an unknown id", func(t *testing.T) {
		if _, ok := RouteByID("r_nope"); ok {
			t.Fatalf("wanted: not found\ngot: found")
		}
	})
}

func TestRoutesByIDs(t *testing.T) {
	t.Run("should preserve catalog order regardless of input order", func(t *testing.T) {
		routes := RoutesByIDs([]string{"r_nocturna", "r_parque"})
		if len(routes) != 2 {
			t.Fatalf("wanted: 2 routes\ngot: %d", len(routes))
		}
		if routes[0].ID != "r_parque" || routes[1].ID != "r_nocturna" {
			t.Fatalf("wanted: r_parque then r_nocturna\ngot: %s then %s", routes[0].ID, routes[1].ID)
		}
	})

	t.Run("should skip unknown ids", func(t *testing.T) {
		routes := RoutesByIDs([]string{"r_urbana", "r_missing"})
		if len(routes) != 1 {
			t.Fatalf("wanted: 1 route\ngot: %d", len(routes))
		}
		if routes[0].ID != "r_urbana" {
			t.Fatalf("wanted: r_urbana\ngot: %s", routes[0].ID)
		}
	})
}
