package nav

import "tableside/internal/domain"

// Route is one entry in the route table. A route with a Path of "/customer"
// covers "/customer" and everything under it; children inherit the meta.
type Route struct {
	Path         string
	Redirect     string
	RequiresAuth bool
	Role         string
}

// PublicPaths is the allow-list the guard checks first. These are reachable
// with no session at all.
var PublicPaths = []string{"/login", "/register"}

// DefaultRoutes mirrors the UI shell's route table.
func DefaultRoutes() []Route {
	return []Route{
		{Path: "/", Redirect: "/login"},
		{Path: "/login"},
		{Path: "/register"},
		{Path: "/customer", RequiresAuth: true, Role: domain.RoleCustomer},
		{Path: "/admin", RequiresAuth: true, Role: domain.RoleAdmin},
	}
}
