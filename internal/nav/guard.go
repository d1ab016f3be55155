package nav

import (
	"strings"
	"sync"

	"go.uber.org/zap"

	"tableside/internal/domain"
	"tableside/internal/session"
)

// LoginPath is where every rejected navigation lands.
const LoginPath = "/login"

// RoleSatisfies is the access policy for a role-gated route. It is
// asymmetric: an admin session passes a customer-only check, a customer
// session never passes an admin check. Tests pin this down; do not
// symmetrize it without changing them.
func RoleSatisfies(required, actual string) bool {
	switch required {
	case domain.RoleAdmin:
		return actual == domain.RoleAdmin
	case domain.RoleCustomer:
		return actual == domain.RoleCustomer || actual == domain.RoleAdmin
	default:
		return true
	}
}

// Router resolves navigation attempts against the route table and the
// injected session store. Evaluation is synchronous and reads only local
// state, so a server-side revocation is invisible here until the next API
// call fails with AuthExpiredError.
type Router struct {
	mu       sync.Mutex
	routes   []Route
	sessions session.Store
	current  string
	log      *zap.SugaredLogger
}

func NewRouter(routes []Route, sessions session.Store) *Router {
	return &Router{
		routes:   routes,
		sessions: sessions,
		current:  LoginPath,
		log:      zap.S(),
	}
}

// Resolve runs the guard for a navigation attempt and returns the path the
// navigation actually lands on. Checks run in strict order:
//
//  1. public allow-list -> allow
//  2. no credential -> login
//  3. auth required and no role -> login
//  4. declared role not satisfied -> login
//  5. otherwise -> allow
func (r *Router) Resolve(target string) string {
	for _, public := range PublicPaths {
		if target == public {
			return target
		}
	}

	if r.sessions.Credential() == "" {
		return LoginPath
	}

	route := r.match(target)
	if route != nil && route.Redirect != "" {
		return r.Resolve(route.Redirect)
	}
	if route != nil && route.RequiresAuth {
		role := r.sessions.Role()
		if role == "" {
			return LoginPath
		}
		if route.Role != "" && !RoleSatisfies(route.Role, role) {
			return LoginPath
		}
	}

	return target
}

// Navigate applies the guard and records the resulting path.
func (r *Router) Navigate(target string) string {
	resolved := r.Resolve(target)
	if resolved != target {
		r.log.Debugw("navigation redirected", "target", target, "resolved", resolved)
	}

	r.mu.Lock()
	r.current = resolved
	r.mu.Unlock()
	return resolved
}

func (r *Router) CurrentPath() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// match finds the most specific route covering the path. The root route
// matches only itself.
func (r *Router) match(path string) *Route {
	var best *Route
	for i := range r.routes {
		route := &r.routes[i]
		if route.Path == "/" {
			if path != "/" {
				continue
			}
		} else if path != route.Path && !strings.HasPrefix(path, route.Path+"/") {
			continue
		}
		if best == nil || len(route.Path) > len(best.Path) {
			best = route
		}
	}
	return best
}
