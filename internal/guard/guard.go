// Package guard enforces per-route access policy. It is deliberately pure:
// Decide returns a typed decision (allow or redirect) and the callers — the
// web frontend's middleware and the CLI's command gating — apply it.
package guard

import (
	"net/url"
	"strings"

	"github.com/bayuwidiasantoso/gudang/pkg/model"
)

const (
	// LandingPath is the default authenticated destination.
	LandingPath = "/"
	// LoginPath is where anonymous users are sent.
	LoginPath = "/login"
	// RedirectParam preserves the originally requested path across login.
	RedirectParam = "redirect"
)

// Policy is the static access rule for one route.
type Policy struct {
	Name         string
	Pattern      string // path pattern, {name} segments match any one segment
	GuestOnly    bool
	RequiresAuth bool
	Roles        []model.Role // empty means any authenticated role
}

// Session is the read side of the session store the guard consults.
type Session interface {
	IsAuthenticated() bool
	User() *model.User
}

// Decision is the single outcome of a navigation attempt.
type Decision struct {
	Allowed bool
	Target  string // redirect destination when not allowed
}

func allow() Decision {
	return Decision{Allowed: true}
}

func redirectTo(target string) Decision {
	return Decision{Target: target}
}

// Table is an ordered set of route policies.
type Table []Policy

// Routes returns the application route table.
func Routes() Table {
	return Table{
		{Name: "login", Pattern: "/login", GuestOnly: true},
		{Name: "dashboard", Pattern: "/", RequiresAuth: true},
		{Name: "barang", Pattern: "/barang", RequiresAuth: true, Roles: []model.Role{model.RoleAdmin}},
		// Form action of the item list page; same policy as the list itself.
		{Name: "barang-delete", Pattern: "/barang/{id}/delete", RequiresAuth: true, Roles: []model.Role{model.RoleAdmin}},
		{Name: "barang-detail", Pattern: "/barang/{id}", RequiresAuth: true},
		{Name: "transaksi", Pattern: "/transaksi", RequiresAuth: true},
		{Name: "laporan", Pattern: "/laporan", RequiresAuth: true},
		{Name: "logs", Pattern: "/logs", RequiresAuth: true, Roles: []model.Role{model.RoleAdmin}},
	}
}

// Match resolves a concrete request path to its policy. Unknown paths carry
// no policy and are treated as public.
func (t Table) Match(path string) (Policy, bool) {
	for _, p := range t {
		if matchPattern(p.Pattern, path) {
			return p, true
		}
	}
	return Policy{}, false
}

// ByName looks a policy up by route name.
func (t Table) ByName(name string) (Policy, bool) {
	for _, p := range t {
		if p.Name == name {
			return p, true
		}
	}
	return Policy{}, false
}

// Decide applies the access policy to the current session. Exactly one
// decision is produced; first matching rule wins:
//
//  1. guest-only route, authenticated session → redirect to the landing page
//  2. auth-required route, anonymous session → redirect to login, keeping
//     the requested path as the redirect parameter
//  3. auth-required route with a role set the user is not in → redirect to
//     the landing page (silent downgrade, not an error)
//  4. otherwise → allow
func Decide(p Policy, s Session, requested string) Decision {
	authed := s.IsAuthenticated()

	if p.GuestOnly && authed {
		return redirectTo(LandingPath)
	}

	if p.RequiresAuth && !authed {
		q := url.Values{}
		q.Set(RedirectParam, requested)
		return redirectTo(LoginPath + "?" + q.Encode())
	}

	if p.RequiresAuth && len(p.Roles) > 0 {
		user := s.User()
		if user == nil || !roleAllowed(p.Roles, user.Role) {
			return redirectTo(LandingPath)
		}
	}

	return allow()
}

func roleAllowed(roles []model.Role, role model.Role) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

// matchPattern matches a path against a pattern segment by segment, where a
// {name} segment matches any single non-empty segment.
func matchPattern(pattern, path string) bool {
	if pattern == path {
		return true
	}

	patParts := strings.Split(strings.Trim(pattern, "/"), "/")
	pathParts := strings.Split(strings.Trim(path, "/"), "/")
	if len(patParts) != len(pathParts) {
		return false
	}
	for i, pp := range patParts {
		if strings.HasPrefix(pp, "{") && strings.HasSuffix(pp, "}") {
			if pathParts[i] == "" {
				return false
			}
			continue
		}
		if pp != pathParts[i] {
			return false
		}
	}
	return true
}
