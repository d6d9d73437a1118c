// Package route declares the navigable surface and the pre-navigation
// guard that gates it by role.
package route

import "github.com/adspace/adspace-cli/internal/core/domain"

// Route is one named destination. Exactly one of three access modes
// applies: Role set (restricted to that role), AnonymousOnly (reserved
// for logged-out users, e.g. login/register), or neither (unrestricted).
type Route struct {
	Name          string
	Path          string
	Role          domain.Role
	AnonymousOnly bool
}

// Table mirrors the marketplace's navigation surface.
var Table = []Route{
	{Name: "Login", Path: "/user/login", AnonymousOnly: true},
	{Name: "Register", Path: "/user/register", AnonymousOnly: true},
	{Name: "Admin", Path: "/admin", Role: domain.RoleAdmin},
	{Name: "Advertiser", Path: "/advertiser", Role: domain.RoleAdvertiser},
	{Name: "Publisher", Path: "/publisher", Role: domain.RolePublisher},
}

// ByName looks a route up in the table.
func ByName(name string) (Route, bool) {
	for _, r := range Table {
		if r.Name == name {
			return r, true
		}
	}
	return Route{}, false
}

// Home returns the landing route name for a role ("admin" → "Admin").
func Home(role domain.Role) string {
	return domain.Capitalize(string(role))
}

// Decision is the guard's verdict. When Allow is false, RedirectTo names
// the route to go to instead.
type Decision struct {
	Allow      bool
	RedirectTo string
}

// Decide is a pure function of the target route's declared requirement and
// the session's current role (empty when logged out):
//
//  1. A role-restricted route with a non-matching role redirects to Login.
//  2. An anonymous-only route with any live role redirects to that role's
//     home route.
//  3. Everything else is allowed.
func Decide(target Route, current domain.Role) Decision {
	if target.Role != "" && current != target.Role {
		return Decision{RedirectTo: "Login"}
	}
	if target.AnonymousOnly && current != "" {
		return Decision{RedirectTo: Home(current)}
	}
	return Decision{Allow: true}
}
