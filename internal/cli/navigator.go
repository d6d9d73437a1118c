package cli

import (
	"fmt"
	"io"

	"github.com/adspace/adspace-cli/internal/core/domain"
	"github.com/adspace/adspace-cli/internal/route"
)

// terminalNavigator renders navigation as a destination banner. The
// session store drives it after login/logout, the guard after redirects.
type terminalNavigator struct {
	out io.Writer
}

func (n *terminalNavigator) NavigateTo(routeName string) {
	fmt.Fprintf(n.out, "→ %s\n", routeName)
}

// guard gates a command behind the named route. It resolves the current
// role from the session and applies the pre-navigation decision; denied
// access surfaces as an error naming the redirect target.
func guard(routeName string) error {
	target, ok := route.ByName(routeName)
	if !ok {
		return fmt.Errorf("unknown route %q", routeName)
	}

	var current domain.Role
	if role, ok := sess.Role(); ok {
		current = role
	}

	d := route.Decide(target, current)
	if d.Allow {
		return nil
	}
	if d.RedirectTo == "Login" {
		return fmt.Errorf("not authorized for %s: log in first (adspace login)", routeName)
	}
	return fmt.Errorf("already logged in: %s is only available when logged out", routeName)
}
