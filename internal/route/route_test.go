package route

import (
	"testing"

	"github.com/adspace/adspace-cli/internal/core/domain"
)

func TestDecide_RoleMismatchRedirectsToLogin(t *testing.T) {
	admin, _ := ByName("Admin")

	d := Decide(admin, domain.RolePublisher)
	if d.Allow {
		t.Fatalf("expected denial")
	}
	if d.RedirectTo != "Login" {
		t.Fatalf("expected redirect to Login, got %q", d.RedirectTo)
	}

	d = Decide(admin, "")
	if d.Allow || d.RedirectTo != "Login" {
		t.Fatalf("logged-out access should redirect to Login, got %+v", d)
	}
}

func TestDecide_RoleMatchAllows(t *testing.T) {
	for _, tc := range []struct {
		name string
		role domain.Role
	}{
		{"Admin", domain.RoleAdmin},
		{"Advertiser", domain.RoleAdvertiser},
		{"Publisher", domain.RolePublisher},
	} {
		r, ok := ByName(tc.name)
		if !ok {
			t.Fatalf("route %s missing from table", tc.name)
		}
		if d := Decide(r, tc.role); !d.Allow {
			t.Fatalf("%s should allow role %s, got %+v", tc.name, tc.role, d)
		}
	}
}

func TestDecide_AnonymousOnlyRedirectsToHome(t *testing.T) {
	login, _ := ByName("Login")

	d := Decide(login, domain.RoleAdmin)
	if d.Allow {
		t.Fatalf("expected denial")
	}
	if d.RedirectTo != "Admin" {
		t.Fatalf("expected redirect to Admin, got %q", d.RedirectTo)
	}
}

func TestDecide_AnonymousOnlyAllowsLoggedOut(t *testing.T) {
	register, _ := ByName("Register")
	if d := Decide(register, ""); !d.Allow {
		t.Fatalf("logged-out register should be allowed, got %+v", d)
	}
}

func TestDecide_UnrestrictedAlwaysAllows(t *testing.T) {
	r := Route{Name: "About", Path: "/about"}
	if d := Decide(r, ""); !d.Allow {
		t.Fatalf("unrestricted route denied for anonymous: %+v", d)
	}
	if d := Decide(r, domain.RoleAdvertiser); !d.Allow {
		t.Fatalf("unrestricted route denied for advertiser: %+v", d)
	}
}
