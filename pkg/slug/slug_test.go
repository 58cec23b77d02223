package slug_test

import (
	"testing"

	"github.com/Ajay2840/talentflow-hiring-platform/pkg/slug"
)

func TestDerive(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Backend Developer", "backend-developer"},
		{"Senior Frontend Engineer", "senior-frontend-engineer"},
		{"UI/UX Designer", "ui-ux-designer"},
		{"Site Reliability Engineer", "site-reliability-engineer"},
		{"C++ Developer", "c-developer"},
		{"  spaced   out  ", "spaced-out"},
	}
	for _, c := range cases {
		if got := slug.Derive(c.title); got != c.want {
			t.Errorf("Derive(%q) = %q, want %q", c.title, got, c.want)
		}
	}
}

func TestValid(t *testing.T) {
	for _, s := range []string{"backend-developer", "qa-engineer", "x", "a1-b2"} {
		if !slug.Valid(s) {
			t.Errorf("Valid(%q) should be true", s)
		}
	}
	for _, s := range []string{"", "Backend Developer", "UPPER", "has space", "ünïcode"} {
		if slug.Valid(s) {
			t.Errorf("Valid(%q) should be false", s)
		}
	}
}
