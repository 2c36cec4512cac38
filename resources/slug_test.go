package resources_test

import (
	"testing"

	"github.com/thegardencompany/storefront/resources"
)

func TestCanonicalSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"plants", "plants", true},
		{" Plants ", "plants", true},
		{"SNAKE-PLANT-CARE", "snake-plant-care", true},
		{"", "", false},
		{"   ", "", false},
	}
	for _, tc := range cases {
		got, ok := resources.CanonicalSlug(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("CanonicalSlug(%q) = (%q, %v), want (%q, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestIsValidSlug(t *testing.T) {
	if !resources.IsValidSlug("snake-plant-care") {
		t.Fatal("expected valid slug")
	}
	if resources.IsValidSlug("Snake Plant Care") {
		t.Fatal("expected raw title to be invalid")
	}
}
