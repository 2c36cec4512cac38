package links

import (
	"strings"
	"testing"
)

func TestBuilderResolvesContentRoutes(t *testing.T) {
	b := NewBuilder("")

	cases := []struct {
		got  func() (string, error)
		want string
	}{
		{b.Resources, "/resources"},
		{func() (string, error) { return b.Pillar("plants") }, "/resources/plants"},
		{func() (string, error) { return b.Subtopic("plants", "indoor") }, "/resources/plants/indoor"},
		{func() (string, error) { return b.Article("plants", "indoor", "snake-plant-care") }, "/resources/plants/indoor/snake-plant-care"},
		{b.Shop, "/shop"},
		{func() (string, error) { return b.Product("snake-plant") }, "/shop/snake-plant"},
	}
	for _, tc := range cases {
		got, err := tc.got()
		if err != nil {
			t.Fatalf("build %s: %v", tc.want, err)
		}
		if got != tc.want {
			t.Fatalf("expected %s, got %s", tc.want, got)
		}
	}
}

func TestBuilderWithBaseURL(t *testing.T) {
	b := NewBuilder("https://thegardencompany.in")

	got, err := b.Pillar("plants")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !strings.HasPrefix(got, "https://thegardencompany.in") {
		t.Fatalf("base url not applied: %s", got)
	}
	if !strings.HasSuffix(got, "/resources/plants") {
		t.Fatalf("unexpected path: %s", got)
	}
}

func TestNilBuilderErrors(t *testing.T) {
	var b *Builder
	if _, err := b.Resources(); err == nil {
		t.Fatal("expected error from unconfigured builder")
	}
}
