package physics

import (
	"math"
	"testing"
)

func TestIntegrate(t *testing.T) {
	k := Body{X: 1, Y: 2, VX: 0.5, VY: 0}
	Integrate(&k, 0, 0.2)
	if k.VY != 0.2 || k.Y != 2.2 || k.X != 1.5 {
		t.Errorf("unexpected state after one tick: %+v", k)
	}
}

func TestProfileValidate(t *testing.T) {
	if err := DefaultProfile.Validate(); err != nil {
		t.Fatalf("default profile invalid: %v", err)
	}

	bad := []func(*Profile){
		func(p *Profile) { p.Dampening = 0 },
		func(p *Profile) { p.Dampening = 1 },
		func(p *Profile) { p.Gravity = 0 },
		func(p *Profile) { p.BallRadius = -1 },
		func(p *Profile) { p.Nudge = -1 },
		func(p *Profile) { p.KickMin, p.KickMax = 2, -2 },
		func(p *Profile) { p.Policy = 9 },
		func(p *Profile) { p.Gravity = math.Inf(1) },
		func(p *Profile) { p.Gravity = math.NaN() },
		func(p *Profile) { p.BallRadius = math.Inf(1) },
		func(p *Profile) { p.Nudge = math.NaN() },
		func(p *Profile) { p.KickMax = math.Inf(1) },
		func(p *Profile) { p.SpawnY = math.NaN() },
	}
	for i, mutate := range bad {
		p := DefaultProfile
		mutate(&p)
		if err := p.Validate(); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}
}

func TestParseCollisionPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    CollisionPolicy
		wantErr bool
	}{
		{"", ResolveAll, false},
		{"all", ResolveAll, false},
		{"first", ResolveFirst, false},
		{"some", ResolveAll, true},
	}
	for _, tt := range tests {
		got, err := ParseCollisionPolicy(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseCollisionPolicy(%q) = %v, %v", tt.in, got, err)
		}
		if err == nil && got.String() != tt.in && tt.in != "" {
			t.Errorf("String round trip: %q -> %q", tt.in, got.String())
		}
	}
}
