package game

import (
	"testing"
)

func TestRoleFaction(t *testing.T) {
	tests := []struct {
		role Role
		want Faction
	}{
		{RoleMerlin, FactionGood},
		{RolePercival, FactionGood},
		{RoleServant, FactionGood},
		{RoleMinion, FactionEvil},
		{RoleAssassin, FactionEvil},
		{RoleMordred, FactionEvil},
		{RoleOberon, FactionEvil},
	}

	for _, tt := range tests {
		if got := tt.role.Faction(); got != tt.want {
			t.Errorf("%s: expected faction %s, got %s", tt.role, tt.want, got)
		}
	}
}

func TestBaseDistribution(t *testing.T) {
	tests := []struct {
		playerCount int
		wantEvil    int
	}{
		{5, 2},
		{6, 2},
		{7, 3},
		{8, 3},
		{9, 3},
		{10, 4},
	}

	for _, tt := range tests {
		dist := BaseDistribution(tt.playerCount)
		if dist == nil {
			t.Fatalf("%d players: expected a distribution", tt.playerCount)
		}
		if len(dist) != tt.playerCount {
			t.Errorf("%d players: expected %d roles, got %d", tt.playerCount, tt.playerCount, len(dist))
		}

		evil := 0
		merlins := 0
		assassins := 0
		for _, r := range dist {
			if r.Faction() == FactionEvil {
				evil++
			}
			if r == RoleMerlin {
				merlins++
			}
			if r == RoleAssassin {
				assassins++
			}
		}
		if evil != tt.wantEvil {
			t.Errorf("%d players: expected %d evil, got %d", tt.playerCount, tt.wantEvil, evil)
		}
		if merlins != 1 || assassins != 1 {
			t.Errorf("%d players: expected 1 Merlin and 1 Assassin, got %d and %d", tt.playerCount, merlins, assassins)
		}

		if !ValidateRoleSet(tt.playerCount, dist) {
			t.Errorf("%d players: base distribution should validate", tt.playerCount)
		}
	}
}

func TestBaseDistributionUnsupportedCounts(t *testing.T) {
	for _, count := range []int{0, 1, 4, 11, -3} {
		if dist := BaseDistribution(count); dist != nil {
			t.Errorf("%d players: expected no distribution, got %v", count, dist)
		}
	}
}

func TestBaseDistributionReturnsCopy(t *testing.T) {
	dist := BaseDistribution(5)
	dist[0] = RoleOberon

	if BaseDistribution(5)[0] != RoleMerlin {
		t.Error("mutating a returned distribution leaked into the table")
	}
}

func TestOptionalRolesFor(t *testing.T) {
	tests := []struct {
		playerCount int
		want        []Role
	}{
		{5, []Role{RolePercival}},
		{6, []Role{RolePercival}},
		{7, []Role{RolePercival, RoleMordred}},
		{9, []Role{RolePercival, RoleMordred}},
		{10, []Role{RolePercival, RoleMordred, RoleOberon}},
		{4, nil},
	}

	for _, tt := range tests {
		got := OptionalRolesFor(tt.playerCount)
		if len(got) != len(tt.want) {
			t.Errorf("%d players: expected %v, got %v", tt.playerCount, tt.want, got)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("%d players: expected %v, got %v", tt.playerCount, tt.want, got)
				break
			}
		}
	}
}

func TestValidateRoleSet(t *testing.T) {
	tests := []struct {
		name        string
		playerCount int
		roles       []Role
		want        bool
	}{
		{
			"valid base five",
			5,
			[]Role{RoleMerlin, RoleServant, RoleServant, RoleAssassin, RoleMinion},
			true,
		},
		{
			"valid with percival",
			5,
			[]Role{RoleMerlin, RolePercival, RoleServant, RoleAssassin, RoleMinion},
			true,
		},
		{
			"wrong size",
			5,
			[]Role{RoleMerlin, RoleServant, RoleAssassin, RoleMinion},
			false,
		},
		{
			"missing merlin",
			5,
			[]Role{RoleServant, RoleServant, RoleServant, RoleAssassin, RoleMinion},
			false,
		},
		{
			"missing assassin",
			5,
			[]Role{RoleMerlin, RoleServant, RoleServant, RoleMinion, RoleMinion},
			false,
		},
		{
			"two merlins",
			5,
			[]Role{RoleMerlin, RoleMerlin, RoleServant, RoleAssassin, RoleMinion},
			false,
		},
		{
			"too many evil",
			5,
			[]Role{RoleMerlin, RoleServant, RoleAssassin, RoleMinion, RoleMinion},
			false,
		},
		{
			"unsupported count",
			4,
			[]Role{RoleMerlin, RoleServant, RoleAssassin, RoleMinion},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateRoleSet(tt.playerCount, tt.roles); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestRoleDisplayMetadata(t *testing.T) {
	roles := []Role{RoleMerlin, RolePercival, RoleServant, RoleMinion, RoleAssassin, RoleMordred, RoleOberon}
	for _, r := range roles {
		if r.DisplayName() == "" {
			t.Errorf("%s: empty display name", r)
		}
		if r.Description() == "" {
			t.Errorf("%s: empty description", r)
		}
	}
}
