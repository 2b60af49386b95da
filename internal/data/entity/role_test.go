package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleRank(t *testing.T) {
	assert.Equal(t, 0, RoleLearner.Rank())
	assert.Equal(t, 1, RoleInstructor.Rank())
	assert.Equal(t, 2, RoleAdmin.Rank())
	assert.Equal(t, -1, Role("superuser").Rank())
	assert.Equal(t, -1, Role("").Rank())
}

// Authorization passes exactly when the actual role ranks at or above the
// required minimum.
func TestRoleOrdering(t *testing.T) {
	tests := []struct {
		name    string
		minimum Role
		actual  Role
		allowed bool
	}{
		{"learner meets learner", RoleLearner, RoleLearner, true},
		{"instructor meets learner", RoleLearner, RoleInstructor, true},
		{"admin meets learner", RoleLearner, RoleAdmin, true},
		{"learner below instructor", RoleInstructor, RoleLearner, false},
		{"instructor meets instructor", RoleInstructor, RoleInstructor, true},
		{"admin meets instructor", RoleInstructor, RoleAdmin, true},
		{"learner below admin", RoleAdmin, RoleLearner, false},
		{"instructor below admin", RoleAdmin, RoleInstructor, false},
		{"admin meets admin", RoleAdmin, RoleAdmin, true},
		{"unknown role below everything", RoleLearner, Role("ghost"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.actual.Rank() >= tt.minimum.Rank())
		})
	}
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleLearner.Valid())
	assert.True(t, RoleInstructor.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role("Admin").Valid())
	assert.False(t, Role("").Valid())
}
