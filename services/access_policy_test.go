package services

import (
	"testing"

	"github.com/akinalp/parkapp/config"
	"github.com/akinalp/parkapp/models"
	"github.com/akinalp/parkapp/pkg"
	"github.com/stretchr/testify/assert"
)

func adminOf(dept models.Department) *models.Account {
	return &models.Account{ID: "admin-" + string(dept), Role: models.RoleAdmin, Department: &dept}
}

func TestCanResolve(t *testing.T) {
	user := &models.Account{ID: "u1", Role: models.RoleUser}
	pending := &models.Complaint{Department: models.DeptCleaning, Status: models.StatusPending}
	resolved := &models.Complaint{Department: models.DeptCleaning, Status: models.StatusResolved}

	// Her birim için: sadece kendi birimi ve çözülmemiş şikayet.
	for _, dept := range models.Departments() {
		admin := adminOf(dept)
		assert.Equal(t, dept == models.DeptCleaning, CanResolve(admin, pending), dept)
		assert.False(t, CanResolve(admin, resolved), dept)
	}

	assert.False(t, CanResolve(user, pending))
	assert.False(t, CanResolve(nil, pending))
	assert.False(t, CanResolve(adminOf(models.DeptCleaning), nil))
}

func TestCanTransition(t *testing.T) {
	policy := NewAccessPolicy(nil, config.UserScopeAll)
	admin := adminOf(models.DeptSports)
	user := &models.Account{ID: "u1", Role: models.RoleUser}

	tests := []struct {
		name   string
		actor  *models.Account
		status models.ComplaintStatus
		dept   models.Department
		next   models.ComplaintStatus
		want   error
	}{
		{"pending to in progress", admin, models.StatusPending, models.DeptSports, models.StatusInProgress, nil},
		{"pending to resolved", admin, models.StatusPending, models.DeptSports, models.StatusResolved, nil},
		{"in progress to resolved", admin, models.StatusInProgress, models.DeptSports, models.StatusResolved, nil},
		{"backwards", admin, models.StatusInProgress, models.DeptSports, models.StatusPending, pkg.ErrBadRequest},
		{"same state", admin, models.StatusPending, models.DeptSports, models.StatusPending, pkg.ErrBadRequest},
		{"already resolved", admin, models.StatusResolved, models.DeptSports, models.StatusResolved, pkg.ErrForbidden},
		{"other department", admin, models.StatusPending, models.DeptRoads, models.StatusResolved, pkg.ErrForbidden},
		{"citizen", user, models.StatusPending, models.DeptSports, models.StatusResolved, pkg.ErrForbidden},
		{"anonymous", nil, models.StatusPending, models.DeptSports, models.StatusResolved, pkg.ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := policy.CanTransition(tt.actor, &models.Complaint{Department: tt.dept, Status: tt.status}, tt.next)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCanView(t *testing.T) {
	reporter := "u1"
	c := &models.Complaint{Department: models.DeptParks, ReporterID: &reporter}
	owner := &models.Account{ID: "u1", Role: models.RoleUser}
	other := &models.Account{ID: "u2", Role: models.RoleUser}

	all := NewAccessPolicy(nil, config.UserScopeAll)
	assert.True(t, all.CanView(other, c))
	assert.True(t, all.CanView(adminOf(models.DeptParks), c))
	assert.False(t, all.CanView(adminOf(models.DeptRoads), c))
	assert.False(t, all.CanView(nil, c))

	own := NewAccessPolicy(nil, config.UserScopeOwn)
	assert.True(t, own.CanView(owner, c))
	assert.False(t, own.CanView(other, c))
	assert.False(t, own.CanView(other, &models.Complaint{Department: models.DeptParks}))
}
