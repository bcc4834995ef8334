package routing

import (
	"testing"

	"github.com/akinalp/parkapp/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDepartmentFor_EveryIssueTypeMapsToKnownDepartment(t *testing.T) {
	types := IssueTypes()
	require.Len(t, types, 24)

	perDept := make(map[models.Department]int)
	for _, it := range types {
		dept := DepartmentFor(it)
		assert.True(t, dept.Valid(), "issue type %q routed to unknown department %q", it, dept)
		assert.True(t, IsKnown(it))
		perDept[dept]++
	}

	require.Len(t, perDept, 6)
	for _, dept := range models.Departments() {
		assert.Equal(t, 4, perDept[dept], dept)
		assert.Len(t, IssueTypesFor(dept), 4, dept)
	}
}

func TestDepartmentFor_UnknownFallsBack(t *testing.T) {
	assert.Equal(t, models.DeptEnvironment, DepartmentFor("unknown-type"))
	assert.Equal(t, models.DeptEnvironment, DepartmentFor(""))
	assert.False(t, IsKnown("unknown-type"))
}

func TestDepartmentFor_Samples(t *testing.T) {
	tests := []struct {
		issueType string
		want      models.Department
	}{
		{"Kırık Bank", models.DeptEnvironment},
		{"Sokak Lambası Kırık", models.DeptLighting},
		{"Sulama Sistemi", models.DeptParks},
		{"Hijyen Problemi", models.DeptCleaning},
		{"Yol Arızası", models.DeptRoads},
		{"Fitness Aleti Kırık", models.DeptSports},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DepartmentFor(tt.issueType), tt.issueType)
	}
}

func TestIssueTypes_ReturnsCopy(t *testing.T) {
	types := IssueTypes()
	types[0] = "changed"
	assert.Equal(t, "Kırık Bank", IssueTypes()[0])
}
