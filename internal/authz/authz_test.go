package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowed(t *testing.T) {
	cases := []struct {
		role     string
		action   Action
		resource Resource
		want     bool
	}{
		{"admin", ActionWrite, ResourceEmployees, true},
		{"admin", ActionRead, ResourceSales, true},

		{"manager", ActionWrite, ResourceProduction, true},
		{"manager", ActionRead, ResourceEmployees, true},
		{"manager", ActionWrite, ResourceEmployees, false},

		{"staff", ActionRead, ResourceProducts, true},
		{"staff", ActionWrite, ResourceSales, true},
		{"staff", ActionWrite, ResourceProducts, false},
		{"staff", ActionRead, ResourceEmployees, false},

		{"", ActionRead, ResourceProducts, false},
		{"superuser", ActionWrite, ResourceProducts, false},
	}
	for _, c := range cases {
		got := Allowed(c.role, c.action, c.resource)
		assert.Equal(t, c.want, got, "%s %s %s", c.role, c.action, c.resource)
	}
}

func TestPermissions_ReturnsFreshMap(t *testing.T) {
	first := Permissions("staff")
	first[Permission{ActionWrite, ResourceEmployees}] = true

	assert.False(t, Allowed("staff", ActionWrite, ResourceEmployees))
	assert.NotEqual(t, first, Permissions("staff"))
}
