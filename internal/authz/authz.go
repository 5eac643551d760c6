// Package authz defines role-based permissions as a pure mapping from role to
// allowed (action, resource) pairs. The mapping is rebuilt on every call, so
// no caller can mutate shared authorization state.
package authz

// Action is a coarse operation class on a resource.
type Action string

const (
	ActionRead  Action = "read"
	ActionWrite Action = "write"
)

// Resource names one API surface.
type Resource string

const (
	ResourceProducts   Resource = "products"
	ResourceInventory  Resource = "inventory"
	ResourceExpenses   Resource = "expenses"
	ResourceProduction Resource = "production"
	ResourceContacts   Resource = "contacts"
	ResourceSales      Resource = "sales"
	ResourcePurchases  Resource = "purchases"
	ResourceEmployees  Resource = "employees"
)

// Permission is one allowed (action, resource) pair.
type Permission struct {
	Action   Action
	Resource Resource
}

var allResources = []Resource{
	ResourceProducts, ResourceInventory, ResourceExpenses, ResourceProduction,
	ResourceContacts, ResourceSales, ResourcePurchases, ResourceEmployees,
}

// Permissions returns the capability set for a role. Unknown roles get an
// empty set.
//
// admin:   full read/write everywhere.
// manager: full read/write on operations, read-only on employees.
// staff:   read-only on operations, may record sales; no employee access.
func Permissions(role string) map[Permission]bool {
	perms := make(map[Permission]bool)
	switch role {
	case "admin":
		for _, r := range allResources {
			perms[Permission{ActionRead, r}] = true
			perms[Permission{ActionWrite, r}] = true
		}
	case "manager":
		for _, r := range allResources {
			perms[Permission{ActionRead, r}] = true
			if r != ResourceEmployees {
				perms[Permission{ActionWrite, r}] = true
			}
		}
	case "staff":
		for _, r := range allResources {
			if r == ResourceEmployees {
				continue
			}
			perms[Permission{ActionRead, r}] = true
		}
		perms[Permission{ActionWrite, ResourceSales}] = true
	}
	return perms
}

// Allowed reports whether the role may perform action on resource.
func Allowed(role string, action Action, resource Resource) bool {
	return Permissions(role)[Permission{action, resource}]
}
