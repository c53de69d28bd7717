package rbac_test

import (
	"testing"

	"go-clocker/internal/domain"
	"go-clocker/internal/rbac"
	"go-clocker/internal/rbac/infra"

	"github.com/stretchr/testify/assert"
)

func newTestService(t *testing.T) rbac.Service {
	enforcer, err := infra.NewEnforcer(rbac.DefaultPolicies)
	assert.NoError(t, err)
	return rbac.NewService(enforcer, rbac.DefaultPolicies)
}

func TestRBACService_Enforce(t *testing.T) {
	service := newTestService(t)

	cases := []struct {
		name    string
		req     domain.EnforceRequest
		allowed bool
	}{
		{"admin reads reports", domain.EnforceRequest{Role: domain.RoleAdmin, Resource: "report", Action: "read"}, true},
		{"admin issues qr", domain.EnforceRequest{Role: domain.RoleAdmin, Resource: "attendance", Action: "qr_issue"}, true},
		{"employee clocks", domain.EnforceRequest{Role: domain.RoleEmployee, Resource: "attendance", Action: "clock"}, true},
		{"employee calculates own pay", domain.EnforceRequest{Role: domain.RoleEmployee, Resource: "payroll", Action: "calculate"}, true},
		{"employee cannot read all attendance", domain.EnforceRequest{Role: domain.RoleEmployee, Resource: "attendance", Action: "read_all"}, false},
		{"employee cannot approve leave", domain.EnforceRequest{Role: domain.RoleEmployee, Resource: "leave", Action: "approve"}, false},
		{"employee cannot read reports", domain.EnforceRequest{Role: domain.RoleEmployee, Resource: "report", Action: "read"}, false},
		{"unknown role", domain.EnforceRequest{Role: "GUEST", Resource: "attendance", Action: "clock"}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			allowed, err := service.Enforce(tc.req)
			assert.NoError(t, err)
			assert.Equal(t, tc.allowed, allowed)
		})
	}
}

func TestRBACService_Permissions(t *testing.T) {
	service := newTestService(t)

	perms := service.Permissions(domain.RoleEmployee)
	assert.Contains(t, perms, domain.PermissionResponse{Resource: "attendance", Action: "clock"})
	assert.NotContains(t, perms, domain.PermissionResponse{Resource: "*", Action: "*"})

	assert.Empty(t, service.Permissions("GUEST"))
}
