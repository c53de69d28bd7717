package rbac

import "go-clocker/internal/domain"

// DefaultPolicies grants admins everything and employees access to their own
// attendance, leave and pay.
var DefaultPolicies = [][]string{
	{domain.RoleAdmin, "*", "*"},

	{domain.RoleEmployee, "attendance", "clock"},
	{domain.RoleEmployee, "attendance", "read"},
	{domain.RoleEmployee, "leave", "create"},
	{domain.RoleEmployee, "leave", "read"},
	{domain.RoleEmployee, "leave", "update"},
	{domain.RoleEmployee, "leave", "submit"},
	{domain.RoleEmployee, "leave", "delete"},
	{domain.RoleEmployee, "payroll", "calculate"},
	{domain.RoleEmployee, "payroll", "payslip"},
}
