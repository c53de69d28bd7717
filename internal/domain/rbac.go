package domain

const (
	RoleAdmin    = "ADMIN"
	RoleEmployee = "EMPLOYEE"
)

func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleEmployee
}

type EnforceRequest struct {
	Role     string `json:"role"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}

type PermissionResponse struct {
	Resource string `json:"resource"`
	Action   string `json:"action"`
}
