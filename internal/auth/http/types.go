package http

import "github.com/prajwalpc099d/ProjectVault/internal/auth/service"

// Handler bundles the dependencies for auth HTTP endpoints.
type Handler struct {
	authService *service.AuthService
}

func New(authService *service.AuthService) *Handler {
	return &Handler{authService: authService}
}

type registerReq struct {
	Role      string `json:"role"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	// Role-specific fields, optional.
	Department string `json:"department"`
	Position   string `json:"position"`
	EmployeeID string `json:"employeeId"`
	Enrollment string `json:"enrollment"`
	Course     string `json:"course"`
	Year       string `json:"year"`
}

type updateProfileReq struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Department string `json:"department"`
	Position   string `json:"position"`
	Enrollment string `json:"enrollment"`
	Course     string `json:"course"`
	Year       string `json:"year"`
}

type changeRoleReq struct {
	Role string `json:"role"`
}
