package domain

// Role labels shown in the UI; kept verbatim from the tool's Korean locale.
const (
	RoleAdmin = "관리자"
	RoleHR    = "HR 담당자"
)

// Account is one entry of the hard-coded login allow-list. The allow-list is
// a convenience gate for a single-team tool, not a security boundary.
type Account struct {
	Username     string
	PasswordHash string
	Role         string
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type AuthUsecase interface {
	Login(req LoginRequest) (*LoginResponse, error)
}
