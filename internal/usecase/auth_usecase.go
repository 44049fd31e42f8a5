package usecase

import (
	"ats-backend/internal/domain"
	"ats-backend/pkg/apperror"
	"ats-backend/pkg/auth"

	"golang.org/x/crypto/bcrypt"
)

type authUsecase struct {
	accounts map[string]domain.Account
	tokens   *auth.TokenManager
}

func NewAuthUsecase(accounts []domain.Account, tokens *auth.TokenManager) domain.AuthUsecase {
	byName := make(map[string]domain.Account, len(accounts))
	for _, a := range accounts {
		byName[a.Username] = a
	}
	return &authUsecase{
		accounts: byName,
		tokens:   tokens,
	}
}

// DefaultAllowlist builds the hard-coded account set. Passwords are the
// tool's well-known defaults unless a bcrypt hash override is supplied
// (ADMIN_PASSWORD_HASH / HR_PASSWORD_HASH, see scripts/genhash.go).
func DefaultAllowlist(adminHash, hrHash string) []domain.Account {
	return []domain.Account{
		{Username: "admin", PasswordHash: hashOr(adminHash, "admin123"), Role: domain.RoleAdmin},
		{Username: "hr1", PasswordHash: hashOr(hrHash, "hr123"), Role: domain.RoleHR},
		{Username: "hr2", PasswordHash: hashOr(hrHash, "hr123"), Role: domain.RoleHR},
	}
}

func hashOr(override, defaultPassword string) string {
	if override != "" {
		return override
	}
	// MinCost: the allow-list is a convenience gate, not a security boundary
	hash, _ := bcrypt.GenerateFromPassword([]byte(defaultPassword), bcrypt.MinCost)
	return string(hash)
}

func (u *authUsecase) Login(req domain.LoginRequest) (*domain.LoginResponse, error) {
	account, ok := u.accounts[req.Username]
	if !ok {
		return nil, apperror.Unauthorized("잘못된 계정 정보입니다.")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperror.Unauthorized("잘못된 계정 정보입니다.")
	}

	token, err := u.tokens.Generate(account.Username, account.Role)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.LoginResponse{
		Token:    token,
		Username: account.Username,
		Role:     account.Role,
	}, nil
}
