package domain

type CtxKey string

const (
	KeyUsername CtxKey = "Username"
	KeyUserRole CtxKey = "Role"
)
