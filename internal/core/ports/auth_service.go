package ports

// LoginResult is returned by AuthService.Login on success.
type LoginResult struct {
	Token        string
	EmployeeName string
}

// AuthService verifies submitted credentials and mints sessions.
type AuthService interface {
	// Login checks employeeID/code against the current snapshot and, on a
	// match, creates a session. Unknown ids and wrong codes both yield
	// domain.ErrInvalidCredentials so callers cannot enumerate ids.
	Login(employeeID, code string) (*LoginResult, error)

	// Logout revokes the session behind the token.
	Logout(token string)
}
