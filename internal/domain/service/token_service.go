package service

// TokenService decodes bearer tokens issued by the auth collaborator.
type TokenService interface {
	// ValidateToken verifies the token and returns its subject, the user id in string form.
	ValidateToken(tokenString string) (string, error)
}
