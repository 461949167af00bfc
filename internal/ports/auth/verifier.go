package auth

import "context"

// AuthVerifier verifica un token y devuelve claims o error.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// CredentialsVerifier autentica email/password contra el proveedor de identidad.
type CredentialsVerifier interface {
	SignIn(ctx context.Context, creds Credentials) (Claims, error)
}
