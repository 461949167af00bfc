package auth

// Claims representa la identidad autenticada (por token o por credenciales).
type Claims struct {
	UserID string
	Email  string
	Role   string
}

// Credentials es el par email/password que acepta el trigger de sincronización.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
