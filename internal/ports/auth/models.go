package auth

// Claims representa la sesión admin activa.
type Claims struct {
	Username string
	Admin    bool
}
