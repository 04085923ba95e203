package http

import (
	"time"

	"swiftdrop/internal/core/application/usecases/queries"

	"github.com/golang-jwt/jwt/v5"
)

const tokenLifetime = 24 * time.Hour

// issueToken signs an HS256 token for the authenticated account. Tokens are
// returned to clients on login; no route currently enforces them.
func (s *Server) issueToken(profile queries.AuthenticateQueryResponse) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   profile.ID.String(),
		"phone": profile.Phone,
		"kind":  string(profile.Kind),
		"iat":   now.Unix(),
		"exp":   now.Add(tokenLifetime).Unix(),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtSecret))
}
