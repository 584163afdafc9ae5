package controllers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// jwtClaims representa o mínimo necessário para autenticação.
// O token é emitido pelo serviço de auth (fora deste backend) no padrão:
//   { "sub": <userId>, "email": "...", "iat": ..., "exp": ... }
type jwtClaims struct {
	Sub   int64  `json:"sub"`
	Email string `json:"email"`
	Exp   int64  `json:"exp"`
	Iat   int64  `json:"iat"`
}

const ctxClaimsKey = "auth_claims"

// AuthRequired validates the Bearer token and attaches its claims to the
// context. Token issuance lives elsewhere; here we only verify HS256.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(strings.ToLower(h), "bearer ") {
			RespondError(c, "unauthorized", http.StatusUnauthorized)
			c.Abort()
			return
		}
		token := strings.TrimSpace(h[len("Bearer "):])
		claims, ok := parseAndVerifyJWT(token, getJWTSecret())
		if !ok {
			RespondError(c, "unauthorized", http.StatusUnauthorized)
			c.Abort()
			return
		}
		if claims.Exp > 0 && time.Now().Unix() > claims.Exp {
			RespondError(c, "token expired", http.StatusUnauthorized)
			c.Abort()
			return
		}

		c.Set(ctxClaimsKey, claims)
		c.Next()
	}
}

// GetAuthClaims returns the claims loaded by AuthRequired.
func GetAuthClaims(c *gin.Context) (jwtClaims, bool) {
	v, ok := c.Get(ctxClaimsKey)
	if !ok {
		return jwtClaims{}, false
	}
	claims, ok := v.(jwtClaims)
	return claims, ok
}

// parseAndVerifyJWT verifies an HS256 JWT against our shared secret.
func parseAndVerifyJWT(token string, secret string) (jwtClaims, bool) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return jwtClaims{}, false
	}

	signingInput := parts[0] + "." + parts[1]
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(signingInput))
	sig := mac.Sum(nil)
	expected := base64.RawURLEncoding.EncodeToString(sig)

	if !hmac.Equal([]byte(expected), []byte(parts[2])) {
		return jwtClaims{}, false
	}

	payloadBytes, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return jwtClaims{}, false
	}

	var claims jwtClaims
	if err := json.Unmarshal(payloadBytes, &claims); err != nil {
		return jwtClaims{}, false
	}

	if claims.Sub == 0 {
		return jwtClaims{}, false
	}
	return claims, true
}
