package middleware

import (
	"net/http"
	"strings"

	"github.com/erickbalderas17/rastro-pollos/internal/apierror"
	"github.com/erickbalderas17/rastro-pollos/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
)

const ClaimsKey = "claims"

// JWTClaims is what AuthService signs into every session token. Tipo tells
// access tokens apart from refresh tokens.
type JWTClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Rol      string `json:"rol"`
	Tipo     string `json:"tipo"`
	jwt.RegisteredClaims
}

// JWTAuth admits requests carrying a valid access token for the caja or
// bascula terminals and stores its claims under ClaimsKey.
func JWTAuth(secret string) gin.HandlerFunc {
	keyFunc := func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	}
	return func(c *gin.Context) {
		raw, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Autenticacion requerida"))
			return
		}
		claims := &JWTClaims{}
		token, err := jwt.ParseWithClaims(raw, claims, keyFunc)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Token invalido o expirado"))
			return
		}
		if claims.Tipo != model.TokenAcceso {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Use el access token; el refresh token solo renueva la sesion"))
			return
		}
		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// bearerToken extracts the token of an "Authorization: Bearer <token>" header.
// The scheme is matched case-insensitively.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// RequireRole lets through only the terminals whose role is listed; the
// scale station gets 403 on cashier routes.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil || !allowed[claims.Rol] {
			ev := log.Warn().Str("path", c.FullPath()).Str("request_id", c.GetString(RequestIDKey))
			if claims != nil {
				ev = ev.Str("username", claims.Username).Str("rol", claims.Rol)
			}
			ev.Msg("acceso denegado por rol")
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("Permisos insuficientes"))
			return
		}
		c.Next()
	}
}

func GetClaims(c *gin.Context) *JWTClaims {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*JWTClaims)
	return claims
}
