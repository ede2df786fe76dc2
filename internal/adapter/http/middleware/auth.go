package middleware

import (
	"errors"
	"net/http"
	"strings"

	"smartmenu/internal/infrastructure/auth"
	"smartmenu/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const claimsContextKey = "auth.claims"

var (
	errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid token", http.StatusUnauthorized)
	errForbidden    = pkg.NewDomainErrorSimple("FORBIDDEN", "Insufficient role", http.StatusForbidden)
)

// TokenVerifier validates bearer tokens.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// RequireRole rejects requests without a valid bearer token carrying one of
// roles. The verified claims are stored in the gin context.
func RequireRole(verifier TokenVerifier, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := logrus.WithFields(logrus.Fields{"component": "auth", "layer": "middleware", "path": c.FullPath()})

		tokenStr, err := extractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			log.WithError(err).Info("request without token")
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		claims, err := verifier.Verify(tokenStr)
		if err != nil {
			log.WithError(err).Info("token rejected")
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		for _, role := range roles {
			if claims.HasRole(role) {
				c.Set(claimsContextKey, claims)
				c.Next()
				return
			}
		}

		log.WithField("subject", claims.Subject).Info("role missing")
		c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
	}
}

// ClaimsFrom returns the claims stored by RequireRole.
func ClaimsFrom(c *gin.Context) (*auth.Claims, bool) {
	v, ok := c.Get(claimsContextKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}

func extractBearerToken(header string) (string, error) {
	if header == "" {
		return "", errors.New("authorization header missing")
	}
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", errors.New("invalid authorization format")
	}
	return parts[1], nil
}
