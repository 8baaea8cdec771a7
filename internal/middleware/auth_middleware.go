package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	autherrors "go-ems/internal/auth/errors"
	"go-ems/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// bearerToken pulls the token from the Authorization header, falling back to
// the access_token cookie for browser clients.
func bearerToken(c *gin.Context) string {
	if token, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer "); found {
		return token
	}
	if cookie, err := c.Cookie("access_token"); err == nil {
		return cookie
	}
	return ""
}

func parseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

// AuthMiddleware validates the bearer token and loads its claims into the gin
// context. Expiry is the only invalidation mechanism; there is no revocation
// list, so a token is valid until its 24h exp passes.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token not found", nil)
			c.Abort()
			return
		}

		claims, err := parseToken(tokenString)
		if err != nil {
			errObj := autherrors.ErrInvalidToken
			if errors.Is(err, jwt.ErrTokenExpired) {
				errObj = autherrors.ErrTokenExpired
			}
			response.Error(c, errObj.HTTPStatus, errObj.Code, errObj.Message, nil)
			c.Abort()
			return
		}

		userID, _ := claims["user_id"].(string)
		if userID == "" {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "User ID not found in token", nil)
			c.Abort()
			return
		}

		employeeID, _ := claims["employee_id"].(string)
		role, _ := claims["role"].(string)
		if role == "" {
			role = "EMPLOYEE"
		}

		c.Set("user_id", userID)
		c.Set("employee_id", employeeID)
		c.Set("role", role)

		c.Next()
	}
}
