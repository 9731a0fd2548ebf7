package auth

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// UserIDKey is the gin context key the auth middleware stores the acting
// user's id under.
const UserIDKey = "x-user-id"

type JWT struct {
	Secret string
}

func (j *JWT) CreateToken(userID int64) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(time.Hour * 3).Unix(),
	})

	return token.SignedString([]byte(j.Secret))
}

func (j *JWT) VerifyToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		return []byte(j.Secret), nil
	})

	if err != nil {
		slog.Error("Error verifying token", "error", err)
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid access token")
	}

	return token.Claims.(jwt.MapClaims), nil
}

func CreateTokenForUser(userID int64) (string, error) {
	j := JWT{Secret: os.Getenv("JWT_SECRET")}
	return j.CreateToken(userID)
}

func VerifyToken(token string) (jwt.MapClaims, error) {
	j := JWT{Secret: os.Getenv("JWT_SECRET")}
	return j.VerifyToken(token)
}

// GinJwtMiddleware resolves the acting user from the bearer token. Every
// operation that needs a user id reads it from the request context; there is
// no global session state.
func GinJwtMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		bearer := c.GetHeader("Authorization")

		if bearer == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"errors": []string{"Unauthorized request"},
			})

			c.Abort()
			return
		}

		if !strings.HasPrefix(bearer, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{
				"errors": []string{"Invalid authorization format"},
			})

			c.Abort()
			return
		}

		claims, err := VerifyToken(bearer[len("Bearer "):])

		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"errors": []string{"Unauthorized request", err.Error()},
			})
			c.Abort()
			return
		}

		rawID, ok := claims["user_id"].(float64)

		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{
				"errors": []string{"Unauthorized request"},
			})
			c.Abort()
			return
		}

		c.Set(UserIDKey, int64(rawID))
		c.Next()
	}
}

// CurrentUserID reads the id the middleware stored; ok is false on
// unauthenticated requests.
func CurrentUserID(c *gin.Context) (int64, bool) {
	raw, exists := c.Get(UserIDKey)

	if !exists {
		return 0, false
	}

	id, ok := raw.(int64)

	return id, ok
}
