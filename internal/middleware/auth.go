package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/corebeautylab/salon-scheduler/internal/config"
)

const (
	ContextOperatorID = "operatorID"
	ContextToken      = "sessionToken"
	ContextTokenExp   = "sessionTokenExp"
)

// TokenBlacklist is the logout revocation check; nil skips it.
type TokenBlacklist interface {
	IsBlacklisted(ctx context.Context, token string) bool
}

func AuthMiddleware(cfg *config.Config, blacklist TokenBlacklist) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error_code": "not_authenticated"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error_code": "invalid_authorization_header"})
			return
		}

		tokenString := parts[1]

		if blacklist != nil && blacklist.IsBlacklisted(c.Request.Context(), tokenString) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error_code": "session_revoked"})
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error_code": "invalid_token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error_code": "invalid_token_claims"})
			return
		}

		operatorID, ok := claims["sub"].(string)
		if !ok || operatorID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error_code": "invalid_token_payload"})
			return
		}

		c.Set(ContextOperatorID, operatorID)
		c.Set(ContextToken, tokenString)
		if exp, ok := claims["exp"].(float64); ok {
			c.Set(ContextTokenExp, time.Unix(int64(exp), 0))
		}

		c.Next()
	}
}
