package middlewares

import (
	"net/http"

	"github.com/Abtahee-2104089/hackathon-CUET/models"
	"github.com/gin-gonic/gin"
)

func requireRole(message string, roles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, ok := CurrentUser(ctx)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "User not found in context"})
			return
		}

		for _, role := range roles {
			if user.Role == role {
				ctx.Next()
				return
			}
		}
		ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": message})
	}
}

func RequireStudent() gin.HandlerFunc {
	return requireRole("Access denied. Student rights required.", models.RoleStudent, models.RoleAdmin)
}

func RequireVendor() gin.HandlerFunc {
	return requireRole("Access denied. Vendor rights required.", models.RoleVendor, models.RoleAdmin)
}

func RequireAdmin() gin.HandlerFunc {
	return requireRole("Access denied. Admin rights required.", models.RoleAdmin)
}
