package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lcdc/selections-go/models"
	"github.com/lcdc/selections-go/response"
	"github.com/lcdc/selections-go/types"
)

// Staff restricts a route to OWNER and SALESPERSON callers. The service
// layer re-checks every operation against its policy table; this keeps
// staff-only routes from reaching it at all.
func Staff() gin.HandlerFunc {
	return func(c *gin.Context) {
		claimsVal, exists := c.Get("claims")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
			return
		}
		claims, ok := claimsVal.(*types.Claims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid token claims"})
			return
		}
		if !models.UserRole(claims.Role).IsStaff() {
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Error: "forbidden"})
			return
		}
		c.Next()
	}
}
