// internal/middleware/recovery_middleware.go
package middleware

import (
	"fmt"

	"github.com/25ayu25/BGC-MedicalManagementSystem/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RecoveryMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("panic recovered",
					zap.Any("error", err),
					zap.String("path", c.Request.URL.Path),
				)
				response.ServerError(c, fmt.Errorf("%v", err))
			}
		}()
		c.Next()
	}
}
