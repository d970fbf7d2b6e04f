package hooks

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/interpark/realty-api/services"
	"go.uber.org/zap"
)

type AuthRegisterReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Avatar   string `json:"avatar"`
}

// AuthRegister creates a new account and its role profile
func AuthRegister(
	accountsService *services.AccountsService,
	logger *zap.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {

		// Get the request body
		var req AuthRegisterReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "all fields are required: username, email, password, and role"})
			return
		}

		// Register the account
		user, err := accountsService.Register(&services.RegisterInfo{
			Username: req.Username,
			Email:    req.Email,
			Password: req.Password,
			Role:     req.Role,
			Avatar:   req.Avatar,
		})
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "user registered successfully",
			"user":    user,
		})

	}
}
