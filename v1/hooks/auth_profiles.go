package hooks

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/interpark/realty-api/services"
	"go.uber.org/zap"
)

// AuthGetAgentProfile returns the agent/landlord profile for a user
func AuthGetAgentProfile(
	accountsService *services.AccountsService,
	logger *zap.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile, err := accountsService.GetAgentProfile(c.Param("userId"))
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"profile": profile})
	}
}

type AuthUpdateAgentProfileReq struct {
	PhoneNumber          string `json:"phoneNumber"`
	NationalIDOrPassport string `json:"nationalIdOrPassport"`
	AgentNumber          string `json:"agentNumber"`
}

// AuthUpdateAgentProfile updates the contact details on an agent/landlord profile
func AuthUpdateAgentProfile(
	accountsService *services.AccountsService,
	logger *zap.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {

		var req AuthUpdateAgentProfileReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		profile, err := accountsService.UpdateAgentProfile(
			c.Param("userId"),
			req.PhoneNumber,
			req.NationalIDOrPassport,
			req.AgentNumber,
		)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "agent profile updated successfully",
			"agent":   profile,
		})

	}
}

// AuthGetClientProfile returns the client profile for a user
func AuthGetClientProfile(
	accountsService *services.AccountsService,
	logger *zap.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile, err := accountsService.GetClientProfile(c.Param("userId"))
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"profile": profile})
	}
}
