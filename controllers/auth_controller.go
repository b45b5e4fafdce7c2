package controllers

import (
	"github.com/TuanAnh19122003/motoparts-storefront/utils"
	"github.com/gin-gonic/gin"
)

// LoginRequest carries the credentials forwarded to the remote auth API
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates against the remote auth endpoint and stores the
// returned user and token in the cookie session. The session is the only
// identity the storefront keeps; it is cleared again on logout.
func Login(c *gin.Context) {
	utils.LogInfo("Login called")

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid login payload: %v", err)
		utils.BadRequest(c, "Email and password are required", err.Error())
		return
	}

	user, token, err := shopAPI.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if utils.IsUnauthorizedError(err) {
			utils.LogError("Login attempt failed for %s", req.Email)
			utils.Unauthorized(c, "Invalid email or password")
			return
		}
		utils.LogError("Login request failed: %v", err)
		utils.BadGateway(c, "Login service unavailable", err.Error())
		return
	}

	if err := utils.SetSessionUser(c, user, token); err != nil {
		utils.LogError("Failed to store session for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to establish session", err.Error())
		return
	}

	utils.LogInfo("User %d logged in successfully", user.ID)
	utils.Success(c, "Logged in successfully", gin.H{
		"user": user,
	})
}

// Logout clears the stored session
func Logout(c *gin.Context) {
	if err := utils.ClearSession(c); err != nil {
		utils.LogError("Failed to clear session: %v", err)
		utils.InternalServerError(c, "Failed to logout", err.Error())
		return
	}
	utils.LogInfo("Session cleared on logout")
	utils.Success(c, "Logged out successfully", nil)
}
