package v1

import (
	"net/http"
	"time"

	"github.com/hotel-booking/backend/internal/service"

	"github.com/gin-gonic/gin"
)

func (h *Handler) initAuthRoutes(api *gin.RouterGroup) {
	auth := api.Group("/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
		auth.POST("/logout", h.logout)
		auth.POST("/send-verify-otp", h.userIdentityMiddleware, h.sendVerifyOtp)
		auth.POST("/verify-email", h.userIdentityMiddleware, h.verifyEmail)
		auth.GET("/is-auth", h.userIdentityMiddleware, h.isAuthenticated)
		auth.POST("/send-reset-otp", h.sendResetOtp)
		auth.POST("/reset-password", h.resetPassword)
	}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=72"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type verifyEmailRequest struct {
	Otp string `json:"otp" binding:"required,numericcode"`
}

type sendResetOtpRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type resetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Otp         string `json:"otp" binding:"required,numericcode"`
	NewPassword string `json:"new_password" binding:"required,min=6,max=72"`
}

type sessionResponse struct {
	Success bool         `json:"success"`
	User    userResponse `json:"user"`
}

func (h *Handler) setSessionCookie(c *gin.Context, token string, ttl time.Duration) {
	if h.config.IsProduction() {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteStrictMode)
	}
	c.SetCookie(h.config.Auth.CookieName, token, int(ttl.Seconds()), "/", "", h.config.IsProduction(), true)
}

func (h *Handler) clearSessionCookie(c *gin.Context) {
	h.setSessionCookie(c, "", -time.Second)
}

// @Summary Register
// @Tags Auth
// @Description Create an account and start a session
// @ModuleID register
// @Accept  json
// @Produce  json
// @Param input body registerRequest true "account"
// @Success 201 {object} sessionResponse
// @Failure 400 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /auth/register [post]
func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	session, err := h.services.Auth.Register(c.Request.Context(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		errorResponse(c, err)
		return
	}

	h.setSessionCookie(c, session.Token, session.TTL)
	c.JSON(http.StatusCreated, sessionResponse{Success: true, User: newUserResponse(session.User)})
}

// @Summary Login
// @Tags Auth
// @Description Start a session with email and password
// @ModuleID login
// @Accept  json
// @Produce  json
// @Param input body loginRequest true "credentials"
// @Success 200 {object} sessionResponse
// @Failure 400 {object} ErrorStruct
// @Failure 401 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	session, err := h.services.Auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		errorResponse(c, err)
		return
	}

	h.setSessionCookie(c, session.Token, session.TTL)
	c.JSON(http.StatusOK, sessionResponse{Success: true, User: newUserResponse(session.User)})
}

// @Summary Logout
// @Tags Auth
// @Description Clear the session cookie
// @ModuleID logout
// @Produce  json
// @Success 200 {object} MessageResponse
// @Router /auth/logout [post]
func (h *Handler) logout(c *gin.Context) {
	h.clearSessionCookie(c)
	messageResponse(c, "logged out")
}

// @Summary Send verification code
// @Tags Auth
// @Description Email a one time code for account verification
// @ModuleID sendVerifyOtp
// @Produce  json
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorStruct
// @Failure 401 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Security UserAuth
// @Router /auth/send-verify-otp [post]
func (h *Handler) sendVerifyOtp(c *gin.Context) {
	userID, err := getUserUUID(c)
	if err != nil {
		abortWithMessage(c, http.StatusUnauthorized, unauthorizedMessage)
		return
	}

	if err := h.services.Auth.SendVerifyOtp(c.Request.Context(), userID); err != nil {
		errorResponse(c, err)
		return
	}

	messageResponse(c, "verification code sent")
}

// @Summary Verify email
// @Tags Auth
// @Description Verify the account with the emailed code
// @ModuleID verifyEmail
// @Accept  json
// @Produce  json
// @Param input body verifyEmailRequest true "code"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorStruct
// @Failure 401 {object} ErrorStruct
// @Failure 429 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Security UserAuth
// @Router /auth/verify-email [post]
func (h *Handler) verifyEmail(c *gin.Context) {
	var req verifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	userID, err := getUserUUID(c)
	if err != nil {
		abortWithMessage(c, http.StatusUnauthorized, unauthorizedMessage)
		return
	}

	if err := h.services.Auth.VerifyEmail(c.Request.Context(), userID, req.Otp); err != nil {
		errorResponse(c, err)
		return
	}

	messageResponse(c, "email verified")
}

// @Summary Is authenticated
// @Tags Auth
// @Description Check the current session
// @ModuleID isAuthenticated
// @Produce  json
// @Success 200 {object} sessionResponse
// @Failure 401 {object} ErrorStruct
// @Security UserAuth
// @Router /auth/is-auth [get]
func (h *Handler) isAuthenticated(c *gin.Context) {
	userID, err := getUserUUID(c)
	if err != nil {
		abortWithMessage(c, http.StatusUnauthorized, unauthorizedMessage)
		return
	}

	user, err := h.services.Auth.IsAuthenticated(c.Request.Context(), userID)
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, sessionResponse{Success: true, User: newUserResponse(user)})
}

// @Summary Send password reset code
// @Tags Auth
// @Description Email a one time code for password reset
// @ModuleID sendResetOtp
// @Accept  json
// @Produce  json
// @Param input body sendResetOtpRequest true "email"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /auth/send-reset-otp [post]
func (h *Handler) sendResetOtp(c *gin.Context) {
	var req sendResetOtpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	if err := h.services.Auth.SendResetOtp(c.Request.Context(), req.Email); err != nil {
		errorResponse(c, err)
		return
	}

	messageResponse(c, "password reset code sent")
}

// @Summary Reset password
// @Tags Auth
// @Description Set a new password with the emailed code
// @ModuleID resetPassword
// @Accept  json
// @Produce  json
// @Param input body resetPasswordRequest true "reset"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 429 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /auth/reset-password [post]
func (h *Handler) resetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	if err := h.services.Auth.ResetPassword(c.Request.Context(), req.Email, req.Otp, req.NewPassword); err != nil {
		errorResponse(c, err)
		return
	}

	messageResponse(c, "password has been reset")
}
