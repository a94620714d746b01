package v1

import (
	"net/http"
	"time"

	"github.com/hotel-booking/backend/internal/domain"

	"github.com/gin-gonic/gin"
)

func (h *Handler) initUsersRoutes(api *gin.RouterGroup) {
	users := api.Group("/users", h.userIdentityMiddleware)
	{
		users.GET("/data", h.getUserData)
		users.PUT("/update", h.updateUserProfile)
		users.DELETE("/delete", h.deleteOwnAccount)
		users.GET("/all", h.adminOnlyMiddleware, h.getAllUsers)
		users.DELETE("/:id", h.adminOnlyMiddleware, h.deleteUser)
	}
}

type userResponse struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Email             string     `json:"email"`
	Role              string     `json:"role"`
	IsAccountVerified bool       `json:"is_account_verified"`
	Phone             string     `json:"phone,omitempty"`
	Birthday          *time.Time `json:"birthday,omitempty"`
	Gender            string     `json:"gender,omitempty"`
	Address           string     `json:"address,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
} // @name User

func newUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:                u.ID.String(),
		Name:              u.Name,
		Email:             u.Email,
		Role:              string(u.Role),
		IsAccountVerified: u.IsAccountVerified,
		Phone:             u.Phone.String,
		Birthday:          u.Birthday,
		Gender:            string(u.Gender),
		Address:           u.Address.String,
		CreatedAt:         u.CreatedAt,
	}
}

type userDataResponse struct {
	Success  bool         `json:"success"`
	UserData userResponse `json:"userData"`
}

type usersListResponse struct {
	Success bool           `json:"success"`
	Users   []userResponse `json:"users"`
}

type updateProfileRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=100"`
	Phone    *string `json:"phone" binding:"omitempty,phonenumber"`
	Birthday *date   `json:"birthday"`
	Gender   *string `json:"gender" binding:"omitempty,oneof=male female other"`
	Address  *string `json:"address" binding:"omitempty,max=255"`
}

func (r updateProfileRequest) profile() domain.UserProfile {
	p := domain.UserProfile{
		Name:     r.Name,
		Phone:    r.Phone,
		Birthday: r.Birthday.timePtr(),
		Address:  r.Address,
	}
	if r.Gender != nil {
		gender := domain.Gender(*r.Gender)
		p.Gender = &gender
	}
	return p
}

// @Summary User data
// @Tags Users
// @Description Profile of the signed in user
// @ModuleID getUserData
// @Produce  json
// @Success 200 {object} userDataResponse
// @Failure 401 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Security UserAuth
// @Router /users/data [get]
func (h *Handler) getUserData(c *gin.Context) {
	userID, err := getUserUUID(c)
	if err != nil {
		abortWithMessage(c, http.StatusUnauthorized, unauthorizedMessage)
		return
	}

	user, err := h.services.Users.GetOneByID(c.Request.Context(), userID)
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, userDataResponse{Success: true, UserData: newUserResponse(user)})
}

// @Summary Update profile
// @Tags Users
// @Description Change profile fields of the signed in user
// @ModuleID updateUserProfile
// @Accept  json
// @Produce  json
// @Param input body updateProfileRequest true "profile patch"
// @Success 200 {object} userDataResponse
// @Failure 400 {object} ErrorStruct
// @Failure 401 {object} ErrorStruct
// @Security UserAuth
// @Router /users/update [put]
func (h *Handler) updateUserProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	userID, err := getUserUUID(c)
	if err != nil {
		abortWithMessage(c, http.StatusUnauthorized, unauthorizedMessage)
		return
	}

	user, err := h.services.Users.UpdateProfile(c.Request.Context(), userID, req.profile())
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, userDataResponse{Success: true, UserData: newUserResponse(user)})
}

// @Summary Delete own account
// @Tags Users
// @Description Delete the signed in account and end the session
// @ModuleID deleteOwnAccount
// @Produce  json
// @Success 200 {object} MessageResponse
// @Failure 401 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Security UserAuth
// @Router /users/delete [delete]
func (h *Handler) deleteOwnAccount(c *gin.Context) {
	userID, err := getUserUUID(c)
	if err != nil {
		abortWithMessage(c, http.StatusUnauthorized, unauthorizedMessage)
		return
	}

	if err := h.services.Users.Delete(c.Request.Context(), userID); err != nil {
		errorResponse(c, err)
		return
	}

	h.clearSessionCookie(c)
	messageResponse(c, "account deleted")
}

// @Summary All users
// @Tags Users
// @Description List every account
// @ModuleID getAllUsers
// @Produce  json
// @Success 200 {object} usersListResponse
// @Failure 401 {object} ErrorStruct
// @Failure 403 {object} ErrorStruct
// @Security AdminAuth
// @Router /users/all [get]
func (h *Handler) getAllUsers(c *gin.Context) {
	users, err := h.services.Users.GetAll(c.Request.Context())
	if err != nil {
		errorResponse(c, err)
		return
	}

	response := usersListResponse{Success: true, Users: make([]userResponse, 0, len(users))}
	for i := range users {
		response.Users = append(response.Users, newUserResponse(&users[i]))
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Delete user
// @Tags Users
// @Description Delete any account
// @ModuleID deleteUser
// @Produce  json
// @Param id path string true "user id"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorStruct
// @Failure 403 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Security AdminAuth
// @Router /users/{id} [delete]
func (h *Handler) deleteUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.services.Users.Delete(c.Request.Context(), id); err != nil {
		errorResponse(c, err)
		return
	}

	messageResponse(c, "user deleted")
}
