package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/hotel-booking/backend/internal/domain"
	"github.com/hotel-booking/backend/pkg/auth"
	"github.com/hotel-booking/backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	authorizationHeader = "Authorization"
	identityCtx         = "identity"
)

var errNoToken = errors.New("no session token")

func (h *Handler) userIdentityMiddleware(c *gin.Context) {
	identity, err := h.parseSession(c)
	if err != nil {
		if !errors.Is(err, errNoToken) && !errors.Is(err, jwt.ErrTokenExpired) {
			logger.Warn("parse session token failed", zap.Error(err))
		}
		abortWithMessage(c, http.StatusUnauthorized, unauthorizedMessage)
		return
	}

	c.Set(identityCtx, identity)
}

// optionalUserIdentityMiddleware sets the identity when a valid token is present and never aborts.
func (h *Handler) optionalUserIdentityMiddleware(c *gin.Context) {
	identity, err := h.parseSession(c)
	if err == nil {
		c.Set(identityCtx, identity)
	}
}

// adminOnlyMiddleware must run after userIdentityMiddleware.
func (h *Handler) adminOnlyMiddleware(c *gin.Context) {
	identity, ok := getIdentity(c)
	if !ok || identity.Role != string(domain.RoleAdmin) {
		abortWithMessage(c, http.StatusForbidden, forbiddenMessage)
		return
	}
}

// parseSession reads the token from the session cookie, falling back to a Bearer header.
func (h *Handler) parseSession(c *gin.Context) (*auth.Identity, error) {
	token, err := c.Cookie(h.config.Auth.CookieName)
	if err != nil || token == "" {
		token, err = parseAuthHeader(c.GetHeader(authorizationHeader))
		if err != nil {
			return nil, err
		}
	}

	return h.tokenManager.Parse(token)
}

func parseAuthHeader(header string) (string, error) {
	if header == "" {
		return "", errNoToken
	}

	headerParts := strings.Split(header, " ")
	if len(headerParts) != 2 || headerParts[0] != "Bearer" {
		return "", errors.New("invalid auth header")
	}

	if len(headerParts[1]) == 0 {
		return "", errors.New("token is empty")
	}

	return headerParts[1], nil
}

func getIdentity(c *gin.Context) (*auth.Identity, bool) {
	value, ok := c.Get(identityCtx)
	if !ok {
		return nil, false
	}
	identity, ok := value.(*auth.Identity)
	return identity, ok
}

func getUserUUID(c *gin.Context) (uuid.UUID, error) {
	identity, ok := getIdentity(c)
	if !ok {
		return uuid.Nil, errors.New("user id not found")
	}
	return identity.UserID, nil
}

func isAdmin(c *gin.Context) bool {
	identity, ok := getIdentity(c)
	return ok && identity.Role == string(domain.RoleAdmin)
}

func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortWithMessage(c, http.StatusBadRequest, invalidIDMessage)
		return uuid.Nil, false
	}
	return id, true
}
