package utils

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/forms-go/pkg/types"
)

var ErrNoClaims = errors.New("user claims not found in context")

func claimsFromContext(c *gin.Context) (*types.Claims, error) {
	claimsVal, exists := c.Get("claims")
	if !exists {
		return nil, ErrNoClaims
	}

	claims, ok := claimsVal.(*types.Claims)
	if !ok {
		return nil, errors.New("invalid user claims type")
	}
	return claims, nil
}

var GetUserIDFromContext = func(c *gin.Context) (uint, error) {
	claims, err := claimsFromContext(c)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}

var GetUserNameFromContext = func(c *gin.Context) (string, error) {
	claims, err := claimsFromContext(c)
	if err != nil {
		return "", err
	}
	return claims.Username, nil
}

// IsAdminFromContext reports the admin flag of the authenticated user.
func IsAdminFromContext(c *gin.Context) bool {
	claims, err := claimsFromContext(c)
	if err != nil {
		return false
	}
	return claims.IsAdmin
}
