package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arzonstar/storefront/internal/pkg/tgauth"
	"github.com/arzonstar/storefront/internal/server/http/dto"
)

const (
	// InitDataHeader carries the signed Mini App payload.
	InitDataHeader = "X-Telegram-Init-Data"
	// WebAppUserContextKey is a gin context key for the validated Mini App user.
	WebAppUserContextKey = "webAppUser"
)

// InitDataValidator verifies Telegram Mini App init data.
type InitDataValidator interface {
	Validate(initData string) (*tgauth.WebAppUser, error)
}

// ValidateInitData rejects requests carrying a forged init data header. A nil
// validator disables verification; requests without the header pass through
// untouched either way.
func ValidateInitData(v InitDataValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		initData := c.GetHeader(InitDataHeader)
		if initData == "" || v == nil {
			c.Next()
			return
		}

		user, err := v.Validate(initData)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid init data"})
			return
		}

		c.Set(WebAppUserContextKey, user)
		c.Next()
	}
}

// WebAppUser extracts the validated Mini App user from context, if any.
func WebAppUser(c *gin.Context) *tgauth.WebAppUser {
	val, ok := c.Get(WebAppUserContextKey)
	if !ok {
		return nil
	}
	user, _ := val.(*tgauth.WebAppUser)
	return user
}
