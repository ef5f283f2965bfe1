package middleware

import (
	"strings"

	"skillswitch-service/src/internal/model"
	httpError "skillswitch-service/src/pkg/http-error"
	"skillswitch-service/src/pkg/log"
	"skillswitch-service/src/pkg/token"
	"skillswitch-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

const authLocalsKey = "auth"

// VerifyBearer accepts a signed token only while its session is still registered in Redis.
func VerifyBearer(v *viper.Viper, rdb redis.UniversalClient) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		raw := BearerToken(ctx)
		if raw == "" {
			return unauthorized(ctx, "missing bearer token")
		}
		claim, err := token.Parse(v.GetString("auth.jwt.secret"), raw)
		if err != nil {
			return unauthorized(ctx, err.Error())
		}

		owner, err := rdb.Get(ctx.Context(), token.SessionKey(claim.ID)).Result()
		if err != nil {
			if err != redis.Nil {
				log.GetLogger().Error("auth-middleware", err.Error(), "VerifyBearer", claim.ID)
			}
			return unauthorized(ctx, "session expired, please sign in again")
		}
		if owner != claim.Metadata.UserID {
			return unauthorized(ctx, "session expired, please sign in again")
		}

		ctx.Locals(authLocalsKey, &model.Auth{
			UserID:    claim.Metadata.UserID,
			FullName:  claim.Metadata.FullName,
			SessionID: claim.ID,
		})
		return ctx.Next()
	}
}

// BearerToken returns the raw token from the Authorization header, or "".
func BearerToken(ctx *fiber.Ctx) string {
	header := strings.TrimSpace(ctx.Get(fiber.HeaderAuthorization))
	if len(header) < 7 || !strings.EqualFold(header[:7], "bearer ") {
		return ""
	}
	return strings.TrimSpace(header[7:])
}

func GetUser(ctx *fiber.Ctx) *model.Auth {
	auth, _ := ctx.Locals(authLocalsKey).(*model.Auth)
	if auth == nil {
		return &model.Auth{}
	}
	return auth
}

func unauthorized(ctx *fiber.Ctx, message string) error {
	errObj := httpError.NewUnauthorized()
	errObj.Message = message
	return utils.ResponseError(errObj, ctx)
}
