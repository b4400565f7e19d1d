package echoapi

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/shulehq/shule/core/access"
)

var contextCredentialKey = "credential"

// requireSession extracts the bearer credential, rejects requests without a
// decodable one, and stashes it in the context for the handlers.
// The credential is only decoded, never verified; the directory backend is the
// authority and will reject a forged token on the profile fetch.
func requireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		header := ctx.Request().Header.Get(echo.HeaderAuthorization)
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return errUnauthorized
		}
		credential := strings.TrimSpace(parts[1])
		if _, err := access.DecodePrincipal(credential); err != nil {
			return errUnauthorized
		}
		ctx.Set(contextCredentialKey, credential)
		return next(ctx)
	}
}

func getContextCredential(ctx echo.Context) (string, error) {
	if credential, ok := ctx.Get(contextCredentialKey).(string); ok {
		return credential, nil
	}
	return "", errUnauthorized
}
