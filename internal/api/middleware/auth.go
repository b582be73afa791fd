package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/taking/backoffice/internal/api/metrics"
	"github.com/taking/backoffice/internal/core/domain"
	"github.com/taking/backoffice/internal/core/ports"
	"github.com/taking/backoffice/internal/core/token"
)

const bearerScheme = "Bearer "

// Auth is the per-request gatekeeper. A request without a bearer token
// passes through anonymous; the access policy decides whether that is
// acceptable for the route. A request that does present a token must
// present a valid one: decode failure, an unresolvable subject or a
// disabled account abort the request with an authentication error.
//
// The subject is re-resolved from the store on every request so that
// deleting or disabling an account revokes access immediately, at the cost
// of one lookup per authenticated request.
func Auth(codec *token.Codec, users ports.UserRepository, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, present := bearerToken(c.Request())
			if !present {
				return next(c) // anonymous
			}

			claims, err := codec.Decode(raw)
			if err != nil {
				reason := token.Reason(err)
				metrics.TokenRejectionsTotal.WithLabelValues(reason).Inc()
				log.Debug().
					Str("reason", reason).
					Str("path", c.Path()).
					Msg("bearer token rejected")
				ClearIdentity(c)
				return domain.ErrAuthenticationFailed
			}

			user, err := users.FindByUserID(c.Request().Context(), claims.UserID)
			if err != nil || !user.Enabled {
				metrics.TokenRejectionsTotal.WithLabelValues("subject").Inc()
				log.Debug().
					Str("subject", claims.UserID).
					Str("path", c.Path()).
					Msg("token subject no longer resolves")
				ClearIdentity(c)
				return domain.ErrAuthenticationFailed
			}

			SetIdentity(c, &Identity{
				UserID: user.UserID,
				Name:   user.Username,
				Role:   user.Role,
			})
			log.Debug().Str("subject", user.UserID).Msg("request authenticated")

			return next(c)
		}
	}
}

// bearerToken extracts the token from the Authorization header. The scheme
// match is exact: anything other than "Bearer " means no token was
// presented, which is distinct from presenting an invalid one.
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get(echo.HeaderAuthorization)
	if header == "" || !strings.HasPrefix(header, bearerScheme) {
		return "", false
	}
	return header[len(bearerScheme):], true
}
