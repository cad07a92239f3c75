package auth

import (
	stderrors "errors"
	"net/http"

	"codeberg.org/clipcast/server/clipcast/login"
	"codeberg.org/clipcast/server/clipcast/users"
	"codeberg.org/clipcast/server/internal/auth"
	"codeberg.org/clipcast/server/internal/errors"
	"codeberg.org/clipcast/server/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
)

const providerName = "google"

// completes the OAuth handshake; stubbed in tests
type CompleteAuthFunc func(w http.ResponseWriter, r *http.Request) (goth.User, error)

// Handlers holds the dependencies for the authentication endpoints
type Handlers struct {
	service       *login.Service
	users         users.Repository
	clientAddress string
	completeAuth  CompleteAuthFunc
}

// creates the authentication handlers. clientAddress is where the
// browser is sent after a successful login.
func NewHandlers(service *login.Service, userRepo users.Repository, clientAddress string) *Handlers {
	return &Handlers{
		service:       service,
		users:         userRepo,
		clientAddress: clientAddress,
		completeAuth:  gothic.CompleteUserAuth,
	}
}

// LoginHandler godoc
// @Summary Start Google login
// @Description Redirects the browser to Google's authorization endpoint requesting identity scopes and offline access
// @Tags auth
// @Success 302 {string} string "Redirect to Google"
// @Router /login [get]
func (h *Handlers) LoginHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		// set provider in query for gothic
		q := c.Request.URL.Query()
		q.Add("provider", providerName)
		c.Request.URL.RawQuery = q.Encode()

		gothic.BeginAuthHandler(c.Writer, c.Request)
	}
}

// CallbackHandler godoc
// @Summary Google login callback
// @Description Exchanges the authorization code for identity claims, reconciles the local user and issues token cookies
// @Tags auth
// @Produce json
// @Param code query string true "Authorization code"
// @Success 302 {string} string "Redirect to the client application with success=true"
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /callback [get]
func (h *Handlers) CallbackHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Query("code") == "" {
			errors.BadRequest(c, "Code is required", nil)
			return
		}

		q := c.Request.URL.Query()
		q.Add("provider", providerName)
		c.Request.URL.RawQuery = q.Encode()

		gothUser, err := h.completeAuth(c.Writer, c.Request)
		if err != nil {
			errors.BadRequest(c, "Token exchange failed", err)
			return
		}

		// validate claims into a typed struct before touching anything
		claims, err := login.ClaimsFromProvider(gothUser)
		if err != nil {
			errors.BadRequest(c, "Token exchange failed", err)
			return
		}

		ctx := c.Request.Context()

		user, err := h.service.Reconcile(ctx, claims)
		if err != nil {
			var provErr *login.ProvisioningError

			switch {
			case stderrors.Is(err, login.ErrUnverifiedEmail):
				errors.BadRequest(c, "Email verification required. Verify with Google before authenticating", nil)
			case stderrors.As(err, &provErr):
				errors.InternalError(c, "Failed to create user", err)
			default:
				errors.InternalError(c, "Failed to resolve user", err)
			}

			return
		}

		authenticated, err := h.service.Authenticate(ctx, user.GoogleSub)
		if err != nil {
			if stderrors.Is(err, login.ErrAuthentication) {
				errors.Unauthorized(c, "Invalid credentials")
				return
			}

			errors.InternalError(c, "Failed to authenticate user", err)
			return
		}

		pair, err := h.service.IssueTokens(ctx, authenticated)
		if err != nil {
			errors.InternalError(c, "Failed to generate token", err)
			return
		}

		// cookies only exist past this point; every failure above
		// returns without setting any
		setAuthCookies(c, pair)

		c.Redirect(http.StatusFound, h.clientAddress+"?success=true")
	}
}

// LogoutHandler godoc
// @Summary Logout
// @Description Revokes the presented refresh token and clears all cookies
// @Tags auth
// @Produce json
// @Success 200 {object} LogoutResponse
// @Failure 400 {object} LogoutResponse
// @Failure 401 {object} LogoutResponse
// @Router /logout [post]
func (h *Handlers) LogoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := auth.GetUserID(c); !ok {
			c.JSON(http.StatusUnauthorized, LogoutResponse{
				Success: false,
				Error:   "Unauthorized or invalid request",
			})
			return
		}

		refreshToken, err := c.Cookie(auth.RefreshTokenCookie)

		if err == nil && refreshToken != "" {
			if revokeErr := h.service.RevokeRefreshToken(c.Request.Context(), refreshToken); revokeErr != nil {
				respondLogoutError(c, revokeErr)
				return
			}
		}

		clearAllCookies(c)

		c.JSON(http.StatusOK, LogoutResponse{
			Success: true,
			Message: "Logged out successfully",
		})
	}
}

// CurrentUserHandler godoc
// @Summary Get current user
// @Description Get authenticated user's profile
// @Tags auth
// @Produce json
// @Success 200 {object} UserResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/auth/me [get]
func (h *Handlers) CurrentUserHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)

		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		user, err := h.users.FindByID(c.Request.Context(), userID)
		if err != nil {
			errors.NotFound(c, "User")
			return
		}

		c.JSON(http.StatusOK, UserResponse{User: user})
	}
}

// maps refresh-token failures to the logout wire shape. Token contents
// never appear in responses.
func respondLogoutError(c *gin.Context, err error) {
	switch {
	case stderrors.Is(err, jwt.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, LogoutResponse{
			Success: false,
			Error:   "Token is expired",
		})
	case stderrors.Is(err, jwt.ErrTokenMalformed),
		stderrors.Is(err, jwt.ErrTokenSignatureInvalid),
		stderrors.Is(err, jwt.ErrTokenUnverifiable),
		stderrors.Is(err, jwt.ErrTokenInvalidClaims):
		c.JSON(http.StatusUnauthorized, LogoutResponse{
			Success: false,
			Error:   "Invalid token",
		})
	default:
		logger.ErrorErr(err, "failed to process refresh token on logout")
		c.JSON(http.StatusBadRequest, LogoutResponse{
			Success: false,
			Error:   "Token processing failed",
		})
	}
}

func setAuthCookies(c *gin.Context, pair *login.TokenPair) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(auth.AccessTokenCookie, pair.AccessToken, int(auth.AccessTokenTTL.Seconds()), "/", "", true, true)
	c.SetCookie(auth.RefreshTokenCookie, pair.RefreshToken, int(auth.RefreshTokenTTL.Seconds()), "/", "", true, true)
}

// expires every cookie present on the request
func clearAllCookies(c *gin.Context) {
	c.SetSameSite(http.SameSiteNoneMode)

	for _, cookie := range c.Request.Cookies() {
		c.SetCookie(cookie.Name, "", -1, "/", "", true, true)
	}
}
