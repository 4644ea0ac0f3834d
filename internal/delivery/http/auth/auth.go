package http_auth

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	http_common "github.com/humanbelnik/cinemind/core/internal/delivery/http/common"
	http_auth_middleware "github.com/humanbelnik/cinemind/core/internal/delivery/http/middleware/auth"
	"github.com/humanbelnik/cinemind/core/internal/model"
	session_auth "github.com/humanbelnik/cinemind/core/internal/service/auth/session"
)

// Throttles are the per-route rate limits, nil entries are skipped.
type Throttles struct {
	Login    gin.HandlerFunc
	Register gin.HandlerFunc
	Password gin.HandlerFunc
	Profile  gin.HandlerFunc
}

type Controller struct {
	service      *session_auth.Service
	required     gin.HandlerFunc
	throttles    Throttles
	secureCookie bool
	logger       *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func WithThrottles(t Throttles) ControllerOption {
	return func(c *Controller) {
		c.throttles = t
	}
}

// WithSecureCookie marks the session cookie Secure with SameSite=None.
func WithSecureCookie(secure bool) ControllerOption {
	return func(c *Controller) {
		c.secureCookie = secure
	}
}

func New(
	service *session_auth.Service,
	requiredAuth gin.HandlerFunc,
	opts ...ControllerOption,
) *Controller {
	c := &Controller{
		service:  service,
		required: requiredAuth,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func chain(handlers ...gin.HandlerFunc) []gin.HandlerFunc {
	out := make([]gin.HandlerFunc, 0, len(handlers))
	for _, h := range handlers {
		if h != nil {
			out = append(out, h)
		}
	}
	return out
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	auth.POST("/register", chain(c.throttles.Register, c.register)...)
	auth.POST("/login", chain(c.throttles.Login, c.login)...)
	auth.POST("/logout", c.required, c.logout)
	auth.GET("/profile", c.required, c.profile)
	auth.PATCH("/profile", chain(c.required, c.throttles.Profile, c.updateProfile)...)
	auth.POST("/password/change", chain(c.required, c.throttles.Password, c.changePassword)...)
}

// RegisterRequestDTO DTO для регистрации
type RegisterRequestDTO struct {
	Email    string `json:"email" binding:"required" example:"neo@matrix.io"`
	Username string `json:"username" example:"neo"`
	Password string `json:"password" binding:"required" example:"followTheWhiteRabbit"`
}

// LoginRequestDTO DTO для входа
type LoginRequestDTO struct {
	Email    string `json:"email" binding:"required" example:"neo@matrix.io"`
	Password string `json:"password" binding:"required" example:"followTheWhiteRabbit"`
}

// UpdateProfileRequestDTO DTO для изменения профиля
type UpdateProfileRequestDTO struct {
	Username string `json:"username" binding:"required" example:"the_one"`
}

// ChangePasswordRequestDTO DTO для смены пароля
type ChangePasswordRequestDTO struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// UserDTO публичные данные пользователя
type UserDTO struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SessionResponseDTO токен и пользователь
type SessionResponseDTO struct {
	Success bool    `json:"success"`
	Message string  `json:"message,omitempty"`
	Token   string  `json:"token"`
	User    UserDTO `json:"user"`
}

// ProfileResponseDTO профиль пользователя
type ProfileResponseDTO struct {
	Success bool    `json:"success"`
	User    UserDTO `json:"user"`
}

// TokenResponseDTO новый токен после смены пароля
type TokenResponseDTO struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token"`
}

func convertUser(u model.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (c *Controller) setCookie(ctx *gin.Context, token string, maxAge int) {
	if c.secureCookie {
		ctx.SetSameSite(http.SameSiteNoneMode)
	} else {
		ctx.SetSameSite(http.SameSiteLaxMode)
	}
	ctx.SetCookie(http_auth_middleware.CookieName, token, maxAge, "/", "", c.secureCookie, true)
}

func (c *Controller) writeError(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError
	msg := "Internal error"
	switch {
	case errors.Is(err, session_auth.ErrInvalidInput):
		status, msg = http.StatusBadRequest, err.Error()
	case errors.Is(err, session_auth.ErrWrongPassword):
		status, msg = http.StatusBadRequest, "Old password is incorrect"
	case errors.Is(err, session_auth.ErrInvalidCredentials):
		status, msg = http.StatusUnauthorized, "Invalid credentials"
	case errors.Is(err, session_auth.ErrEmailTaken), errors.Is(err, session_auth.ErrUsernameTaken):
		status, msg = http.StatusConflict, err.Error()
	case errors.Is(err, session_auth.ErrUserNotFound):
		status, msg = http.StatusNotFound, "User not found"
	default:
		c.logger.Error("internal auth error", slog.String("error", err.Error()))
	}
	ctx.JSON(status, http_common.ErrorResponse{Error: msg, Code: status})
}

// @Summary Регистрация
// @Description Создает пользователя и открывает сессию. Токен возвращается в теле и в cookie authToken
// @Tags Auth operations
// @Accept json
// @Produce json
// @Param request body RegisterRequestDTO true "Данные для регистрации"
// @Success 201 {object} SessionResponseDTO "Пользователь создан"
// @Failure 400 {object} http_common.ErrorResponse "Неверный формат запроса"
// @Failure 409 {object} http_common.ErrorResponse "Email уже занят"
// @Failure 429 {object} http_common.ErrorResponse "Слишком много запросов"
// @Router /auth/register [post]
func (c *Controller) register(ctx *gin.Context) {
	var req RegisterRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn("invalid request format", slog.String("error", err.Error()))
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: "Invalid request format",
			Code:  http.StatusBadRequest,
		})
		return
	}

	token, u, err := c.service.Register(ctx.Request.Context(), req.Email, req.Username, req.Password)
	if err != nil {
		c.writeError(ctx, err)
		return
	}

	c.setCookie(ctx, token, int(c.service.SessionTTL().Seconds()))
	ctx.JSON(http.StatusCreated, SessionResponseDTO{
		Success: true,
		Message: "Registration successful",
		Token:   token,
		User:    convertUser(u),
	})
}

// @Summary Вход
// @Tags Auth operations
// @Accept json
// @Produce json
// @Param request body LoginRequestDTO true "Email и пароль"
// @Success 200 {object} SessionResponseDTO "Сессия открыта"
// @Failure 401 {object} http_common.ErrorResponse "Неверные учетные данные"
// @Failure 429 {object} http_common.ErrorResponse "Слишком много запросов"
// @Router /auth/login [post]
func (c *Controller) login(ctx *gin.Context) {
	var req LoginRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: "Invalid input data",
			Code:  http.StatusBadRequest,
		})
		return
	}

	token, u, err := c.service.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.writeError(ctx, err)
		return
	}

	c.setCookie(ctx, token, int(c.service.SessionTTL().Seconds()))
	ctx.JSON(http.StatusOK, SessionResponseDTO{
		Success: true,
		Message: "Login successful",
		Token:   token,
		User:    convertUser(u),
	})
}

// @Summary Выход
// @Tags Auth operations
// @Success 200 "Сессия закрыта"
// @Failure 401 {object} http_common.ErrorResponse "Требуется авторизация"
// @Router /auth/logout [post]
func (c *Controller) logout(ctx *gin.Context) {
	if err := c.service.Logout(http_common.Token(ctx)); err != nil {
		c.writeError(ctx, err)
		return
	}
	c.setCookie(ctx, "", -1)
	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Logout successful"})
}

// @Summary Профиль
// @Tags Auth operations
// @Produce json
// @Success 200 {object} ProfileResponseDTO "Профиль пользователя"
// @Failure 401 {object} http_common.ErrorResponse "Требуется авторизация"
// @Router /auth/profile [get]
func (c *Controller) profile(ctx *gin.Context) {
	u, err := c.service.Profile(ctx.Request.Context(), http_common.Auth(ctx).UserID)
	if err != nil {
		c.writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, ProfileResponseDTO{Success: true, User: convertUser(u)})
}

// @Summary Изменение профиля
// @Tags Auth operations
// @Accept json
// @Produce json
// @Param request body UpdateProfileRequestDTO true "Новое имя пользователя"
// @Success 200 {object} ProfileResponseDTO "Профиль обновлен"
// @Failure 409 {object} http_common.ErrorResponse "Имя занято"
// @Router /auth/profile [patch]
func (c *Controller) updateProfile(ctx *gin.Context) {
	var req UpdateProfileRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: "Invalid request format",
			Code:  http.StatusBadRequest,
		})
		return
	}

	u, err := c.service.UpdateUsername(ctx.Request.Context(), http_common.Auth(ctx).UserID, req.Username)
	if err != nil {
		c.writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, ProfileResponseDTO{Success: true, User: convertUser(u)})
}

// @Summary Смена пароля
// @Description Проверяет старый пароль, закрывает текущую сессию и возвращает новый токен
// @Tags Auth operations
// @Accept json
// @Produce json
// @Param request body ChangePasswordRequestDTO true "Старый и новый пароль"
// @Success 200 {object} TokenResponseDTO "Пароль изменен"
// @Failure 400 {object} http_common.ErrorResponse "Старый пароль неверен"
// @Router /auth/password/change [post]
func (c *Controller) changePassword(ctx *gin.Context) {
	var req ChangePasswordRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: "Invalid request format",
			Code:  http.StatusBadRequest,
		})
		return
	}

	token, err := c.service.ChangePassword(ctx.Request.Context(),
		http_common.Auth(ctx).UserID,
		http_common.Token(ctx),
		req.OldPassword,
		req.NewPassword,
	)
	if err != nil {
		c.writeError(ctx, err)
		return
	}

	c.setCookie(ctx, token, int(c.service.SessionTTL().Seconds()))
	ctx.JSON(http.StatusOK, TokenResponseDTO{
		Success: true,
		Message: "Password changed successfully",
		Token:   token,
	})
}
