package rest

import (
	"errors"
	"net/http"

	"welfare-fraud-system/internal/models"
	"welfare-fraud-system/internal/services"
	"welfare-fraud-system/internal/storage"

	"github.com/gin-gonic/gin"
)

// HandleRegister обрабатывает POST запрос на регистрацию аудитора
// @Summary Зарегистрировать аудитора
// @Description Регистрирует нового аудитора социальных схем. Пароль хэшируется PBKDF2-SHA256, email должен быть уникальным.
// @Tags auth
// @Accept json
// @Produce json
// @Param officer body models.RegisterRequest true "Данные аудитора"
// @Success 201 {object} models.AuthResponse "Аудитор зарегистрирован"
// @Failure 400 {object} map[string]string "Bad Request - неполные или неверные данные"
// @Failure 409 {object} map[string]string "Conflict - email уже занят"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /auth/register [post]
func (h *Handlers) HandleRegister(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.authService.Register(&req)
	if err != nil {
		var validationErr *services.ValidationError
		switch {
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
		case errors.Is(err, storage.ErrDuplicateEmail):
			c.JSON(http.StatusConflict, gin.H{"error": "Officer with this email already exists"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register officer"})
		}
		return
	}

	c.JSON(http.StatusCreated, response)
}

// HandleLogin обрабатывает POST запрос на вход аудитора
// @Summary Войти как аудитор
// @Description Проверяет учетные данные аудитора и возвращает его профиль
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body models.LoginRequest true "Email и пароль"
// @Success 200 {object} models.AuthResponse "Вход выполнен"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 401 {object} map[string]string "Unauthorized - неверные учетные данные"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /auth/login [post]
func (h *Handlers) HandleLogin(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.authService.Login(&req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to login"})
		return
	}

	c.JSON(http.StatusOK, response)
}
