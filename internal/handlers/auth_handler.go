package handlers

import (
	"errors"
	"log"

	"footballapi/internal/models"
	"footballapi/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the authentication routes with the Fiber app.
// Both routes are public.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	authRoutes := router.Group("/usuarios")
	authRoutes.Post("/signUp", h.HandleSignUp)
	authRoutes.Post("/signIn", h.HandleSignIn)
}

// SignUpRequest represents the request body for user registration.
type SignUpRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Surname  string `json:"surname" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,alphanum,min=3,max=100"`
	Password string `json:"password" validate:"required,min=6"`
	Type     string `json:"type" validate:"required,oneof=admin user"`
}

// HandleSignUp handles new user registration. The response never carries the
// salt or hash.
func (h *AuthHandler) HandleSignUp(c *fiber.Ctx) error {
	var req SignUpRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	user := models.User{
		Name:     req.Name,
		Surname:  req.Surname,
		Email:    req.Email,
		Username: req.Username,
		Type:     req.Type,
	}
	if err := h.authService.SignUp(&user, req.Password); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"usuario": user,
	})
}

// SignInRequest represents the request body for login. Username also accepts
// the account's email.
type SignInRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// HandleSignIn authenticates a user and issues a token. An unknown login is
// 404; a wrong password is 401.
func (h *AuthHandler) HandleSignIn(c *fiber.Ctx) error {
	var req SignInRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	user, token, err := h.authService.SignIn(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			log.Printf("Failed sign-in attempt for %s", req.Username)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Incorrect password",
			})
		}
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"usuario": user.Username,
		"email":   user.Email,
		"token":   token,
	})
}
