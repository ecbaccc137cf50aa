package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/cleanwater/report-service/internal/api/dto"
	"github.com/cleanwater/report-service/internal/domain"
	"github.com/cleanwater/report-service/internal/service"
	apperrors "github.com/cleanwater/report-service/pkg/util/errorutil"
)

// UsersHandler exposes the account endpoints under /api/users.
type UsersHandler struct {
	service *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(userService *service.UserService) *UsersHandler {
	return &UsersHandler{service: userService}
}

// List GET /api/users.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(users)
}

// Get GET /api/users/:id.
func (h *UsersHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "user")
	if err != nil {
		return err
	}
	user, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	if user == nil {
		return c.SendStatus(http.StatusNotFound)
	}
	return c.JSON(user)
}

// Register POST /api/users/register. Failures answer with the login-response
// shape: null identity fields plus a message.
func (h *UsersHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterUserRequest
	if err := c.BodyParser(&req); err != nil {
		return failureResponse(c, apperrors.NewValidationError("invalid payload", nil))
	}

	user, err := h.service.Register(c.UserContext(), service.UserRegisterInput{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		Role:       req.Role,
		Department: req.Department,
	})
	if err != nil {
		return failureResponse(c, err)
	}
	return c.Status(http.StatusCreated).JSON(user)
}

// Login POST /api/users/login.
func (h *UsersHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return failureResponse(c, apperrors.NewValidationError("invalid payload", nil))
	}

	user, err := h.service.Authenticate(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}
	if user == nil {
		return c.Status(http.StatusUnauthorized).JSON(dto.LoginResponse{
			Message: "Invalid email or password",
		})
	}
	return c.JSON(loginSuccess(user))
}

// Update PUT /api/users/:id.
func (h *UsersHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "user")
	if err != nil {
		return err
	}
	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return failureResponse(c, apperrors.NewValidationError("invalid payload", nil))
	}

	user, err := h.service.Update(c.UserContext(), id, service.UserUpdateInput{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		Role:       req.Role,
		Department: req.Department,
	})
	if err != nil {
		return failureResponse(c, err)
	}
	return c.JSON(user)
}

// Delete DELETE /api/users/:id.
func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "user")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "User deleted successfully"})
}

func loginSuccess(user *domain.User) dto.LoginResponse {
	return dto.LoginResponse{
		ID:         &user.ID,
		Name:       &user.Name,
		Email:      &user.Email,
		Role:       &user.Role,
		Department: &user.Department,
		Message:    "Login successful",
	}
}

// failureResponse renders user-vertical failures in the login-response shape
// the upstream API uses for register and update errors.
func failureResponse(c *fiber.Ctx, err error) error {
	domainErr := apperrors.ToDomainError(err)
	return c.Status(domainErr.HTTPStatus).JSON(dto.LoginResponse{
		Message: domainErr.Message,
	})
}
