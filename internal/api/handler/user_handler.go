package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/accountly/account-api/internal/core/domain"
	"github.com/accountly/account-api/internal/core/ports"
)

// UserHandler handles HTTP requests for user accounts.
type UserHandler struct {
	service   ports.UserService
	validator *RegistrationValidator
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{
		service:   service,
		validator: NewRegistrationValidator(service),
	}
}

// Register creates a new inactive user and emails its activation token.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  validationErrorResponse
// @Failure      502   {object}  messageResponse
// @Router       /users [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		// Bind yields a 400 *echo.HTTPError; the central error handler
		// shapes it into the standard envelope.
		return err
	}

	ctx := c.Request().Context()

	fieldErrs, err := h.validator.Validate(ctx, req)
	if err != nil {
		return err
	}
	if fieldErrs != nil {
		return c.JSON(http.StatusBadRequest, validationErrorResponse{ValidationErrors: fieldErrs})
	}

	err = h.service.Register(ctx, ports.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	switch {
	case errors.Is(err, domain.ErrEmailDelivery):
		return c.JSON(http.StatusBadGateway, messageResponse{Message: "Email failure"})
	case errors.Is(err, domain.ErrEmailInUse):
		// Lost the insert race against a concurrent registration; report it
		// the same way the validation pre-check would have.
		return c.JSON(http.StatusBadRequest, validationErrorResponse{
			ValidationErrors: &FieldErrors{Email: "Email in use"},
		})
	case err != nil:
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "User created"})
}

// Activate flips an account to active given its emailed token.
//
// @Summary      Activate an account
// @Tags         users
// @Produce      json
// @Param        token  path      string  true  "Activation token"
// @Success      200    {object}  messageResponse
// @Failure      400    {object}  messageResponse
// @Router       /users/token/{token} [post]
func (h *UserHandler) Activate(c echo.Context) error {
	err := h.service.Activate(c.Request().Context(), c.Param("token"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidToken) {
			// Deliberately ambiguous: does not distinguish a wrong token
			// from an already-activated account.
			return c.JSON(http.StatusBadRequest, messageResponse{
				Message: "This account is either active or the token is invalid",
			})
		}
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Account is activated"})
}

// List returns one page of active users.
//
// @Summary      List active users
// @Tags         users
// @Produce      json
// @Param        page  query     string  false  "Page index (0-based)"
// @Param        size  query     string  false  "Page size (max 10)"
// @Success      200   {object}  listUsersResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	page, size := resolvePagination(c.QueryParam("page"), c.QueryParam("size"))

	result, err := h.service.ListActive(c.Request().Context(), page, size)
	if err != nil {
		return err
	}

	content := make([]userResponse, 0, len(result.Content))
	for _, u := range result.Content {
		content = append(content, toUserResponse(u))
	}

	return c.JSON(http.StatusOK, listUsersResponse{
		Content:    content,
		Page:       result.Page,
		Size:       result.Size,
		TotalPages: result.TotalPages,
	})
}

// Get returns a single active user by ID.
//
// @Summary      Get an active user
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  userResponse
// @Failure      404  {object}  map[string]any
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	view, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(*view))
}

func toUserResponse(v ports.UserView) userResponse {
	return userResponse{
		ID:       v.ID,
		Username: v.Username,
		Email:    v.Email,
	}
}
