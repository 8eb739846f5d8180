package handler

import (
	"github.com/gofiber/fiber/v2"

	"doclib/internal/model"
	"doclib/internal/service"
)

// RegisterUser godoc
// @Summary      Register a user
// @Description  Emails are unique (exact match).
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        user  body      model.NewUser  true  "Registration"
// @Success      201   {object}  model.User
// @Failure      400   {object}  errorPayload
// @Router       /api/users [post]
func RegisterUser(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.NewUser
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, CodeValidation, "invalid request body")
		}

		u, err := svc.Register(c.UserContext(), in)
		if err != nil {
			return writeServiceError(c, err, "user not found")
		}
		return c.Status(fiber.StatusCreated).JSON(u)
	}
}

// ListUsers godoc
// @Summary  List users
// @Tags     users
// @Produce  json
// @Success  200  {array}   model.User
// @Failure  500  {object}  errorPayload
// @Router   /api/users [get]
func ListUsers(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		users, err := svc.List(c.UserContext())
		if err != nil {
			return writeServiceError(c, err, "")
		}
		if users == nil {
			users = []model.User{}
		}
		return c.JSON(users)
	}
}

// GetUser godoc
// @Summary  Get a user
// @Tags     users
// @Produce  json
// @Param    id   path      string  true  "User ID (UUID)"
// @Success  200  {object}  model.User
// @Failure  400  {object}  errorPayload
// @Failure  404  {object}  errorPayload
// @Router   /api/users/{id} [get]
func GetUser(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := validID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, CodeInvalidID, "invalid id format")
		}
		u, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err, "user not found")
		}
		return c.JSON(u)
	}
}
