package controllers

import (
	"Backend-Booking-Designer/src/models"
	"Backend-Booking-Designer/src/services/users"
	"Backend-Booking-Designer/src/utils"

	"github.com/gofiber/fiber/v2"
)

type UserController struct {
	service users.Service
}

func NewUserController(service users.Service) *UserController {
	return &UserController{service: service}
}

// CreateUser godoc
// @Summary      Create a user
// @Description  Creates a user and returns only its email and name
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body body models.CreateUserDto true "User"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /users [post]
func (uc *UserController) CreateUser(c *fiber.Ctx) error {
	var dto models.CreateUserDto
	if err := c.BodyParser(&dto); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := utils.ValidateStruct(dto); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	user, err := uc.service.Create(c.UserContext(), dto)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Usuário criado com sucesso!",
		"user":    user.Projection(),
	})
}

// GetUsers godoc
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  models.ErrorResponse
// @Router       /users [get]
func (uc *UserController) GetUsers(c *fiber.Ctx) error {
	list, err := uc.service.FindAll(c.UserContext())
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Todos usuários recuperados com sucesso!",
		"total":   len(list),
		"users":   list,
	})
}

// GetUserByID godoc
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /users/{id} [get]
func (uc *UserController) GetUserByID(c *fiber.Ctx) error {
	user, err := uc.service.FindOne(c.UserContext(), c.Params("id"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Usuário recuperado com sucesso!",
		"user":    user,
	})
}

// UpdateUser godoc
// @Summary      Partially update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Param        body body models.UpdateUserDto true "Fields to change"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /users/{id} [patch]
func (uc *UserController) UpdateUser(c *fiber.Ctx) error {
	var dto models.UpdateUserDto
	if err := c.BodyParser(&dto); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := utils.ValidateStruct(dto); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	user, err := uc.service.Update(c.UserContext(), c.Params("id"), dto)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Usuário atualizado com sucesso!",
		"user":    user,
	})
}

// DeleteUser godoc
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /users/{id} [delete]
func (uc *UserController) DeleteUser(c *fiber.Ctx) error {
	user, err := uc.service.Remove(c.UserContext(), c.Params("id"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Usuário removido com sucesso!",
		"user":    user,
	})
}
