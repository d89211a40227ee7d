package controllers

import (
	"Backend-Booking-Designer/src/models"
	"Backend-Booking-Designer/src/services/scheduler"
	"Backend-Booking-Designer/src/utils"

	"github.com/gofiber/fiber/v2"
)

type SchedulerController struct {
	service scheduler.Service
}

func NewSchedulerController(service scheduler.Service) *SchedulerController {
	return &SchedulerController{service: service}
}

// CreateConfig godoc
// @Summary      Create a scheduler config
// @Description  Stores a new config; status always starts as false
// @Tags         scheduler
// @Accept       json
// @Produce      json
// @Param        body body models.CreateSchedulerConfigDto true "Config"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /scheduler/config [post]
func (sc *SchedulerController) CreateConfig(c *fiber.Ctx) error {
	var dto models.CreateSchedulerConfigDto
	if err := c.BodyParser(&dto); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := utils.ValidateStruct(dto); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	config, err := sc.service.Create(c.UserContext(), dto)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "criado com sucesso",
		"config":  config,
	})
}

// GetConfig godoc
// @Summary      Read the scheduler config
// @Description  Acknowledgement only, no data is read
// @Tags         scheduler
// @Produce      json
// @Success      200  {object}  models.MessageResponse
// @Router       /scheduler/config [get]
func (sc *SchedulerController) GetConfig(c *fiber.Ctx) error {
	return c.JSON(models.MessageResponse{Message: "dados buscado com sucesso"})
}

// UpdateConfig godoc
// @Summary      Update the scheduler config
// @Description  Acknowledgement only, nothing is written
// @Tags         scheduler
// @Produce      json
// @Success      200  {object}  models.MessageResponse
// @Router       /scheduler/config [patch]
func (sc *SchedulerController) UpdateConfig(c *fiber.Ctx) error {
	return c.JSON(models.MessageResponse{Message: "dados atualizado com sucesso"})
}
