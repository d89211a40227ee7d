package controllers

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"

	"Backend-Booking-Designer/src/errorz"
	"Backend-Booking-Designer/src/middleware"
	"Backend-Booking-Designer/src/models"
	"Backend-Booking-Designer/src/services/designer"
	"Backend-Booking-Designer/src/utils"
	"Backend-Booking-Designer/src/views"

	"github.com/gofiber/fiber/v2"
)

// DesignerController exposes the booking designer of the caller's session.
type DesignerController struct {
	service *designer.Service
}

func NewDesignerController(service *designer.Service) *DesignerController {
	return &DesignerController{service: service}
}

type moveFieldRequest struct {
	To *int `json:"to"`
}

type switchViewRequest struct {
	Target string `json:"target"`
}

func (dc *DesignerController) respond(c *fiber.Ctx, vm models.ViewModel, err error) error {
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(vm)
}

// Page godoc
// @Summary      Designer page
// @Tags         designer
// @Produce      html
// @Success      200  {string}  string
// @Router       /designer [get]
func (dc *DesignerController) Page(c *fiber.Ctx) error {
	vm := dc.service.View(c.UserContext(), middleware.SessionID(c))

	var buf bytes.Buffer
	if err := views.RenderDesigner(&buf, vm); err != nil {
		middleware.LoggerFromContext(c).Error("❌ render designer page", slog.Any("error", err))
		return utils.HandleServiceError(c, err)
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

// State godoc
// @Summary      Current designer view-model
// @Tags         designer
// @Produce      json
// @Success      200  {object}  models.ViewModel
// @Router       /designer/state [get]
func (dc *DesignerController) State(c *fiber.Ctx) error {
	return c.JSON(dc.service.View(c.UserContext(), middleware.SessionID(c)))
}

// UpdateBlueprint godoc
// @Summary      Edit the blueprint header
// @Tags         designer
// @Accept       json
// @Produce      json
// @Param        body body models.BlueprintPatch true "Header fields"
// @Success      200  {object}  models.ViewModel
// @Failure      400  {object}  models.ErrorResponse
// @Router       /designer/blueprint [patch]
func (dc *DesignerController) UpdateBlueprint(c *fiber.Ctx) error {
	var patch models.BlueprintPatch
	if err := c.BodyParser(&patch); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	vm, err := dc.service.UpdateBlueprint(c.UserContext(), middleware.SessionID(c), patch)
	return dc.respond(c, vm, err)
}

// ResetBlueprint godoc
// @Summary      Restore the default blueprint
// @Tags         designer
// @Produce      json
// @Success      200  {object}  models.ViewModel
// @Router       /designer/blueprint/reset [post]
func (dc *DesignerController) ResetBlueprint(c *fiber.Ctx) error {
	vm, err := dc.service.ResetBlueprint(c.UserContext(), middleware.SessionID(c))
	return dc.respond(c, vm, err)
}

// AddField godoc
// @Summary      Add a field
// @Tags         designer
// @Accept       json
// @Produce      json
// @Param        body body models.FieldInput true "Field"
// @Success      200  {object}  models.ViewModel
// @Failure      400  {object}  models.ErrorResponse
// @Router       /designer/fields [post]
func (dc *DesignerController) AddField(c *fiber.Ctx) error {
	var in models.FieldInput
	if err := c.BodyParser(&in); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	vm, err := dc.service.AddField(c.UserContext(), middleware.SessionID(c), in)
	return dc.respond(c, vm, err)
}

// MoveField godoc
// @Summary      Move a field
// @Description  Out-of-range positions leave the blueprint unchanged
// @Tags         designer
// @Accept       json
// @Produce      json
// @Param        index path int true "Current position"
// @Param        body body moveFieldRequest true "Target position"
// @Success      200  {object}  models.ViewModel
// @Failure      400  {object}  models.ErrorResponse
// @Router       /designer/fields/{index}/move [post]
func (dc *DesignerController) MoveField(c *fiber.Ctx) error {
	from, err := c.ParamsInt("index")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "invalid field index")
	}
	var req moveFieldRequest
	if err := c.BodyParser(&req); err != nil || req.To == nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: \"to\" is required")
	}
	vm, err := dc.service.MoveField(c.UserContext(), middleware.SessionID(c), from, *req.To)
	return dc.respond(c, vm, err)
}

// DeleteField godoc
// @Summary      Delete a field
// @Tags         designer
// @Produce      json
// @Param        index path int true "Position"
// @Success      200  {object}  models.ViewModel
// @Failure      400  {object}  models.ErrorResponse
// @Router       /designer/fields/{index} [delete]
func (dc *DesignerController) DeleteField(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "invalid field index")
	}
	vm, err := dc.service.DeleteField(c.UserContext(), middleware.SessionID(c), index)
	return dc.respond(c, vm, err)
}

// ToggleWeekday godoc
// @Summary      Toggle an available weekday
// @Tags         designer
// @Produce      json
// @Param        day path string true "seg, ter, qua, qui, sex, sab or dom"
// @Success      200  {object}  models.ViewModel
// @Router       /designer/weekdays/{day}/toggle [post]
func (dc *DesignerController) ToggleWeekday(c *fiber.Ctx) error {
	vm, err := dc.service.ToggleWeekday(c.UserContext(), middleware.SessionID(c), c.Params("day"))
	return dc.respond(c, vm, err)
}

// PreviewSubmission godoc
// @Summary      Record a simulated submission
// @Tags         designer
// @Accept       json
// @Produce      json
// @Param        body body models.SubmissionInput true "Values by field id"
// @Success      200  {object}  models.ViewModel
// @Router       /designer/preview/submissions [post]
func (dc *DesignerController) PreviewSubmission(c *fiber.Ctx) error {
	return dc.submit(c, models.SourcePreview)
}

// PublicSubmission godoc
// @Summary      Record a public booking
// @Description  Accepts JSON ({"values": {...}}) or a plain form post keyed by field id
// @Tags         designer
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        body body models.SubmissionInput true "Values by field id"
// @Success      200  {object}  models.ViewModel
// @Success      303
// @Router       /designer/public/submissions [post]
func (dc *DesignerController) PublicSubmission(c *fiber.Ctx) error {
	return dc.submit(c, models.SourcePublic)
}

func (dc *DesignerController) submit(c *fiber.Ctx, source string) error {
	values, isForm, err := submissionValues(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	vm, err := dc.service.RecordSubmission(c.UserContext(), middleware.SessionID(c), source, values)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	if isForm {
		return c.Redirect("/designer", fiber.StatusSeeOther)
	}
	return c.JSON(vm)
}

// submissionValues reads field values from a JSON body or a form post.
func submissionValues(c *fiber.Ctx) (map[string]string, bool, error) {
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEApplicationForm) {
		values := map[string]string{}
		c.Request().PostArgs().VisitAll(func(key, value []byte) {
			values[string(key)] = string(value)
		})
		return values, true, nil
	}

	var in models.SubmissionInput
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return nil, false, err
		}
	}
	return in.Values, false, nil
}

// ClearSubmissions godoc
// @Summary      Clear the submission log
// @Tags         designer
// @Produce      json
// @Success      200  {object}  models.ViewModel
// @Router       /designer/submissions [delete]
func (dc *DesignerController) ClearSubmissions(c *fiber.Ctx) error {
	vm, err := dc.service.ClearSubmissions(c.UserContext(), middleware.SessionID(c))
	return dc.respond(c, vm, err)
}

// Login godoc
// @Summary      Stub login
// @Description  Accepts any email with a password of at least 4 characters
// @Tags         designer
// @Accept       json
// @Produce      json
// @Param        body body models.LoginInput true "Credentials"
// @Success      200  {object}  models.ViewModel
// @Failure      400  {object}  map[string]interface{}
// @Router       /designer/login [post]
func (dc *DesignerController) Login(c *fiber.Ctx) error {
	var in models.LoginInput
	if err := c.BodyParser(&in); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	vm, err := dc.service.Login(c.UserContext(), middleware.SessionID(c), in)
	if errors.Is(err, errorz.ErrInvalidCredentials) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  fiber.StatusBadRequest,
			"message": vm.LoginStatus,
			"view":    vm,
		})
	}
	return dc.respond(c, vm, err)
}

// SwitchView godoc
// @Summary      Switch the active view
// @Tags         designer
// @Accept       json
// @Produce      json
// @Param        body body switchViewRequest true "login, admin or public"
// @Success      200  {object}  models.ViewModel
// @Router       /designer/view [post]
func (dc *DesignerController) SwitchView(c *fiber.Ctx) error {
	var req switchViewRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	vm, err := dc.service.SwitchView(c.UserContext(), middleware.SessionID(c), req.Target)
	return dc.respond(c, vm, err)
}

// Reload godoc
// @Summary      Re-read the session from storage
// @Tags         designer
// @Produce      json
// @Success      200  {object}  models.ViewModel
// @Router       /designer/reload [post]
func (dc *DesignerController) Reload(c *fiber.Ctx) error {
	return c.JSON(dc.service.Reload(c.UserContext(), middleware.SessionID(c)))
}

// Availability godoc
// @Summary      Export available weekdays
// @Tags         designer
// @Produce      text/calendar
// @Success      200  {string}  string
// @Failure      404  {object}  models.ErrorResponse
// @Router       /designer/availability.ics [get]
func (dc *DesignerController) Availability(c *fiber.Ctx) error {
	var buf bytes.Buffer
	err := dc.service.ExportAvailability(c.UserContext(), middleware.SessionID(c), &buf)
	if errors.Is(err, designer.ErrNoAvailability) {
		return utils.HandleError(c, fiber.StatusNotFound, "Nenhum dia selecionado")
	}
	if err != nil {
		middleware.LoggerFromContext(c).Error("❌ export availability", slog.Any("error", err))
		return utils.HandleServiceError(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/calendar; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="disponibilidade.ics"`)
	return c.Send(buf.Bytes())
}
