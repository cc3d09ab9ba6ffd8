package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/movya/candidate-suite/internal/dto"
	"github.com/movya/candidate-suite/internal/model"
	"github.com/movya/candidate-suite/internal/usecase"
	"github.com/movya/candidate-suite/internal/util"
)

type SelectionHandler struct {
	uc *usecase.SelectionUsecase
}

func NewSelectionHandler(uc *usecase.SelectionUsecase) *SelectionHandler {
	return &SelectionHandler{uc: uc}
}

func (h *SelectionHandler) RegisterRoutes(app *fiber.App) {
	api := app.Group("/api")
	api.Get("/selection", h.List)
	api.Post("/selection/refresh", h.Refresh)
	api.Post("/selection/accept", h.Accept)
	api.Post("/selection/reject", h.Reject)
}

// selectionCard is one queue entry shaped for the card view.
type selectionCard struct {
	Fields       model.SelectionCandidate `json:"fields"`
	Name         string                   `json:"name"`
	Designation  string                   `json:"designation"`
	Organization string                   `json:"organization"`
	OverallScore string                   `json:"overall_score"`
	Skills       []string                 `json:"skills"`
	QuickRead    string                   `json:"quick_read"`
}

func (h *SelectionHandler) List(c *fiber.Ctx) error {
	queue := h.uc.List()
	cards := make([]selectionCard, 0, len(queue))
	for _, rec := range queue {
		name := rec.Name()
		if name == "" {
			name = "Unknown"
		}
		cards = append(cards, selectionCard{
			Fields:       rec,
			Name:         name,
			Designation:  rec.Designation(),
			Organization: rec.Organization(),
			OverallScore: rec.OverallScore(),
			Skills:       rec.Skills(),
			QuickRead:    rec.QuickRead(),
		})
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get selection queue",
		Data:    cards,
		Meta: fiber.Map{
			"total":      len(cards),
			"processing": h.uc.Processing(),
		},
	})
}

func (h *SelectionHandler) Refresh(c *fiber.Ctx) error {
	if err := h.uc.Refresh(c.UserContext()); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadGateway,
			Message: err.Error(),
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Selection data has been reloaded from the source.",
		Meta:    fiber.Map{"total": len(h.uc.List())},
	})
}

func (h *SelectionHandler) Accept(c *fiber.Ctx) error {
	var form dto.DecisionForm
	if err := c.BodyParser(&form); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid request body",
		}, err)
	}
	if ferr := form.Validate(); ferr != nil {
		return respondOperationError(c, ferr)
	}

	name, err := h.uc.Accept(c.UserContext(), form.Email)
	if err != nil {
		return respondOperationError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: fmt.Sprintf("%s has been added to Candidate Details.", name),
	})
}

func (h *SelectionHandler) Reject(c *fiber.Ctx) error {
	var form dto.DecisionForm
	if err := c.BodyParser(&form); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid request body",
		}, err)
	}
	if ferr := form.Validate(); ferr != nil {
		return respondOperationError(c, ferr)
	}

	name, err := h.uc.Reject(c.UserContext(), form.Email)
	if err != nil {
		return respondOperationError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: fmt.Sprintf("%s has been removed from selection.", name),
	})
}
