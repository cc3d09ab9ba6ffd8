package handler

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/movya/candidate-suite/internal/dto"
	"github.com/movya/candidate-suite/internal/middleware"
	"github.com/movya/candidate-suite/internal/model"
	"github.com/movya/candidate-suite/internal/presenter"
	"github.com/movya/candidate-suite/internal/response"
	"github.com/movya/candidate-suite/internal/usecase"
	"github.com/movya/candidate-suite/internal/util"
)

type CandidateHandler struct {
	uc *usecase.CandidateUsecase
}

func NewCandidateHandler(uc *usecase.CandidateUsecase) *CandidateHandler {
	return &CandidateHandler{uc: uc}
}

func (h *CandidateHandler) RegisterRoutes(app *fiber.App) {
	api := app.Group("/api")
	api.Get("/candidates", h.List)
	api.Get("/candidates/unique", h.Unique)
	api.Get("/candidates/detail", h.Detail)
	api.Post("/candidates", middleware.RateLimiter(5, 10*time.Second), h.Create)
	api.Put("/candidates", h.Update)
	api.Delete("/candidates", h.Delete)
	api.Post("/candidates/refresh", h.Refresh)
}

// candidateRow is one management-table row: the raw record plus its derived
// pending/completed status.
type candidateRow struct {
	Fields model.Candidate `json:"fields"`
	Status string          `json:"status"`
}

func rows(candidates []model.Candidate) []candidateRow {
	out := make([]candidateRow, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, candidateRow{Fields: c, Status: c.Status()})
	}
	return out
}

func (h *CandidateHandler) List(c *fiber.Ctx) error {
	candidates := h.uc.List()

	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("page_size", 20)
	pagination, from, to := response.Paginate(page, pageSize, len(candidates))

	meta := fiber.Map{"total": len(candidates)}
	if selected, ok := h.uc.AutoSelected(); ok {
		meta["auto_selected"] = fiber.Map{
			"Name":  selected.Name(),
			"Email": selected.Email(),
		}
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "Success get candidates",
		Data:       rows(candidates[from:to]),
		Pagination: pagination,
		Meta:       meta,
	})
}

func (h *CandidateHandler) Unique(c *fiber.Ctx) error {
	unique := h.uc.Unique()
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get unique candidates",
		Data:    rows(unique),
		Meta:    fiber.Map{"total": len(unique)},
	})
}

func (h *CandidateHandler) Detail(c *fiber.Ctx) error {
	name := c.Query("name")
	email := c.Query("email")
	candidate, ok := h.uc.Find(name, email)
	if !ok {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "Candidate not found",
		})
	}

	data := fiber.Map{
		"Name":        candidate.Name(),
		"Email":       candidate.Email(),
		"Job Role":    candidate.JobRole(),
		"status":      candidate.Status(),
		"fields":      presenter.Fields(candidate, h.uc.FieldOrder()),
		"has_details": candidate.HasDetails(),
	}
	if firstSeen, ok := h.uc.FirstSeen(candidate.Name(), candidate.Email()); ok {
		data["first_seen"] = firstSeen
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get candidate detail",
		Data:    data,
	})
}

func (h *CandidateHandler) Create(c *fiber.Ctx) error {
	var form dto.CandidateForm
	if err := c.BodyParser(&form); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid request body",
		}, err)
	}

	opID, err := h.uc.Create(c.UserContext(), &form)
	if err != nil {
		return respondOperationError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "The candidate was saved successfully.",
		Data:    fiber.Map{"operation_id": opID},
	})
}

func (h *CandidateHandler) Update(c *fiber.Ctx) error {
	var form dto.UpdateCandidateForm
	if err := c.BodyParser(&form); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid request body",
		}, err)
	}

	opID, err := h.uc.Update(c.UserContext(), &form)
	if err != nil {
		return respondOperationError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Changes were saved.",
		Data:    fiber.Map{"operation_id": opID},
	})
}

func (h *CandidateHandler) Delete(c *fiber.Ctx) error {
	var form dto.DeleteCandidateForm
	if err := c.BodyParser(&form); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid request body",
		}, err)
	}

	res, err := h.uc.Delete(c.UserContext(), &form)
	if err != nil {
		return respondOperationError(c, err)
	}
	message := "The record was removed."
	if res.JobRole != "" {
		message = fmt.Sprintf("The record for %s (%s) was removed.", res.Name, res.JobRole)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: message,
	})
}

func (h *CandidateHandler) Refresh(c *fiber.Ctx) error {
	if err := h.uc.Refresh(c.UserContext()); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadGateway,
			Message: err.Error(),
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Candidate data has been reloaded from the source.",
		Meta:    fiber.Map{"total": len(h.uc.List())},
	})
}

// respondOperationError maps the usecase error taxonomy onto HTTP statuses:
// validation and duplicates never reached the network, everything else is a
// remote failure.
func respondOperationError(c *fiber.Ctx, err error) error {
	var ferr *util.FormError
	if errors.As(err, &ferr) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnprocessableEntity,
			Message: ferr.Message,
			Details: ferr.Errors,
		})
	}
	switch {
	case errors.Is(err, usecase.ErrDuplicateCandidate):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrNotInQueue):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrAlreadyProcessing):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusConflict,
			Message: err.Error(),
		})
	default:
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadGateway,
			Message: err.Error(),
		}, err)
	}
}
