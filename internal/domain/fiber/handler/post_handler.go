package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/movya/candidate-suite/internal/dto"
	"github.com/movya/candidate-suite/internal/service"
	"github.com/movya/candidate-suite/internal/util"
)

type PostHandler struct {
	webhook *service.WebhookService
}

func NewPostHandler(webhook *service.WebhookService) *PostHandler {
	return &PostHandler{webhook: webhook}
}

func (h *PostHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/api/posts/linkedin", h.Publish)
}

func (h *PostHandler) Publish(c *fiber.Ctx) error {
	var form dto.PostForm
	if err := c.BodyParser(&form); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid request body",
		}, err)
	}
	if ferr := form.Validate(); ferr != nil {
		return respondOperationError(c, ferr)
	}

	position, experience, skill, err := h.webhook.PublishPost(c.UserContext(), form.Position, form.Experience, form.Skill)
	if err != nil {
		return respondOperationError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Successfully posted on LinkedIn.",
		Data: fiber.Map{
			"Position":   position,
			"Experience": experience,
			"Skill":      skill,
		},
	})
}
