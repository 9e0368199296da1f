package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/grievance-service/internal/api/dto"
	"github.com/spec-kit/grievance-service/internal/service"
	apperrors "github.com/spec-kit/grievance-service/pkg/util/errorutil"
)

// FAQHandler answers HR questions.
type FAQHandler struct {
	service *service.FAQService
}

// NewFAQHandler constructs handler.
func NewFAQHandler(faqService *service.FAQService) *FAQHandler {
	return &FAQHandler{service: faqService}
}

// Ask GET /faq?question=...
//
// Gateway failures still answer 200; the warning travels in the body.
func (h *FAQHandler) Ask(c *fiber.Ctx) error {
	question := c.Query("question")
	if question == "" {
		return apperrors.MissingFields("question")
	}
	return c.JSON(dto.FAQResponse{Response: h.service.Respond(c.UserContext(), question)})
}
