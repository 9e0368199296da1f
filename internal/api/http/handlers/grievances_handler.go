package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/grievance-service/internal/api/dto"
	"github.com/spec-kit/grievance-service/internal/domain"
	"github.com/spec-kit/grievance-service/internal/service"
	apperrors "github.com/spec-kit/grievance-service/pkg/util/errorutil"
)

// SubmittedMessage confirms a successful submission.
const SubmittedMessage = "Grievance submitted successfully."

// GrievancesHandler serves grievance intake and listing.
type GrievancesHandler struct {
	service *service.GrievanceService
}

// NewGrievancesHandler constructs handler.
func NewGrievancesHandler(grievanceService *service.GrievanceService) *GrievancesHandler {
	return &GrievancesHandler{service: grievanceService}
}

// Submit POST /submit_grievance/.
func (h *GrievancesHandler) Submit(c *fiber.Ctx) error {
	var req dto.SubmitGrievanceRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", map[string]any{"body": err.Error()})
	}

	var missing []string
	if req.Message == nil {
		missing = append(missing, "message")
	}
	if req.Anonymous == nil {
		missing = append(missing, "anonymous")
	}
	if len(missing) > 0 {
		return apperrors.MissingFields(missing...)
	}

	grievance, err := h.service.Submit(c.UserContext(), service.GrievanceSubmitInput{
		Name:      req.Name,
		Email:     req.Email,
		Message:   *req.Message,
		Anonymous: *req.Anonymous,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.SubmitGrievanceResponse{TicketID: grievance.ID, Message: SubmittedMessage})
}

// List GET /get_grievances/.
func (h *GrievancesHandler) List(c *fiber.Ctx) error {
	grievances, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}
	items := make([]dto.GrievanceView, 0, len(grievances))
	for i := range grievances {
		items = append(items, grievanceView(&grievances[i]))
	}
	return c.JSON(dto.GrievanceListResponse{Grievances: items})
}

func grievanceView(g *domain.Grievance) dto.GrievanceView {
	return dto.GrievanceView{
		TicketID: g.ID,
		Name:     g.DisplayName(),
		Email:    g.DisplayEmail(),
		Message:  g.Message,
	}
}
