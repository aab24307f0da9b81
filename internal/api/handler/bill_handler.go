package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skyline-bms/apartment-portal/internal/core/domain"
	"github.com/skyline-bms/apartment-portal/internal/core/ports"
	"github.com/skyline-bms/apartment-portal/internal/core/service"
	"github.com/skyline-bms/apartment-portal/internal/infrastructure/queue"
)

type BillHandler struct {
	bills      *service.BillService
	dispatcher *queue.ReminderDispatcher
}

func NewBillHandler(bills *service.BillService, dispatcher *queue.ReminderDispatcher) *BillHandler {
	return &BillHandler{bills: bills, dispatcher: dispatcher}
}

type billListResponse struct {
	Bills   []domain.Bill      `json:"bills"`
	Summary *ports.BillSummary `json:"summary,omitempty"`
}

// List returns the bill view for the caller's role: accounting roles get the
// full console with derived figures, everyone else gets their own
// apartment's statement. The split mirrors the /bills view junction.
//
// @Summary      List bills
// @Tags         bills
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  billListResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/bills [get]
func (h *BillHandler) List(c echo.Context) error {
	user, err := ctxProfile(c)
	if err != nil {
		return err
	}

	switch user.Role {
	case domain.RoleAdmin, domain.RoleAccountant:
		bills, summary, err := h.bills.Console(c.Request().Context())
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, billListResponse{Bills: bills, Summary: &summary})
	default:
		bills, err := h.bills.ListForApartment(c.Request().Context(), user.ApartmentNumber)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, billListResponse{Bills: bills})
	}
}

type remindersRunResponse struct {
	Enqueued int `json:"enqueued"`
}

// RunReminders scans for bills falling due within the reminder window and
// enqueues one reminder job per bill.
//
// @Summary      Enqueue due-date reminders
// @Tags         bills
// @Produce      json
// @Security     BearerAuth
// @Success      202  {object}  remindersRunResponse
// @Failure      403  {object}  map[string]string
// @Router       /api/v1/reminders/run [post]
func (h *BillHandler) RunReminders(c echo.Context) error {
	due, err := h.bills.DueSoon(c.Request().Context())
	if err != nil {
		return err
	}

	inputs := make([]ports.ReminderInput, 0, len(due))
	for _, b := range due {
		inputs = append(inputs, ports.ReminderInput{
			BillID:          b.ID,
			BillNumber:      b.BillNumber,
			ApartmentNumber: b.ApartmentNumber,
			Title:           b.Title,
			AmountCents:     b.AmountCents,
			DueDate:         b.DueDate.Format("2006-01-02"),
		})
	}
	h.dispatcher.EnqueueBatch(inputs)

	return c.JSON(http.StatusAccepted, remindersRunResponse{Enqueued: len(inputs)})
}
