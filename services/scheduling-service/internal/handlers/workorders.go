package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/trademate-pro/backend/services/scheduling-service/internal/model"
	"github.com/trademate-pro/backend/services/scheduling-service/internal/outbox"
	"github.com/trademate-pro/backend/services/scheduling-service/internal/storage"
)

type workOrderItem struct {
	WorkOrderID   string `json:"work_order_id"`
	EmployeeID    string `json:"employee_id"`
	CustomerName  string `json:"customer_name"`
	JobType       string `json:"job_type"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	Status        string `json:"status"`
	DepositCents  int64  `json:"deposit_cents,omitempty"`
	CancelledAt   string `json:"cancelled_at,omitempty"`
	CancelReason  string `json:"cancel_reason,omitempty"`
	CreatedAt     string `json:"created_at"`
}

type cancelWorkOrderRequest struct {
	WorkOrderID string `json:"work_order_id"`
	Reason      string `json:"reason"`
}

type cancelWorkOrderResponse struct {
	WorkOrderID string `json:"work_order_id"`
	Status      string `json:"status"`
	CancelledAt string `json:"cancelled_at"`
}

// ListWorkOrders serves the dispatcher board. Company scoping comes from the
// X-Company-Id header set by the gateway.
func (h *Handler) ListWorkOrders(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	companyID := strings.TrimSpace(r.Header.Get("X-Company-Id"))
	if companyID == "" {
		companyID = strings.TrimSpace(r.URL.Query().Get("company_id"))
	}
	if companyID == "" {
		http.Error(w, "company_id required", http.StatusBadRequest)
		return
	}

	limit := 50
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}

	orders, err := h.repo.ListWorkOrders(r.Context(), companyID, limit)
	if err != nil {
		http.Error(w, "failed to list work orders", http.StatusInternalServerError)
		return
	}

	items := make([]workOrderItem, 0, len(orders))
	for _, wo := range orders {
		item := workOrderItem{
			WorkOrderID:  wo.ID,
			EmployeeID:   wo.EmployeeID,
			CustomerName: wo.CustomerName,
			JobType:      wo.JobType,
			StartTime:    wo.StartTime.UTC().Format(time.RFC3339),
			EndTime:      wo.EndTime.UTC().Format(time.RFC3339),
			Status:       wo.Status,
			DepositCents: wo.DepositCents,
			CancelReason: wo.CancelReason,
			CreatedAt:    wo.CreatedAt.UTC().Format(time.RFC3339),
		}
		if wo.CancelledAt != nil {
			item.CancelledAt = wo.CancelledAt.UTC().Format(time.RFC3339)
		}
		items = append(items, item)
	}
	writeJSON(w, http.StatusOK, items)
}

// CancelWorkOrder cancels a scheduled or pending work order, freeing its
// calendar time. Cancelling twice is idempotent.
func (h *Handler) CancelWorkOrder(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	companyID := strings.TrimSpace(r.Header.Get("X-Company-Id"))
	var req cancelWorkOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	req.WorkOrderID = strings.TrimSpace(req.WorkOrderID)
	req.Reason = strings.TrimSpace(req.Reason)
	if companyID == "" || req.WorkOrderID == "" {
		http.Error(w, "company id and work_order_id required", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	tx, err := h.repo.Begin(ctx)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	defer func() { _ = tx.Rollback(ctx) }()

	wo, err := h.repo.GetWorkOrderForUpdate(ctx, tx, companyID, req.WorkOrderID)
	if err != nil {
		if storage.IsNotFound(err) {
			http.Error(w, "work order not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to load work order", http.StatusInternalServerError)
		return
	}

	if wo.Status == model.StatusCancelled && wo.CancelledAt != nil {
		h.writeCancelResponse(w, wo.ID, wo.CancelledAt.UTC())
		return
	}
	switch wo.Status {
	case model.StatusScheduled, model.StatusPendingApproval, model.StatusInProgress:
	default:
		http.Error(w, "work order cannot be cancelled", http.StatusConflict)
		return
	}

	cancelledAt, err := h.repo.CancelWorkOrder(ctx, tx, companyID, wo.ID, req.Reason)
	if err != nil {
		http.Error(w, "failed to cancel work order", http.StatusInternalServerError)
		return
	}

	payload, err := json.Marshal(map[string]any{
		"work_order_id": wo.ID,
		"company_id":    wo.CompanyID,
		"employee_id":   wo.EmployeeID,
		"start_time":    wo.StartTime.UTC().Format(time.RFC3339),
		"end_time":      wo.EndTime.UTC().Format(time.RFC3339),
		"cancelled_at":  cancelledAt.UTC().Format(time.RFC3339),
		"reason":        req.Reason,
	})
	if err != nil {
		http.Error(w, "failed to build cancellation event", http.StatusInternalServerError)
		return
	}
	if err := h.outboxRepo.Insert(ctx, tx, outbox.Event{
		AggregateType: "work_order",
		AggregateID:   wo.ID,
		CompanyID:     wo.CompanyID,
		EventType:     outbox.TopicWorkOrderCancelled,
		Payload:       payload,
	}); err != nil {
		http.Error(w, "failed to write outbox event", http.StatusInternalServerError)
		return
	}

	if err := tx.Commit(ctx); err != nil {
		http.Error(w, "failed to commit", http.StatusInternalServerError)
		return
	}
	h.writeCancelResponse(w, wo.ID, cancelledAt.UTC())
}

func (h *Handler) writeCancelResponse(w http.ResponseWriter, workOrderID string, cancelledAt time.Time) {
	writeJSON(w, http.StatusOK, cancelWorkOrderResponse{
		WorkOrderID: workOrderID,
		Status:      model.StatusCancelled,
		CancelledAt: cancelledAt.Format(time.RFC3339),
	})
}
