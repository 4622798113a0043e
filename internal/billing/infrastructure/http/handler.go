package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/tableside/tableside/internal/billing/application"
	"github.com/tableside/tableside/internal/billing/domain"
	catapp "github.com/tableside/tableside/internal/catalog/application"
)

type Handler struct {
	log      *slog.Logger
	registry *application.Registry
	catalog  *catapp.Service
	tracer   trace.Tracer
}

func NewHandler(log *slog.Logger, registry *application.Registry, catalog *catapp.Service) *Handler {
	return &Handler{
		log:      log,
		registry: registry,
		catalog:  catalog,
		tracer:   otel.Tracer("billing-http"),
	}
}

type openBillReq struct {
	Note       string `json:"note"`
	GuestCount int    `json:"guestCount"`
}

type addItemReq struct {
	ProductID string `json:"productId"`
}

type updateItemReq struct {
	Quantity int `json:"quantity"`
}

type billResp struct {
	domain.ActiveBill
	Total int64 `json:"total"`
}

func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/tables", h.listBills)
	r.Get("/tables/{table}/bill", h.getBill)
	r.Post("/tables/{table}/bill", h.openBill)
	r.Delete("/tables/{table}/bill", h.closeBill)
	r.Post("/tables/{table}/bill/items", h.addItem)
	r.Put("/tables/{table}/bill/items/{item}", h.updateItem)
	r.Delete("/tables/{table}/bill/items/{item}", h.removeItem)

	return r
}

func (h *Handler) listBills(w http.ResponseWriter, r *http.Request) {
	bills := h.registry.List()
	out := make([]billResp, 0, len(bills))
	for _, b := range bills {
		out = append(out, billResp{ActiveBill: b, Total: b.Total()})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) getBill(w http.ResponseWriter, r *http.Request) {
	bill, err := h.registry.GetByTable(chi.URLParam(r, "table"))
	if errors.Is(err, application.ErrBillNotFound) {
		http.Error(w, "no active bill for table", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, billResp{ActiveBill: bill, Total: bill.Total()})
}

func (h *Handler) openBill(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "OpenBill")
	defer span.End()

	table := chi.URLParam(r, "table")

	// One bill per table is held here, not inside the registry.
	if _, err := h.registry.GetByTable(table); err == nil {
		http.Error(w, "table already has an active bill", http.StatusConflict)
		return
	}

	var req openBillReq
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid body", http.StatusBadRequest)
			return
		}
	}

	bill := h.registry.Add(ctx, domain.ActiveBill{
		TableID:    table,
		Note:       req.Note,
		GuestCount: req.GuestCount,
	})
	h.log.Info("bill opened", "table", table, "bill_id", bill.ID)
	writeJSON(w, http.StatusCreated, billResp{ActiveBill: bill, Total: bill.Total()})
}

func (h *Handler) closeBill(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "CloseBill")
	defer span.End()

	table := chi.URLParam(r, "table")
	h.registry.RemoveByTable(ctx, table)
	h.log.Info("bill closed", "table", table)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "AddItem")
	defer span.End()

	var req addItemReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	bill, err := h.registry.GetByTable(chi.URLParam(r, "table"))
	if errors.Is(err, application.ErrBillNotFound) {
		http.Error(w, "no active bill for table", http.StatusNotFound)
		return
	}

	product, err := h.catalog.Get(req.ProductID)
	if errors.Is(err, catapp.ErrProductNotFound) {
		http.Error(w, "unknown product", http.StatusNotFound)
		return
	}
	if product.Stock <= 0 {
		http.Error(w, "product out of stock", http.StatusConflict)
		return
	}

	bill.LineItems = domain.AddToCart(bill.LineItems, product)
	h.saveBill(ctx, w, bill)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "UpdateItem")
	defer span.End()

	var req updateItemReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	bill, err := h.registry.GetByTable(chi.URLParam(r, "table"))
	if errors.Is(err, application.ErrBillNotFound) {
		http.Error(w, "no active bill for table", http.StatusNotFound)
		return
	}

	bill.LineItems = domain.UpdateQuantity(bill.LineItems, chi.URLParam(r, "item"), req.Quantity)
	h.saveBill(ctx, w, bill)
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "RemoveItem")
	defer span.End()

	bill, err := h.registry.GetByTable(chi.URLParam(r, "table"))
	if errors.Is(err, application.ErrBillNotFound) {
		http.Error(w, "no active bill for table", http.StatusNotFound)
		return
	}

	bill.LineItems = domain.RemoveFromCart(bill.LineItems, chi.URLParam(r, "item"))
	h.saveBill(ctx, w, bill)
}

func (h *Handler) saveBill(ctx context.Context, w http.ResponseWriter, bill domain.ActiveBill) {
	stored, err := h.registry.Update(ctx, bill)
	if errors.Is(err, application.ErrBillNotFound) {
		http.Error(w, "bill disappeared during update", http.StatusConflict)
		return
	}
	writeJSON(w, http.StatusOK, billResp{ActiveBill: stored, Total: stored.Total()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
