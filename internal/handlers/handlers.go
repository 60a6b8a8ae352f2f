package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	logger "github.com/sirupsen/logrus"

	"github.com/viviapp/pedidos/internal/backend"
	"github.com/viviapp/pedidos/internal/cache"
	"github.com/viviapp/pedidos/internal/payment"
	"github.com/viviapp/pedidos/internal/stats"
	"github.com/viviapp/pedidos/internal/types"
	"github.com/viviapp/pedidos/internal/validate"
)

type HandlerSet struct {
	orders *backend.OrderClient
	paid   *backend.PaymentClient
	cache  *cache.Cache
	agg    *stats.Aggregator
	coord  *payment.Coordinator
}

func NewHandlerSet(orders *backend.OrderClient, paid *backend.PaymentClient) *HandlerSet {
	return &HandlerSet{
		orders: orders,
		paid:   paid,
		cache:  cache.New(),
		agg:    stats.NewAggregator(orders),
		coord:  payment.NewCoordinator(paid, orders),
	}
}

type draftBody struct {
	Distributor string       `json:"distribuidor"`
	Amount      types.Amount `json:"valor"`
	Date        string       `json:"fecha"`
	Description string       `json:"descripcion"`
}

func (d draftBody) draft() types.OrderDraft {
	return types.OrderDraft{
		Distributor: d.Distributor,
		Amount:      d.Amount,
		Date:        d.Date,
		Description: d.Description,
	}
}

type listResponse struct {
	Orders []types.Order `json:"pedidos"`
	Stats  types.Stats   `json:"stats"`
}

// HandleGetOrders refreshes the cached list and returns it together with
// the aggregate statistics.
func (h *HandlerSet) HandleGetOrders(w http.ResponseWriter, req *http.Request) {

	if err := h.cache.Refresh(req.Context(), h.orders); err != nil {
		logger.Error(err)
		h.handleRemoteError(err, w)
		return
	}

	orders := h.cache.Orders()
	result := listResponse{
		Orders: orders,
		Stats:  h.agg.Stats(req.Context(), orders),
	}

	h.writeJSON(w, http.StatusOK, result)
}

func (h *HandlerSet) HandleCreateOrder(w http.ResponseWriter, req *http.Request) {

	data, ok := h.parseDraft(w, req)
	if !ok {
		return
	}

	order, err := h.orders.Create(req.Context(), data.draft())
	if err != nil {
		h.handleRemoteError(err, w)
		return
	}

	h.refreshInBackground()
	h.writeJSON(w, http.StatusCreated, order)
}

func (h *HandlerSet) HandleUpdateOrder(w http.ResponseWriter, req *http.Request) {

	id, ok := h.parseID(w, req)
	if !ok {
		return
	}
	data, ok := h.parseDraft(w, req)
	if !ok {
		return
	}

	order, err := h.orders.Update(req.Context(), id, data.draft())
	if err != nil {
		h.handleRemoteError(err, w)
		return
	}

	h.refreshInBackground()
	h.writeJSON(w, http.StatusOK, order)
}

// HandleDeleteOrder deletes remotely, then removes the order from the
// cached view right away so the next read does not wait for the
// reconciling refresh.
func (h *HandlerSet) HandleDeleteOrder(w http.ResponseWriter, req *http.Request) {

	id, ok := h.parseID(w, req)
	if !ok {
		return
	}

	if err := h.orders.Delete(req.Context(), id); err != nil {
		h.handleRemoteError(err, w)
		return
	}

	h.cache.Remove(id)
	h.refreshInBackground()
	w.WriteHeader(http.StatusOK)
}

// HandleMarkPaid runs the pending-to-paid transition. A partial
// transition answers 409 so the frontend offers "retry removal" instead
// of re-sending the payment.
func (h *HandlerSet) HandleMarkPaid(w http.ResponseWriter, req *http.Request) {

	id, ok := h.parseID(w, req)
	if !ok {
		return
	}

	order, found := h.cache.Get(id)
	if !found {
		if err := h.cache.Refresh(req.Context(), h.orders); err != nil {
			h.handleRemoteError(err, w)
			return
		}
		if order, found = h.cache.Get(id); !found {
			http.Error(w, "Order not found", http.StatusNotFound)
			return
		}
	}

	if err := h.coord.MarkPaid(req.Context(), *order); err != nil {
		h.handleRemoteError(err, w)
		return
	}

	h.cache.Remove(id)
	h.refreshInBackground()
	w.WriteHeader(http.StatusOK)
}

// HandleRetryRemoval retries only the removal half of a transition that
// answered 409 earlier. The paid record is never written again.
func (h *HandlerSet) HandleRetryRemoval(w http.ResponseWriter, req *http.Request) {

	id, ok := h.parseID(w, req)
	if !ok {
		return
	}

	if err := h.coord.RetryRemoval(req.Context(), id); err != nil {
		h.handleRemoteError(err, w)
		return
	}

	h.cache.Remove(id)
	h.refreshInBackground()
	w.WriteHeader(http.StatusOK)
}

// HandleExport proxies the paid-records spreadsheet as a file download.
func (h *HandlerSet) HandleExport(w http.ResponseWriter, req *http.Request) {

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+backend.ExportFilename+`"`)

	// a failure mid-stream cannot be reported anymore; one before the
	// first byte still can
	if err := h.paid.Export(req.Context(), w); err != nil {
		logger.Error(err)
		h.handleRemoteError(err, w)
	}
}

func (h *HandlerSet) parseID(w http.ResponseWriter, req *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(req, "id"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid order id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func (h *HandlerSet) parseDraft(w http.ResponseWriter, req *http.Request) (draftBody, bool) {

	var data draftBody

	body, err := io.ReadAll(req.Body)
	if err != nil {
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return data, false
	}
	if err := json.Unmarshal(body, &data); err != nil {
		http.Error(w, "Could not parse body", http.StatusBadRequest)
		return data, false
	}
	return data, true
}

func (h *HandlerSet) writeJSON(w http.ResponseWriter, status int, payload any) {

	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Could not serialize result", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err = w.Write(response); err != nil {
		logger.Error(err)
	}
}

// refreshInBackground reconciles the cache with the server after a
// mutation. The request context is gone by the time it runs, hence
// context.Background.
func (h *HandlerSet) refreshInBackground() {
	go func() {
		if err := h.cache.Refresh(context.Background(), h.orders); err != nil {
			logger.Error(err)
		}
	}()
}

func (h *HandlerSet) handleRemoteError(err error, w http.ResponseWriter) {

	var validationErr *validate.ValidationError
	var notFound *backend.NotFoundError
	var partial *payment.PartialTransitionError
	var rejection *backend.RemoteRejection
	var transportErr *backend.TransportError
	var protocolErr *backend.ProtocolError

	switch {
	case errors.As(err, &validationErr):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.As(err, &notFound):
		http.Error(w, "Order not found", http.StatusNotFound)
	case errors.As(err, &partial):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.As(err, &rejection):
		http.Error(w, rejection.Body, rejection.Status)
	case errors.As(err, &transportErr):
		http.Error(w, "Remote store unreachable", http.StatusBadGateway)
	case errors.As(err, &protocolErr):
		http.Error(w, "Unexpected response from remote store", http.StatusBadGateway)
	default:
		http.Error(w, "Unknown error", http.StatusInternalServerError)
	}
}
