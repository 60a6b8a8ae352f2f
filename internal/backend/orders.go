package backend

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/viviapp/pedidos/internal/types"
	"github.com/viviapp/pedidos/internal/validate"
)

// OrderClient talks to the remote order store (the pending "pedidos").
type OrderClient struct {
	client *resty.Client
}

func NewOrderClient(address string) *OrderClient {
	return &OrderClient{
		client: resty.New().SetBaseURL(address),
	}
}

type createPayload struct {
	Distributor string       `json:"distribuidor"`
	Amount      types.Amount `json:"valor"`
	Date        string       `json:"fecha"`
	Description string       `json:"descripcion,omitempty"`
}

// The update endpoint grew different field names than create; both are
// what the server actually expects.
type updatePayload struct {
	Distributor string       `json:"distribuidor"`
	Amount      types.Amount `json:"valor_pedido"`
	Date        string       `json:"fecha_pedido"`
	Description string       `json:"descripcion,omitempty"`
}

// List fetches all pending orders. The server answers with a bare array
// on some deployments and {"pedidos": [...]} on others; both are
// accepted.
func (c *OrderClient) List(ctx context.Context) ([]types.Order, error) {

	resp, err := c.client.R().SetContext(ctx).Get("/pedidos")
	if err != nil {
		return nil, &TransportError{Op: "list orders", Err: err}
	}
	if !resp.IsSuccess() {
		return nil, &RemoteRejection{Op: "list orders", Status: resp.StatusCode(), Body: string(resp.Body())}
	}

	var orders []types.Order
	if err := json.Unmarshal(resp.Body(), &orders); err == nil {
		return orders, nil
	}

	var wrapped struct {
		Orders []types.Order `json:"pedidos"`
	}
	if err := json.Unmarshal(resp.Body(), &wrapped); err != nil {
		return nil, &ProtocolError{Op: "list orders", Err: err}
	}
	return wrapped.Orders, nil
}

// Create validates the draft locally, then posts it. The created order,
// with its server-assigned id, is returned.
func (c *OrderClient) Create(ctx context.Context, draft types.OrderDraft) (*types.Order, error) {

	if err := validate.Draft(draft); err != nil {
		return nil, err
	}

	payload := createPayload{
		Distributor: draft.Distributor,
		Amount:      draft.Amount,
		Date:        draft.Date,
		Description: draft.Description,
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post("/pedidos")
	if err != nil {
		return nil, &TransportError{Op: "create order", Err: err}
	}
	if !resp.IsSuccess() {
		return nil, &RemoteRejection{Op: "create order", Status: resp.StatusCode(), Body: string(resp.Body())}
	}

	var order types.Order
	if err := json.Unmarshal(resp.Body(), &order); err != nil {
		return nil, &ProtocolError{Op: "create order", Err: err}
	}
	return &order, nil
}

// Update validates the draft locally, then replaces the order with the
// given id.
func (c *OrderClient) Update(ctx context.Context, id int64, draft types.OrderDraft) (*types.Order, error) {

	if err := validate.Draft(draft); err != nil {
		return nil, err
	}

	payload := updatePayload{
		Distributor: draft.Distributor,
		Amount:      draft.Amount,
		Date:        draft.Date,
		Description: draft.Description,
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Put(fmt.Sprintf("/pedidos/%d", id))
	if err != nil {
		return nil, &TransportError{Op: "update order", Err: err}
	}
	switch {
	case resp.StatusCode() == 404:
		return nil, &NotFoundError{ID: id}
	case !resp.IsSuccess():
		return nil, &RemoteRejection{Op: "update order", Status: resp.StatusCode(), Body: string(resp.Body())}
	}

	var order types.Order
	if err := json.Unmarshal(resp.Body(), &order); err != nil {
		return nil, &ProtocolError{Op: "update order", Err: err}
	}
	return &order, nil
}

// Delete removes a pending order. The remote is not idempotent: deleting
// an already-removed id yields NotFoundError.
func (c *OrderClient) Delete(ctx context.Context, id int64) error {

	resp, err := c.client.R().SetContext(ctx).Delete(fmt.Sprintf("/pedidos/%d", id))
	if err != nil {
		return &TransportError{Op: "delete order", Err: err}
	}
	switch {
	case resp.StatusCode() == 404:
		return &NotFoundError{ID: id}
	case !resp.IsSuccess():
		return &RemoteRejection{Op: "delete order", Status: resp.StatusCode(), Body: string(resp.Body())}
	}
	return nil
}

// FetchSummary asks the order store for its pre-computed aggregates.
// A server that does not support the endpoint, or answers with something
// unreadable, yields ErrSummaryUnavailable rather than a hard failure.
func (c *OrderClient) FetchSummary(ctx context.Context) (*types.Stats, error) {

	resp, err := c.client.R().SetContext(ctx).Get("/pedidos/resumen-general")
	if err != nil {
		return nil, &TransportError{Op: "fetch summary", Err: err}
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("status %d: %w", resp.StatusCode(), ErrSummaryUnavailable)
	}

	var stats types.Stats
	if err := json.Unmarshal(resp.Body(), &stats); err != nil {
		return nil, fmt.Errorf("%s: %w", err, ErrSummaryUnavailable)
	}
	return &stats, nil
}
