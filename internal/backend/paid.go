package backend

import (
	"context"
	"io"

	"github.com/go-resty/resty/v2"

	"github.com/viviapp/pedidos/internal/types"
)

// ExportFilename is the name the exported spreadsheet is saved under.
const ExportFilename = "pagados.xlsx"

// PaymentClient talks to the remote paid-records store (the "pagados").
type PaymentClient struct {
	client *resty.Client
}

func NewPaymentClient(address string) *PaymentClient {
	return &PaymentClient{
		client: resty.New().SetBaseURL(address),
	}
}

// Append writes a paid record for the order. The server stamps its own
// creation time; the client sends the order as-is.
func (c *PaymentClient) Append(ctx context.Context, order types.Order) error {

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(order).
		Post("/pagados/agregar")
	if err != nil {
		return &TransportError{Op: "append paid record", Err: err}
	}
	if !resp.IsSuccess() {
		return &RemoteRejection{Op: "append paid record", Status: resp.StatusCode(), Body: string(resp.Body())}
	}
	return nil
}

// Export streams the paid-records spreadsheet into w. The stream is
// opaque to the client; it is saved as a download, never parsed.
func (c *PaymentClient) Export(ctx context.Context, w io.Writer) error {

	resp, err := c.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get("/pagados/exportar")
	if err != nil {
		return &TransportError{Op: "export paid records", Err: err}
	}
	body := resp.RawBody()
	defer body.Close()

	if !resp.IsSuccess() {
		raw, _ := io.ReadAll(body)
		return &RemoteRejection{Op: "export paid records", Status: resp.StatusCode(), Body: string(raw)}
	}

	if _, err := io.Copy(w, body); err != nil {
		return &TransportError{Op: "export paid records", Err: err}
	}
	return nil
}
