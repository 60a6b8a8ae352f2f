package types

// Order is a pending order as the order store returns it. The date keeps
// its ISO wire form; only the YYYY-MM-DD prefix matters for bucketing.
type Order struct {
	ID          int64  `json:"id"`
	Distributor string `json:"distribuidor"`
	Date        string `json:"fecha"`
	Amount      Amount `json:"valor"`
	Description string `json:"descripcion,omitempty"`
}

// DatePrefix returns the calendar-day part of the order's date.
func (o Order) DatePrefix() string {
	if len(o.Date) < 10 {
		return o.Date
	}
	return o.Date[:10]
}

// OrderDraft is user input for creating or updating an order. It has no
// ID; the order store assigns one on creation.
type OrderDraft struct {
	Distributor string
	Amount      Amount
	Date        string
	Description string
}

// Stats are the displayed aggregates. Field tags match the order store's
// resumen-general response, so a summary fetch decodes straight into it.
// All three fields tolerate numeric text.
type Stats struct {
	OrderCount Amount `json:"total_pedidos"`
	ValueToday Amount `json:"total_hoy"`
	ValueTotal Amount `json:"total_general"`
}

// Count returns the order count as an integer.
func (s Stats) Count() int {
	return int(s.OrderCount.IntPart())
}
