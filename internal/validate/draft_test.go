package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/viviapp/pedidos/internal/types"
)

func TestDraft(t *testing.T) {

	good := types.OrderDraft{
		Distributor: "Distribuidora Norte",
		Amount:      types.AmountFromFloat(150),
		Date:        "2024-05-01",
	}

	testCases := []struct {
		name      string
		modify    func(d types.OrderDraft) types.OrderDraft
		wantField string
	}{
		{"valid", func(d types.OrderDraft) types.OrderDraft { return d }, ""},
		{"valid with time", func(d types.OrderDraft) types.OrderDraft { d.Date = "2024-05-01T14:30:00"; return d }, ""},
		{"valid rfc3339", func(d types.OrderDraft) types.OrderDraft { d.Date = "2024-05-01T14:30:00Z"; return d }, ""},
		{"empty distributor", func(d types.OrderDraft) types.OrderDraft { d.Distributor = ""; return d }, "distribuidor"},
		{"blank distributor", func(d types.OrderDraft) types.OrderDraft { d.Distributor = "   "; return d }, "distribuidor"},
		{"zero amount", func(d types.OrderDraft) types.OrderDraft { d.Amount = types.AmountFromFloat(0); return d }, "valor"},
		{"negative amount", func(d types.OrderDraft) types.OrderDraft { d.Amount = types.AmountFromFloat(-10); return d }, "valor"},
		{"empty date", func(d types.OrderDraft) types.OrderDraft { d.Date = ""; return d }, "fecha"},
		{"garbage date", func(d types.OrderDraft) types.OrderDraft { d.Date = "01/05/2024"; return d }, "fecha"},
		{"long description", func(d types.OrderDraft) types.OrderDraft { d.Description = strings.Repeat("x", 501); return d }, "descripcion"},
		{"max description", func(d types.OrderDraft) types.OrderDraft { d.Description = strings.Repeat("x", 500); return d }, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Draft(tc.modify(good))
			if tc.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var vErr *ValidationError
			assert.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.wantField, vErr.Field)
		})
	}
}
