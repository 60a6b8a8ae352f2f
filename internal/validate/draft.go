package validate

import (
	"fmt"
	"strings"
	"time"

	"github.com/viviapp/pedidos/internal/types"
)

const maxDescriptionLen = 500

// ValidationError reports bad user input. It is raised before any network
// call is made.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Draft checks an order draft against the creation rules: non-empty
// distributor, positive amount, a parseable date, description within the
// limit.
func Draft(draft types.OrderDraft) error {

	if strings.TrimSpace(draft.Distributor) == "" {
		return &ValidationError{Field: "distribuidor", Reason: "cannot be empty"}
	}
	if !draft.Amount.IsPositive() {
		return &ValidationError{Field: "valor", Reason: "must be greater than zero"}
	}
	if !validDate(draft.Date) {
		return &ValidationError{Field: "fecha", Reason: "must be an ISO date"}
	}
	if len(draft.Description) > maxDescriptionLen {
		return &ValidationError{Field: "descripcion", Reason: fmt.Sprintf("longer than %d characters", maxDescriptionLen)}
	}
	return nil
}

func validDate(date string) bool {
	for _, layout := range []string{"2006-01-02", "2006-01-02T15:04:05", time.RFC3339} {
		if _, err := time.Parse(layout, date); err == nil {
			return true
		}
	}
	return false
}
