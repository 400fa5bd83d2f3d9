package expense

import (
	"github.com/shopspring/decimal"
)

type Record struct {
	ID          int64
	Amount      decimal.Decimal
	Category    string
	Date        Date
	Description string
}

// Patch carries a partial update. Nil fields keep the current value.
type Patch struct {
	Amount      *decimal.Decimal
	Category    *string
	Date        *Date
	Description *string
}

func (p Patch) Empty() bool {
	return p.Amount == nil && p.Category == nil && p.Date == nil && p.Description == nil
}
