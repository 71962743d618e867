package response

import (
	"time"

	"voucher-ledger/internal/usecase/queries"
)

type PayoutResponse struct {
	ID        string    `json:"id"`
	Reference string    `json:"reference"`
	Asset     string    `json:"asset"`
	Payer     string    `json:"payer"`
	Payee     string    `json:"payee"`
	Amount    Amount    `json:"amount"`
	Kind      string    `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
}

type PayoutPageResponse struct {
	Items      []PayoutResponse `json:"items"`
	NextCursor string           `json:"next_cursor,omitempty"`
}

func (m *Mapper) Payouts(vs []*queries.PayoutView) ([]PayoutResponse, error) {
	res := make([]PayoutResponse, 0, len(vs))
	if err := m.copy(&res, vs); err != nil {
		return nil, err
	}
	return res, nil
}

func (m *Mapper) PayoutPage(vs []*queries.PayoutView, next *queries.Cursor) (*PayoutPageResponse, error) {
	items, err := m.Payouts(vs)
	if err != nil {
		return nil, err
	}
	page := &PayoutPageResponse{Items: items}
	if next != nil {
		page.NextCursor = next.After
	}
	return page, nil
}
