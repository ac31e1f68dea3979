package split

import (
	"fmt"

	"github.com/osse101/StoneSplit_Go/internal/domain"
)

// Share is one recipient's amount, kept in input order.
type Share struct {
	Address string `json:"address"`
	Amount  int    `json:"amount"`
}

// Plan holds the figures behind a split.
type Plan struct {
	Total     int     `json:"total"`
	Base      int     `json:"base"`
	Remainder int     `json:"remainder"`
	Shares    []Share `json:"shares"`
}

// Result converts the ordered shares into the address -> amount mapping.
func (p *Plan) Result() domain.SplitResult {
	result := make(domain.SplitResult, len(p.Shares))
	for _, share := range p.Shares {
		result[share.Address] = share.Amount
	}
	return result
}

// isNotExactDivision reports whether total leaves a remainder when divided among recipients.
// recipients must be non-zero.
func isNotExactDivision(total, recipients int) bool {
	return total%recipients != 0
}

// Calculate splits the items' total among recipients. Every recipient gets
// total / len(recipients); when that leaves a remainder, the first recipients
// in list order get one extra unit each until it is used up.
func Calculate(items []domain.LineItem, recipients []domain.Recipient) (domain.SplitResult, error) {
	plan, err := Breakdown(items, recipients)
	if err != nil {
		return nil, err
	}
	return plan.Result(), nil
}

// Breakdown performs the same split as Calculate but keeps the intermediate
// figures and the recipients' order.
func Breakdown(items []domain.LineItem, recipients []domain.Recipient) (*Plan, error) {
	if len(items) == 0 || len(recipients) == 0 {
		return nil, fmt.Errorf(ErrMsgEmptyInputFmt, domain.ErrEmptyInput, len(items), len(recipients))
	}

	total := domain.ItemsTotal(items)
	people := len(recipients)
	base := total / people

	plan := &Plan{
		Total:  total,
		Base:   base,
		Shares: make([]Share, 0, people),
	}

	if !isNotExactDivision(total, people) {
		for _, r := range recipients {
			plan.Shares = append(plan.Shares, Share{Address: r.Address, Amount: base})
		}
		return plan, nil
	}

	plan.Remainder = total - base*people

	// Each recipient consumes one unit while any are left
	rest := plan.Remainder
	for _, r := range recipients {
		amount := base
		if rest >= 1 {
			amount++
		}
		plan.Shares = append(plan.Shares, Share{Address: r.Address, Amount: amount})
		rest--
	}

	return plan, nil
}
