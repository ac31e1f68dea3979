package domain

// LineItem is a purchased entry on the shared expense list.
// Name is descriptive only and never affects the calculation.
type LineItem struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int    `json:"unit_price"`
}

// Total returns the item's contribution to the list total.
func (i LineItem) Total() int {
	return i.Quantity * i.UnitPrice
}

// Recipient is someone the total is divided among, keyed by address.
// Addresses are assumed unique; duplicates collapse into one result entry.
type Recipient struct {
	Address string `json:"address"`
}

// SplitResult maps a recipient address to the integer amount owed.
type SplitResult map[string]int

// Sum adds up every amount in the result
func (r SplitResult) Sum() int {
	sum := 0
	for _, amount := range r {
		sum += amount
	}
	return sum
}

// ItemsTotal sums quantity * unit price over all items.
func ItemsTotal(items []LineItem) int {
	total := 0
	for _, item := range items {
		total += item.Total()
	}
	return total
}
