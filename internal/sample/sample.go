// Package sample holds the demonstration datasets the app can split.
package sample

import (
	"sort"

	"github.com/osse101/StoneSplit_Go/internal/domain"
)

// Dataset is a shopping list and the people sharing it.
type Dataset struct {
	Items      []domain.LineItem
	Recipients []domain.Recipient
}

// Dataset names
const (
	NameGroceries = "groceries"
	NameUneven    = "uneven"
	NameEven      = "even"
)

var datasets = map[string]func() Dataset{
	NameGroceries: groceries,
	NameUneven:    uneven,
	NameEven:      even,
}

// Get returns a fresh copy of the named dataset.
func Get(name string) (Dataset, bool) {
	build, ok := datasets[name]
	if !ok {
		return Dataset{}, false
	}
	return build(), true
}

// Exists reports whether name is a known dataset
func Exists(name string) bool {
	_, ok := datasets[name]
	return ok
}

// Names lists the known datasets in sorted order
func Names() []string {
	names := make([]string, 0, len(datasets))
	for name := range datasets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func trio() []domain.Recipient {
	return []domain.Recipient{
		{Address: "hermano@gmail.com"},
		{Address: "brena@hotmail.com"},
		{Address: "lucas@gmail.com"},
	}
}

// groceries: six items totaling 107 shared by six people
func groceries() Dataset {
	return Dataset{
		Items: []domain.LineItem{
			{Name: "Item A", Quantity: 1, UnitPrice: 18},
			{Name: "Item B", Quantity: 1, UnitPrice: 18},
			{Name: "Item C", Quantity: 1, UnitPrice: 18},
			{Name: "Item D", Quantity: 1, UnitPrice: 18},
			{Name: "Item E", Quantity: 1, UnitPrice: 18},
			{Name: "Item F", Quantity: 1, UnitPrice: 17},
		},
		Recipients: append(trio(),
			domain.Recipient{Address: "ariele@gmail.com"},
			domain.Recipient{Address: "fernando@gmail.com"},
			domain.Recipient{Address: "lara@gmail.com"},
		),
	}
}

// uneven: 100 over three people
func uneven() Dataset {
	return Dataset{
		Items: []domain.LineItem{
			{Name: "Item A", Quantity: 25, UnitPrice: 1},
			{Name: "Item B", Quantity: 25, UnitPrice: 1},
			{Name: "Item C", Quantity: 50, UnitPrice: 1},
		},
		Recipients: trio(),
	}
}

// even: 75 over three people
func even() Dataset {
	return Dataset{
		Items: []domain.LineItem{
			{Name: "Item A", Quantity: 25, UnitPrice: 1},
			{Name: "Item B", Quantity: 25, UnitPrice: 1},
			{Name: "Item C", Quantity: 25, UnitPrice: 1},
		},
		Recipients: trio(),
	}
}
