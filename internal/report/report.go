// Package report renders split results for people to read.
package report

import (
	"fmt"
	"io"

	"github.com/osse101/StoneSplit_Go/internal/domain"
	"github.com/osse101/StoneSplit_Go/internal/split"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// LineFormat is one "address: amount" line
const LineFormat = "%s: %d\n"

// Renderer writes split results ordered by recipient address.
type Renderer struct {
	collator *collate.Collator
}

// NewRenderer creates a renderer that orders addresses by the collation rules of tag.
func NewRenderer(tag language.Tag) *Renderer {
	return &Renderer{collator: collate.New(tag, collate.IgnoreCase)}
}

// Render writes one line per recipient to w.
func (r *Renderer) Render(w io.Writer, result domain.SplitResult) error {
	addresses := make([]string, 0, len(result))
	for address := range result {
		addresses = append(addresses, address)
	}
	r.collator.SortStrings(addresses)

	for _, address := range addresses {
		if err := writeLine(w, address, result[address]); err != nil {
			return err
		}
	}
	return nil
}

// RenderPlan writes the plan's shares in input order, the order remainder
// units were handed out in.
func (r *Renderer) RenderPlan(w io.Writer, plan *split.Plan) error {
	for _, share := range plan.Shares {
		if err := writeLine(w, share.Address, share.Amount); err != nil {
			return err
		}
	}
	return nil
}

func writeLine(w io.Writer, address string, amount int) error {
	if _, err := fmt.Fprintf(w, LineFormat, address, amount); err != nil {
		return fmt.Errorf("failed to write line for %s: %w", address, err)
	}
	return nil
}
