package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ExtraSelection is a value snapshot of an Extra taken when it was added to
// a line item. Catalog price changes never reach back into a cart line.
type ExtraSelection struct {
	ExtraID   string
	Name      string
	UnitPrice Money
}

type LineItem struct {
	ID       string
	Product  MenuItem
	MeatType MeatType
	Extras   []ExtraSelection
	Quantity int

	// UnitTotal = variant price + sum of extra unit prices. Derived via
	// computeUnitTotal, never set directly.
	UnitTotal Money

	CreatedAt time.Time
}

// NewLineItem builds a line item with a fresh id and a computed unit total.
// Quantity below 1 is rejected.
func NewLineItem(product MenuItem, meat MeatType, extras []Extra, quantity int) (LineItem, error) {
	if quantity < 1 {
		return LineItem{}, fmt.Errorf("quantity[%d] must be at least 1", quantity)
	}

	selections := make([]ExtraSelection, 0, len(extras))
	for _, e := range extras {
		selections = append(selections, ExtraSelection{
			ExtraID:   e.ID,
			Name:      e.Name,
			UnitPrice: e.Price,
		})
	}

	item := LineItem{
		ID:        uuid.NewString(),
		Product:   product,
		MeatType:  meat,
		Extras:    selections,
		Quantity:  quantity,
		CreatedAt: time.Now(),
	}

	total, err := item.computeUnitTotal()
	if err != nil {
		return LineItem{}, err
	}
	item.UnitTotal = total

	return item, nil
}

func (li LineItem) computeUnitTotal() (Money, error) {
	total, err := li.Product.VariantPrice(li.MeatType)
	if err != nil {
		return Money{}, fmt.Errorf("product.VariantPrice: %w", err)
	}

	for _, e := range li.Extras {
		total, err = total.Add(e.UnitPrice)
		if err != nil {
			return Money{}, fmt.Errorf("extra[%s]: %w", e.ExtraID, err)
		}
	}

	return total, nil
}

// LineTotal is UnitTotal multiplied by the quantity.
func (li LineItem) LineTotal() Money {
	return li.UnitTotal.MulInt(int64(li.Quantity))
}

func (li LineItem) Clone() LineItem {
	out := li
	out.Extras = make([]ExtraSelection, len(li.Extras))
	copy(out.Extras, li.Extras)
	return out
}

// CartSnapshot is an immutable view of the cart handed to collaborators.
type CartSnapshot struct {
	Items []LineItem
	Total Money
}
