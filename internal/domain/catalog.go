package domain

import "fmt"

// MeatType selects which price variant of a MenuItem applies.
type MeatType string

const (
	MeatBeef    MeatType = "beef"
	MeatChicken MeatType = "chicken"
)

func (m MeatType) Valid() bool {
	return m == MeatBeef || m == MeatChicken
}

type Category struct {
	ID       string
	Name     string
	Icon     string
	IsActive bool
}

type MenuItem struct {
	ID           string
	Name         string
	Description  string
	BeefPrice    Money
	ChickenPrice Money
	CategoryID   string
	IsPopular    bool
	IsActive     bool
	Image        string
}

func (i MenuItem) VariantPrice(meat MeatType) (Money, error) {
	switch meat {
	case MeatBeef:
		return i.BeefPrice, nil
	case MeatChicken:
		return i.ChickenPrice, nil
	default:
		return Money{}, fmt.Errorf("meat type[%s] is not valid", meat)
	}
}

type Extra struct {
	ID       string
	Name     string
	Price    Money
	IsActive bool
}
