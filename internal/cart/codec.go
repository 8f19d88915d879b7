package cart

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/charcoals/storefront/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// Persisted form of the cart. Currencies travel as ISO codes and are parsed
// back on load; decimal amounts round-trip through their string form.

type moneyDoc struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

type menuItemDoc struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	BeefPrice    moneyDoc `json:"beef_price"`
	ChickenPrice moneyDoc `json:"chicken_price"`
	CategoryID   string   `json:"category_id"`
	IsPopular    bool     `json:"is_popular,omitempty"`
	IsActive     bool     `json:"is_active"`
	Image        string   `json:"image,omitempty"`
}

type extraSelectionDoc struct {
	ExtraID   string   `json:"extra_id"`
	Name      string   `json:"name"`
	UnitPrice moneyDoc `json:"unit_price"`
}

type lineItemDoc struct {
	ID        string              `json:"id"`
	Product   menuItemDoc         `json:"product"`
	MeatType  string              `json:"meat_type"`
	Extras    []extraSelectionDoc `json:"extras,omitempty"`
	Quantity  int                 `json:"quantity"`
	UnitTotal moneyDoc            `json:"unit_total"`
	CreatedAt time.Time           `json:"created_at"`
}

type snapshotDoc struct {
	Items []lineItemDoc `json:"items"`
}

type customerDoc struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func encodeSnapshot(items []domain.LineItem) ([]byte, error) {
	doc := snapshotDoc{Items: make([]lineItemDoc, 0, len(items))}
	for _, item := range items {
		doc.Items = append(doc.Items, mapLineItemToDoc(item))
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}

	return raw, nil
}

func decodeSnapshot(raw []byte) ([]domain.LineItem, error) {
	var doc snapshotDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("json.Unmarshal: %w", err)
	}

	var items []domain.LineItem
	for _, d := range doc.Items {
		item, err := mapDocToLineItem(d)
		if err != nil {
			return nil, fmt.Errorf("mapDocToLineItem[%s]: %w", d.ID, err)
		}
		items = append(items, item)
	}

	return items, nil
}

func encodeCustomer(info domain.CustomerInfo) ([]byte, error) {
	raw, err := json.Marshal(customerDoc(info))
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}
	return raw, nil
}

func decodeCustomer(raw []byte) (domain.CustomerInfo, error) {
	var doc customerDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return domain.CustomerInfo{}, fmt.Errorf("json.Unmarshal: %w", err)
	}
	return domain.CustomerInfo(doc), nil
}

func mapLineItemToDoc(item domain.LineItem) lineItemDoc {
	extras := make([]extraSelectionDoc, 0, len(item.Extras))
	for _, e := range item.Extras {
		extras = append(extras, extraSelectionDoc{
			ExtraID:   e.ExtraID,
			Name:      e.Name,
			UnitPrice: mapMoneyToDoc(e.UnitPrice),
		})
	}

	return lineItemDoc{
		ID: item.ID,
		Product: menuItemDoc{
			ID:           item.Product.ID,
			Name:         item.Product.Name,
			Description:  item.Product.Description,
			BeefPrice:    mapMoneyToDoc(item.Product.BeefPrice),
			ChickenPrice: mapMoneyToDoc(item.Product.ChickenPrice),
			CategoryID:   item.Product.CategoryID,
			IsPopular:    item.Product.IsPopular,
			IsActive:     item.Product.IsActive,
			Image:        item.Product.Image,
		},
		MeatType:  string(item.MeatType),
		Extras:    extras,
		Quantity:  item.Quantity,
		UnitTotal: mapMoneyToDoc(item.UnitTotal),
		CreatedAt: item.CreatedAt,
	}
}

func mapDocToLineItem(d lineItemDoc) (domain.LineItem, error) {
	product := domain.MenuItem{
		ID:          d.Product.ID,
		Name:        d.Product.Name,
		Description: d.Product.Description,
		CategoryID:  d.Product.CategoryID,
		IsPopular:   d.Product.IsPopular,
		IsActive:    d.Product.IsActive,
		Image:       d.Product.Image,
	}

	var err error
	if product.BeefPrice, err = mapDocToMoney(d.Product.BeefPrice); err != nil {
		return domain.LineItem{}, fmt.Errorf("beef_price: %w", err)
	}
	if product.ChickenPrice, err = mapDocToMoney(d.Product.ChickenPrice); err != nil {
		return domain.LineItem{}, fmt.Errorf("chicken_price: %w", err)
	}

	var extras []domain.ExtraSelection
	for _, e := range d.Extras {
		price, err := mapDocToMoney(e.UnitPrice)
		if err != nil {
			return domain.LineItem{}, fmt.Errorf("extra[%s]: %w", e.ExtraID, err)
		}
		extras = append(extras, domain.ExtraSelection{
			ExtraID:   e.ExtraID,
			Name:      e.Name,
			UnitPrice: price,
		})
	}

	unitTotal, err := mapDocToMoney(d.UnitTotal)
	if err != nil {
		return domain.LineItem{}, fmt.Errorf("unit_total: %w", err)
	}

	return domain.LineItem{
		ID:        d.ID,
		Product:   product,
		MeatType:  domain.MeatType(d.MeatType),
		Extras:    extras,
		Quantity:  d.Quantity,
		UnitTotal: unitTotal,
		CreatedAt: d.CreatedAt,
	}, nil
}

func mapMoneyToDoc(m domain.Money) moneyDoc {
	return moneyDoc{Amount: m.Amount, Currency: m.Currency.String()}
}

func mapDocToMoney(d moneyDoc) (domain.Money, error) {
	unit, err := currency.ParseISO(d.Currency)
	if err != nil {
		return domain.Money{}, fmt.Errorf("currency[%s] is not valid: %w", d.Currency, err)
	}

	return domain.Money{Amount: d.Amount, Currency: unit}, nil
}
