package cart

import (
	"fmt"

	"github.com/charcoals/storefront/internal/config"
	"github.com/charcoals/storefront/internal/port"
)

// OptionsFromConfig wires the engine's currency and storage keys from the
// application config.
func OptionsFromConfig(cfg config.Config, store port.KVStore, orders port.OrderService) (Options, error) {
	unit, err := cfg.CurrencyUnit()
	if err != nil {
		return Options{}, fmt.Errorf("cfg.CurrencyUnit: %w", err)
	}

	return Options{
		Store:       store,
		Orders:      orders,
		Currency:    unit,
		CartKey:     cfg.CartKey,
		CustomerKey: cfg.CustomerKey,
	}, nil
}
