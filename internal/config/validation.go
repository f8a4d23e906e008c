package config

type ValidationConfig struct {
	BaseConfig
	// CatalogPath points to a .yaml, .yml or .toml file merged over the embedded messages.
	CatalogPath string `envconfig:"CATALOG_PATH"`
	// CatalogPrefix is prepended to every generated message key.
	CatalogPrefix string          `envconfig:"CATALOG_PREFIX"`
	Item          ItemRulesConfig `envconfig:"ITEM"`
}

type ItemRulesConfig struct {
	PriceMin      int `envconfig:"PRICE_MIN" default:"1000" validate:"gte=0"`
	PriceMax      int `envconfig:"PRICE_MAX" default:"1000000" validate:"gtefield=PriceMin"`
	QuantityMax   int `envconfig:"QUANTITY_MAX" default:"9999" validate:"gte=0"`
	TotalPriceMin int `envconfig:"TOTAL_PRICE_MIN" default:"10000" validate:"gte=0"`
}

func LoadValidation() (*ValidationConfig, error) {
	var cfg ValidationConfig
	if err := load(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
