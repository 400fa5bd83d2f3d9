package config

const defaultCurrencySymbol = "$"

type AppConfig struct {
	CurrencySymbolName string `yaml:"currency-symbol"`
	ConfirmDeleteFlag  bool   `yaml:"confirm-delete"`
}

func (s *AppConfig) CurrencySymbol() string {
	return s.CurrencySymbolName
}

func (s *AppConfig) ConfirmDelete() bool {
	return s.ConfirmDeleteFlag
}
