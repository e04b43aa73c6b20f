package models

import "github.com/shopspring/decimal"

// DefaultDepositMethod is used when a deposit names no method.
const DefaultDepositMethod = "BTC"

// PaymentRail describes a crypto rail deposits can be paid through.
type PaymentRail struct {
	Method    string `yaml:"method"`     // Deposit method that selects the rail, e.g. BTC
	Asset     string `yaml:"asset"`      // Asset symbol quoted by the price oracle
	CoinID    string `yaml:"coin_id"`    // Oracle-side coin identifier, e.g. bitcoin
	Address   string `yaml:"address"`    // Receiving address, falls back to the configured demo address
	URIScheme string `yaml:"uri_scheme"` // Payment URI scheme, e.g. bitcoin
	Decimals  int32  `yaml:"decimals"`   // Precision of the crypto amount
}

// PaymentInstructions tell the payer how to fund a deposit.
// swagger:model PaymentInstructions
type PaymentInstructions struct {
	Method       string           `json:"method"`
	Asset        string           `json:"asset,omitempty"`
	Address      string           `json:"address,omitempty"`
	AmountCrypto *decimal.Decimal `json:"amountCrypto,omitempty"`
	RateEUR      *decimal.Decimal `json:"rateEUR,omitempty"`
	URI          string           `json:"uri,omitempty"`
	Instructions string           `json:"instructions,omitempty"`
	Error        string           `json:"error,omitempty"`
}
