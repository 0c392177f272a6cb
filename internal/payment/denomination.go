package payment

import "github.com/shopspring/decimal"

type Kind string

const (
	Coin Kind = "coin"
	Bill Kind = "bill"
)

// Denomination is one coin or bill the cashier can tap while tendering.
type Denomination struct {
	Value decimal.Decimal
	Kind  Kind
	Label string
}

var denominations = []Denomination{
	{Value: decimal.New(1, -2), Kind: Coin, Label: "1 Cent"},
	{Value: decimal.New(2, -2), Kind: Coin, Label: "2 Cent"},
	{Value: decimal.New(5, -2), Kind: Coin, Label: "5 Cent"},
	{Value: decimal.New(10, -2), Kind: Coin, Label: "10 Cent"},
	{Value: decimal.New(20, -2), Kind: Coin, Label: "20 Cent"},
	{Value: decimal.New(50, -2), Kind: Coin, Label: "50 Cent"},
	{Value: decimal.NewFromInt(1), Kind: Coin, Label: "1 Euro"},
	{Value: decimal.NewFromInt(2), Kind: Coin, Label: "2 Euro"},
	{Value: decimal.NewFromInt(5), Kind: Bill, Label: "5 Euro"},
	{Value: decimal.NewFromInt(10), Kind: Bill, Label: "10 Euro"},
	{Value: decimal.NewFromInt(20), Kind: Bill, Label: "20 Euro"},
	{Value: decimal.NewFromInt(50), Kind: Bill, Label: "50 Euro"},
	{Value: decimal.NewFromInt(100), Kind: Bill, Label: "100 Euro"},
	{Value: decimal.NewFromInt(200), Kind: Bill, Label: "200 Euro"},
}

// Denominations lists euro coins and bills, smallest first.
func Denominations() []Denomination {
	return append([]Denomination(nil), denominations...)
}

// LookupDenomination finds the coin or bill worth exactly amount.
func LookupDenomination(amount decimal.Decimal) (Denomination, bool) {
	for _, d := range denominations {
		if d.Value.Equal(amount) {
			return d, true
		}
	}
	return Denomination{}, false
}
