package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fekuna/omnipos-stand-service/internal/model"
	"github.com/shopspring/decimal"
)

// Gateway implements product.Repository and ledger.Repository on top of a KV.
// Every save rewrites the whole value of its key.
type Gateway struct {
	kv KV
}

func NewGateway(kv KV) *Gateway {
	return &Gateway{kv: kv}
}

type storedProduct struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Price json.Number `json:"price"`
}

type storedTransaction struct {
	ProductID   string      `json:"productId"`
	ProductName string      `json:"productName,omitempty"`
	Quantity    int         `json:"quantity"`
	Price       json.Number `json:"price"`
	Timestamp   string      `json:"timestamp"`
	Tip         json.Number `json:"tip"`
}

func (g *Gateway) LoadProducts(ctx context.Context) ([]model.Product, error) {
	var stored []storedProduct
	if err := g.loadJSON(ctx, KeyProducts, &stored); err != nil {
		return nil, err
	}

	products := make([]model.Product, 0, len(stored))
	for _, sp := range stored {
		price, err := parseNumber(sp.Price)
		if err != nil {
			return nil, fmt.Errorf("load products: product %s: %w", sp.ID, err)
		}
		products = append(products, model.Product{ID: sp.ID, Name: sp.Name, Price: price})
	}
	return products, nil
}

func (g *Gateway) SaveProducts(ctx context.Context, products []model.Product) error {
	stored := make([]storedProduct, 0, len(products))
	for _, p := range products {
		stored = append(stored, storedProduct{ID: p.ID, Name: p.Name, Price: json.Number(p.Price.String())})
	}
	return g.saveJSON(ctx, KeyProducts, stored)
}

func (g *Gateway) LoadCashBalance(ctx context.Context) (decimal.Decimal, error) {
	raw, ok, err := g.kv.Get(ctx, KeyCashBalance)
	if err != nil {
		return decimal.Zero, fmt.Errorf("load %s: %w", KeyCashBalance, err)
	}
	raw = strings.TrimSpace(raw)
	if !ok || raw == "" {
		return decimal.Zero, nil
	}
	balance, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("load %s: %w", KeyCashBalance, err)
	}
	return balance, nil
}

func (g *Gateway) SaveCashBalance(ctx context.Context, balance decimal.Decimal) error {
	if err := g.kv.Set(ctx, KeyCashBalance, balance.String()); err != nil {
		return fmt.Errorf("save %s: %w", KeyCashBalance, err)
	}
	return nil
}

func (g *Gateway) LoadTransactions(ctx context.Context) ([]model.TransactionRecord, error) {
	var stored []storedTransaction
	if err := g.loadJSON(ctx, KeyTransactions, &stored); err != nil {
		return nil, err
	}

	records := make([]model.TransactionRecord, 0, len(stored))
	for i, st := range stored {
		price, err := parseNumber(st.Price)
		if err != nil {
			return nil, fmt.Errorf("load transactions: entry %d price: %w", i, err)
		}
		tip, err := parseNumber(st.Tip)
		if err != nil {
			return nil, fmt.Errorf("load transactions: entry %d tip: %w", i, err)
		}
		ts, err := time.Parse(time.RFC3339Nano, st.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("load transactions: entry %d timestamp: %w", i, err)
		}
		records = append(records, model.TransactionRecord{
			ProductID:   st.ProductID,
			ProductName: st.ProductName,
			Quantity:    st.Quantity,
			UnitPrice:   price,
			TipShare:    tip,
			Timestamp:   ts,
		})
	}
	return records, nil
}

func (g *Gateway) SaveTransactions(ctx context.Context, records []model.TransactionRecord) error {
	stored := make([]storedTransaction, 0, len(records))
	for _, r := range records {
		stored = append(stored, storedTransaction{
			ProductID:   r.ProductID,
			ProductName: r.ProductName,
			Quantity:    r.Quantity,
			Price:       json.Number(r.UnitPrice.String()),
			Timestamp:   r.Timestamp.UTC().Format(time.RFC3339Nano),
			Tip:         json.Number(r.TipShare.String()),
		})
	}
	return g.saveJSON(ctx, KeyTransactions, stored)
}

func (g *Gateway) loadJSON(ctx context.Context, key string, dst any) error {
	raw, ok, err := g.kv.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("load %s: %w", key, err)
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("load %s: %w", key, err)
	}
	return nil
}

func (g *Gateway) saveJSON(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	if err := g.kv.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// parseNumber treats a missing number as zero; older entries have no tip.
func parseNumber(n json.Number) (decimal.Decimal, error) {
	if n == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(n.String())
}
