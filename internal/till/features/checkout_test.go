package features

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/cucumber/godog"
	"github.com/fekuna/omnipos-stand-service/internal/ledger"
	ledgeruc "github.com/fekuna/omnipos-stand-service/internal/ledger/usecase"
	"github.com/fekuna/omnipos-stand-service/internal/product"
	"github.com/fekuna/omnipos-stand-service/internal/product/dto"
	productuc "github.com/fekuna/omnipos-stand-service/internal/product/usecase"
	"github.com/fekuna/omnipos-stand-service/internal/storage"
	"github.com/fekuna/omnipos-stand-service/internal/storage/memory"
	"github.com/fekuna/omnipos-stand-service/internal/till"
	tilldto "github.com/fekuna/omnipos-stand-service/internal/till/dto"
	tilluc "github.com/fekuna/omnipos-stand-service/internal/till/usecase"
	"github.com/fekuna/omnipos-stand-service/pkg/logger"
	"github.com/shopspring/decimal"
)

type checkoutTestContext struct {
	ctx      context.Context
	gw       *storage.Gateway
	catalog  product.UseCase
	ledger   ledger.UseCase
	till     till.UseCase
	products map[string]string // name -> id
	checkout *tilldto.CheckoutView
	err      error
}

func (c *checkoutTestContext) reset() {
	log := logger.NewNop()
	c.ctx = context.Background()
	c.gw = storage.NewGateway(memory.NewStore())
	c.catalog = productuc.NewProductUseCase(c.gw, log)
	c.ledger = ledgeruc.NewLedgerUseCase(c.gw, c.gw, log)
	c.till = tilluc.NewTillUseCase(c.catalog, c.ledger, log)
	c.products = map[string]string{}
	c.checkout = nil
	c.err = nil
}

func amount(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}

func expectAmount(what, want string, got decimal.Decimal) error {
	w, err := amount(want)
	if err != nil {
		return err
	}
	if !w.Equal(got) {
		return fmt.Errorf("expected %s %s, got %s", what, want, got.StringFixed(2))
	}
	return nil
}

// Given steps

func (c *checkoutTestContext) theCatalogContains(table *godog.Table) error {
	for i, row := range table.Rows {
		if i == 0 {
			continue // header
		}
		p, err := c.catalog.AddProduct(c.ctx, &dto.CreateProductInput{
			Name:  row.Cells[0].Value,
			Price: row.Cells[1].Value,
		})
		if err != nil {
			return err
		}
		c.products[p.Name] = p.ID
	}
	return nil
}

func (c *checkoutTestContext) theCartHolds(qty int, name string) error {
	id, ok := c.products[name]
	if !ok {
		return fmt.Errorf("no product %q in the catalog", name)
	}
	for i := 0; i < qty; i++ {
		if _, err := c.till.AddToCart(c.ctx, id); err != nil {
			return err
		}
	}
	return nil
}

func (c *checkoutTestContext) aCompletedCheckout(tip, paid string) error {
	if err := c.iOpenTheCheckout(); err != nil {
		return err
	}
	if err := c.iSetATipOf(tip); err != nil {
		return err
	}
	if err := c.iTender(paid); err != nil {
		return err
	}
	_, err := c.till.CompleteCheckout(c.ctx)
	return err
}

// When steps

func (c *checkoutTestContext) iOpenTheCheckout() error {
	c.checkout, c.err = c.till.OpenCheckout(c.ctx)
	return c.err
}

func (c *checkoutTestContext) iSetATipOf(tip string) error {
	v, err := amount(tip)
	if err != nil {
		return err
	}
	c.checkout, c.err = c.till.SetTip(c.ctx, v)
	return c.err
}

func (c *checkoutTestContext) iEnableRoundUp() error {
	c.checkout, c.err = c.till.SetRoundUp(c.ctx, true)
	return c.err
}

func (c *checkoutTestContext) iTender(paid string) error {
	v, err := amount(paid)
	if err != nil {
		return err
	}
	// Pay with the largest denominations first, the way a customer would.
	for _, den := range []string{"200", "100", "50", "20", "10", "5", "2", "1", "0.50", "0.20", "0.10", "0.05", "0.02", "0.01"} {
		d := decimal.RequireFromString(den)
		for v.GreaterThanOrEqual(d) {
			if c.checkout, c.err = c.till.Tender(c.ctx, d); c.err != nil {
				return c.err
			}
			v = v.Sub(d)
		}
	}
	return nil
}

func (c *checkoutTestContext) iResetThePayment() error {
	c.checkout, c.err = c.till.ResetPayment(c.ctx)
	return c.err
}

func (c *checkoutTestContext) iCompleteTheCheckout() error {
	_, c.err = c.till.CompleteCheckout(c.ctx)
	if c.err == nil {
		c.checkout, c.err = c.till.Checkout(c.ctx)
	}
	return nil
}

func (c *checkoutTestContext) iDeleteTheSaleOf(name string) error {
	records, err := c.ledger.ListAll(c.ctx)
	if err != nil {
		return err
	}
	for _, r := range records {
		if r.ProductID == c.products[name] {
			_, err := c.ledger.DeleteRecord(c.ctx, r.ProductID, r.Timestamp)
			return err
		}
	}
	return fmt.Errorf("no sale of %q", name)
}

func (c *checkoutTestContext) iResetEverythingWithoutConfirmation() error {
	c.err = c.ledger.ResetAll(c.ctx, false)
	if c.err == nil {
		return errors.New("expected the reset to be refused")
	}
	return nil
}

func (c *checkoutTestContext) iResetEverythingWithConfirmation() error {
	return c.ledger.ResetAll(c.ctx, true)
}

// Then steps

func (c *checkoutTestContext) theFinalTotalIs(want string) error {
	return expectAmount("final total", want, c.checkout.FinalTotal)
}

func (c *checkoutTestContext) theChangeIs(want string) error {
	return expectAmount("change", want, c.checkout.Change)
}

func (c *checkoutTestContext) theTipIs(want string) error {
	return expectAmount("tip", want, c.checkout.Tip)
}

func (c *checkoutTestContext) theDeficitIs(want string) error {
	return expectAmount("deficit", want, c.checkout.Deficit)
}

func (c *checkoutTestContext) roundUpIsOff() error {
	if c.checkout.RoundUp {
		return errors.New("round-up is still on")
	}
	return nil
}

func (c *checkoutTestContext) theCheckoutStateIs(want string) error {
	if got := c.checkout.State.String(); got != want {
		return fmt.Errorf("expected state %q, got %q", want, got)
	}
	return nil
}

func (c *checkoutTestContext) theCheckoutSucceeds() error {
	return c.err
}

func (c *checkoutTestContext) theCheckoutFailsWith(msg string) error {
	if c.err == nil {
		return errors.New("expected the checkout to fail")
	}
	if !strings.Contains(c.err.Error(), msg) {
		return fmt.Errorf("expected error containing %q, got %q", msg, c.err.Error())
	}
	return nil
}

func (c *checkoutTestContext) theLedgerHoldsRecords(n int) error {
	records, err := c.ledger.ListAll(c.ctx)
	if err != nil {
		return err
	}
	if len(records) != n {
		return fmt.Errorf("expected %d records, got %d", n, len(records))
	}
	return nil
}

func (c *checkoutTestContext) theTipShareOfIs(name, want string) error {
	records, err := c.ledger.ListAll(c.ctx)
	if err != nil {
		return err
	}
	for _, r := range records {
		if r.ProductID == c.products[name] {
			return expectAmount("tip share of "+name, want, r.TipShare)
		}
	}
	return fmt.Errorf("no record for %q", name)
}

func (c *checkoutTestContext) theCashBalanceIs(want string) error {
	balance, err := c.ledger.Balance(c.ctx)
	if err != nil {
		return err
	}
	return expectAmount("cash balance", want, balance)
}

func (c *checkoutTestContext) theCartIsEmpty() error {
	view, err := c.till.Cart(c.ctx)
	if err != nil {
		return err
	}
	if len(view.Lines) != 0 {
		return fmt.Errorf("cart still holds %d lines", len(view.Lines))
	}
	return nil
}

func (c *checkoutTestContext) theCatalogIsEmpty() error {
	products, err := c.catalog.ListProducts(c.ctx)
	if err != nil {
		return err
	}
	if len(products) != 0 {
		return fmt.Errorf("catalog still holds %d products", len(products))
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &checkoutTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^the catalog contains:$`, tc.theCatalogContains)
	ctx.Step(`^the cart holds (\d+) "([^"]*)"$`, tc.theCartHolds)
	ctx.Step(`^a completed checkout with tip (\d+\.\d+) paid with (\d+\.\d+)$`, tc.aCompletedCheckout)

	// When steps
	ctx.Step(`^I open the checkout$`, tc.iOpenTheCheckout)
	ctx.Step(`^I set a tip of (\d+\.\d+)$`, tc.iSetATipOf)
	ctx.Step(`^I enable round-up$`, tc.iEnableRoundUp)
	ctx.Step(`^I tender (\d+\.\d+)$`, tc.iTender)
	ctx.Step(`^I reset the payment$`, tc.iResetThePayment)
	ctx.Step(`^I complete the checkout$`, tc.iCompleteTheCheckout)
	ctx.Step(`^I delete the sale of "([^"]*)"$`, tc.iDeleteTheSaleOf)
	ctx.Step(`^I reset everything without confirmation$`, tc.iResetEverythingWithoutConfirmation)
	ctx.Step(`^I reset everything with confirmation$`, tc.iResetEverythingWithConfirmation)

	// Then steps
	ctx.Step(`^the final total is (\d+\.\d+)$`, tc.theFinalTotalIs)
	ctx.Step(`^the change is (\d+\.\d+)$`, tc.theChangeIs)
	ctx.Step(`^the tip is (\d+\.\d+)$`, tc.theTipIs)
	ctx.Step(`^the deficit is (\d+\.\d+)$`, tc.theDeficitIs)
	ctx.Step(`^round-up is off$`, tc.roundUpIsOff)
	ctx.Step(`^the checkout state is "([^"]*)"$`, tc.theCheckoutStateIs)
	ctx.Step(`^the checkout succeeds$`, tc.theCheckoutSucceeds)
	ctx.Step(`^the checkout fails with "([^"]*)"$`, tc.theCheckoutFailsWith)
	ctx.Step(`^the ledger holds (\d+) records$`, tc.theLedgerHoldsRecords)
	ctx.Step(`^the tip share of "([^"]*)" is (\d+\.\d+)$`, tc.theTipShareOfIs)
	ctx.Step(`^the cash balance is (\d+\.\d+)$`, tc.theCashBalanceIs)
	ctx.Step(`^the cart is empty$`, tc.theCartIsEmpty)
	ctx.Step(`^the catalog is empty$`, tc.theCatalogIsEmpty)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../../../features/checkout.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
