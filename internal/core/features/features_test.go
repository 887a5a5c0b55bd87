package features

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/cucumber/godog"

	"github.com/lamontana/storefront/internal/core"
)

type storefrontContext struct {
	cart     *core.Cart
	products map[string]core.Product
	err      error

	outcome core.ShippingOutcome

	job      core.PrintJobInput
	jobTotal int
}

func (c *storefrontContext) reset() {
	c.cart = core.NewCart()
	c.products = map[string]core.Product{}
	c.err = nil
	c.outcome = core.ShippingMissing
	c.job = core.PrintJobInput{}
	c.jobTotal = 0
}

func (c *storefrontContext) product(name string) (*core.Product, error) {
	p, ok := c.products[name]
	if !ok {
		return nil, fmt.Errorf("product %q is not in the catalog", name)
	}
	return &p, nil
}

// Cart steps

func (c *storefrontContext) anEmptyCart() error {
	c.cart = core.NewCart()
	return nil
}

func (c *storefrontContext) theProductPricedAt(name string, price int) error {
	c.products[name] = core.Product{Name: name, Price: price, Category: core.CategoryPrint}
	return nil
}

func (c *storefrontContext) iAdd(name string) error {
	p, err := c.product(name)
	if err != nil {
		return err
	}
	return c.cart.Add(p)
}

func (c *storefrontContext) iDecrement(name string) error {
	p, err := c.product(name)
	if err != nil {
		return err
	}
	return c.cart.Decrement(p)
}

func (c *storefrontContext) iSetTheQuantityOf(name string, qty int) error {
	p, err := c.product(name)
	if err != nil {
		return err
	}
	return c.cart.SetQuantity(p, qty)
}

func (c *storefrontContext) iClearTheCart() error {
	c.cart.Clear()
	return nil
}

func (c *storefrontContext) iAddAProductWithABlankName() error {
	c.err = c.cart.Add(&core.Product{Name: "  ", Price: 100})
	return nil
}

func (c *storefrontContext) theCartRejectsItAsAnInvalidArgument() error {
	if !errors.Is(c.err, core.ErrInvalidArgument) {
		return fmt.Errorf("expected invalid argument, got %v", c.err)
	}
	return nil
}

func (c *storefrontContext) theCartHoldsUnitsWorth(qty, amount int) error {
	s := c.cart.Snapshot()
	if s.TotalQuantity != qty || s.TotalAmount != amount {
		return fmt.Errorf("expected %d units worth %d, got %d units worth %d", qty, amount, s.TotalQuantity, s.TotalAmount)
	}
	return nil
}

func (c *storefrontContext) theCartHasLines(n int) error {
	if got := len(c.cart.Items()); got != n {
		return fmt.Errorf("expected %d lines, got %d", n, got)
	}
	return nil
}

func (c *storefrontContext) hasQuantity(name string, qty int) error {
	for _, l := range c.cart.Items() {
		if l.Product.Name == name {
			if l.Quantity != qty {
				return fmt.Errorf("expected quantity %d for %q, got %d", qty, name, l.Quantity)
			}
			return nil
		}
	}
	return fmt.Errorf("no line for %q", name)
}

func (c *storefrontContext) theCartIsEmpty() error {
	s := c.cart.Snapshot()
	if len(s.Lines) != 0 || s.TotalAmount != 0 || s.TotalQuantity != 0 {
		return fmt.Errorf("expected empty cart, got %+v", s)
	}
	return nil
}

// Shipping steps

func (c *storefrontContext) iCheckThePostalCode(code string) error {
	c.outcome = core.ClassifyPostalCode(code)
	return nil
}

func (c *storefrontContext) theShippingOutcomeIs(want string) error {
	if c.outcome.String() != want {
		return fmt.Errorf("expected outcome %q, got %q", want, c.outcome)
	}
	return nil
}

// Pricing steps

func (c *storefrontContext) aPrintJobOfPages(pages string) error {
	c.job.PageCount = pages
	return nil
}

func (c *storefrontContext) colorMode(mode string) error {
	c.job.ColorMode = mode
	return nil
}

func (c *storefrontContext) duplexPrinting() error {
	c.job.Duplex = true
	return nil
}

func (c *storefrontContext) ringBinding() error {
	c.job.RingBinding = true
	return nil
}

func (c *storefrontContext) softcoverBinding() error {
	c.job.SoftcoverBinding = true
	return nil
}

func (c *storefrontContext) iPriceTheJob() error {
	q, err := core.NewPricingService(nil, 0, nil).Quote(context.Background(), c.job)
	if err != nil {
		return err
	}
	c.jobTotal = q.Total
	return nil
}

func (c *storefrontContext) theJobTotalIs(want int) error {
	if c.jobTotal != want {
		return fmt.Errorf("expected job total %d, got %d", want, c.jobTotal)
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	sc := &storefrontContext{}

	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		sc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^an empty cart$`, sc.anEmptyCart)
	ctx.Step(`^the product "([^"]*)" priced at (\d+)$`, sc.theProductPricedAt)
	ctx.Step(`^a print job of "([^"]*)" pages$`, sc.aPrintJobOfPages)
	ctx.Step(`^color mode "([^"]*)"$`, sc.colorMode)
	ctx.Step(`^duplex printing$`, sc.duplexPrinting)
	ctx.Step(`^ring binding$`, sc.ringBinding)
	ctx.Step(`^softcover binding$`, sc.softcoverBinding)

	// When steps
	ctx.Step(`^I add "([^"]*)"$`, sc.iAdd)
	ctx.Step(`^I decrement "([^"]*)"$`, sc.iDecrement)
	ctx.Step(`^I set the quantity of "([^"]*)" to (\d+)$`, sc.iSetTheQuantityOf)
	ctx.Step(`^I clear the cart$`, sc.iClearTheCart)
	ctx.Step(`^I add a product with a blank name$`, sc.iAddAProductWithABlankName)
	ctx.Step(`^I check the postal code "([^"]*)"$`, sc.iCheckThePostalCode)
	ctx.Step(`^I price the job$`, sc.iPriceTheJob)

	// Then steps
	ctx.Step(`^the cart holds (\d+) units worth (\d+)$`, sc.theCartHoldsUnitsWorth)
	ctx.Step(`^the cart has (\d+) lines?$`, sc.theCartHasLines)
	ctx.Step(`^"([^"]*)" has quantity (\d+)$`, sc.hasQuantity)
	ctx.Step(`^the cart is empty$`, sc.theCartIsEmpty)
	ctx.Step(`^the cart rejects it as an invalid argument$`, sc.theCartRejectsItAsAnInvalidArgument)
	ctx.Step(`^the shipping outcome is "([^"]*)"$`, sc.theShippingOutcomeIs)
	ctx.Step(`^the job total is (\d+)$`, sc.theJobTotalIs)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"cart.feature", "shipping.feature", "pricing.feature"},
			TestingT: t,
			Strict:   true,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
