package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/fekuna/omnipos-stand-service/internal/apperror"
	"github.com/fekuna/omnipos-stand-service/internal/model"
	"github.com/fekuna/omnipos-stand-service/internal/product"
	"github.com/fekuna/omnipos-stand-service/internal/product/dto"
	"github.com/fekuna/omnipos-stand-service/pkg/logger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type productUseCase struct {
	mu     sync.Mutex
	repo   product.Repository
	newID  func() (uuid.UUID, error)
	logger logger.ZapLogger
}

func NewProductUseCase(repo product.Repository, log logger.ZapLogger) product.UseCase {
	return &productUseCase{
		repo:   repo,
		newID:  uuid.NewV7,
		logger: log,
	}
}

func (uc *productUseCase) AddProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.Validation("name is required")
	}
	price, err := parsePrice(input.Price)
	if err != nil {
		return nil, err
	}
	if !price.IsPositive() {
		return nil, apperror.Validation("price must be positive, got %s", price)
	}

	id, err := uc.newID()
	if err != nil {
		return nil, fmt.Errorf("generate product id: %w", err)
	}
	p := model.Product{ID: id.String(), Name: name, Price: price}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	products, err := uc.repo.LoadProducts(ctx)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.SaveProducts(ctx, append(products, p)); err != nil {
		return nil, err
	}

	uc.logger.Info("product added",
		zap.String("product_id", p.ID),
		zap.String("name", p.Name),
		zap.String("price", p.Price.StringFixed(2)))
	return &p, nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	products, err := uc.repo.LoadProducts(ctx)
	if err != nil {
		return nil, err
	}
	if i := indexOf(products, id); i >= 0 {
		return &products[i], nil
	}
	return nil, apperror.NotFound("product %q", id)
}

func (uc *productUseCase) ListProducts(ctx context.Context) ([]model.Product, error) {
	return uc.repo.LoadProducts(ctx)
}

// UpdateProduct returns nil without error when the id is unknown.
func (uc *productUseCase) UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error) {
	var apply func(*model.Product)
	switch input.Field {
	case dto.FieldName:
		apply = func(p *model.Product) { p.Name = input.Value }
	case dto.FieldPrice:
		price, err := parsePrice(input.Value)
		if err != nil {
			return nil, err
		}
		if price.IsNegative() {
			return nil, apperror.Validation("price must not be negative, got %s", price)
		}
		apply = func(p *model.Product) { p.Price = price }
	default:
		return nil, apperror.Validation("unknown product field %q", input.Field)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	products, err := uc.repo.LoadProducts(ctx)
	if err != nil {
		return nil, err
	}
	i := indexOf(products, input.ID)
	if i < 0 {
		uc.logger.Debug("update of unknown product ignored", zap.String("product_id", input.ID))
		return nil, nil
	}
	apply(&products[i])
	if err := uc.repo.SaveProducts(ctx, products); err != nil {
		return nil, err
	}

	uc.logger.Info("product updated",
		zap.String("product_id", input.ID),
		zap.String("field", input.Field))
	p := products[i]
	return &p, nil
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	products, err := uc.repo.LoadProducts(ctx)
	if err != nil {
		return err
	}
	i := indexOf(products, id)
	if i < 0 {
		return nil // already gone
	}
	products = append(products[:i], products[i+1:]...)
	if err := uc.repo.SaveProducts(ctx, products); err != nil {
		return err
	}

	uc.logger.Info("product deleted", zap.String("product_id", id))
	return nil
}

func parsePrice(s string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, apperror.Validation("price %q is not a number", s)
	}
	if !price.Equal(price.Round(2)) {
		return decimal.Zero, apperror.Validation("price %q has more than two decimal places", s)
	}
	return price, nil
}

func indexOf(products []model.Product, id string) int {
	for i := range products {
		if products[i].ID == id {
			return i
		}
	}
	return -1
}
