package handler

import (
	"context"

	"github.com/fekuna/omnipos-stand-service/internal/model"
	"github.com/fekuna/omnipos-stand-service/internal/product"
	"github.com/fekuna/omnipos-stand-service/internal/product/dto"
	"github.com/fekuna/omnipos-stand-service/internal/rpc"
	"github.com/fekuna/omnipos-stand-service/pkg/logger"
	"go.uber.org/zap"
	"google.golang.org/protobuf/types/known/emptypb"
)

type ProductHandler struct {
	uc     product.UseCase
	logger logger.ZapLogger
}

func NewProductHandler(uc product.UseCase, log logger.ZapLogger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *ProductHandler) AddProduct(ctx context.Context, req *AddProductRequest) (*ProductResponse, error) {
	p, err := h.uc.AddProduct(ctx, &dto.CreateProductInput{
		Name:  req.Name,
		Price: req.Price,
	})
	if err != nil {
		h.logger.Warn("failed to add product", zap.String("name", req.Name), zap.Error(err))
		return nil, rpc.ToStatus(err)
	}
	return &ProductResponse{Product: mapProduct(p)}, nil
}

func (h *ProductHandler) GetProduct(ctx context.Context, req *GetProductRequest) (*ProductResponse, error) {
	p, err := h.uc.GetProduct(ctx, req.Id)
	if err != nil {
		return nil, rpc.ToStatus(err)
	}
	return &ProductResponse{Product: mapProduct(p)}, nil
}

func (h *ProductHandler) UpdateProduct(ctx context.Context, req *UpdateProductRequest) (*ProductResponse, error) {
	p, err := h.uc.UpdateProduct(ctx, &dto.UpdateProductInput{
		ID:    req.Id,
		Field: req.Field,
		Value: req.Value,
	})
	if err != nil {
		return nil, rpc.ToStatus(err)
	}
	return &ProductResponse{Product: mapProduct(p)}, nil
}

func (h *ProductHandler) DeleteProduct(ctx context.Context, req *DeleteProductRequest) (*emptypb.Empty, error) {
	if err := h.uc.DeleteProduct(ctx, req.Id); err != nil {
		return nil, rpc.ToStatus(err)
	}
	return &emptypb.Empty{}, nil
}

func (h *ProductHandler) ListProducts(ctx context.Context, _ *emptypb.Empty) (*ListProductsResponse, error) {
	products, err := h.uc.ListProducts(ctx)
	if err != nil {
		return nil, rpc.ToStatus(err)
	}

	out := make([]*Product, len(products))
	for i := range products {
		out[i] = mapProduct(&products[i])
	}
	return &ListProductsResponse{Products: out}, nil
}

func mapProduct(m *model.Product) *Product {
	if m == nil {
		return nil
	}
	return &Product{
		Id:    m.ID,
		Name:  m.Name,
		Price: m.Price.StringFixed(2),
	}
}
