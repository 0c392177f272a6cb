package handler

import (
	"context"

	"github.com/fekuna/omnipos-stand-service/internal/rpc"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
)

const ServiceName = "omnipos.stand.v1.CatalogService"

type Product struct {
	Id    string `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
}

type AddProductRequest struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

type GetProductRequest struct {
	Id string `json:"id"`
}

type UpdateProductRequest struct {
	Id    string `json:"id"`
	Field string `json:"field"`
	Value string `json:"value"`
}

type DeleteProductRequest struct {
	Id string `json:"id"`
}

// ProductResponse carries no product when an update hit an unknown id.
type ProductResponse struct {
	Product *Product `json:"product,omitempty"`
}

type ListProductsResponse struct {
	Products []*Product `json:"products"`
}

type CatalogServiceServer interface {
	AddProduct(context.Context, *AddProductRequest) (*ProductResponse, error)
	GetProduct(context.Context, *GetProductRequest) (*ProductResponse, error)
	UpdateProduct(context.Context, *UpdateProductRequest) (*ProductResponse, error)
	DeleteProduct(context.Context, *DeleteProductRequest) (*emptypb.Empty, error)
	ListProducts(context.Context, *emptypb.Empty) (*ListProductsResponse, error)
}

var CatalogService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CatalogServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		rpc.UnaryMethod(ServiceName, "AddProduct", CatalogServiceServer.AddProduct),
		rpc.UnaryMethod(ServiceName, "GetProduct", CatalogServiceServer.GetProduct),
		rpc.UnaryMethod(ServiceName, "UpdateProduct", CatalogServiceServer.UpdateProduct),
		rpc.UnaryMethod(ServiceName, "DeleteProduct", CatalogServiceServer.DeleteProduct),
		rpc.UnaryMethod(ServiceName, "ListProducts", CatalogServiceServer.ListProducts),
	},
	Metadata: "omnipos/stand/v1/catalog.proto",
}

func RegisterCatalogServiceServer(s grpc.ServiceRegistrar, srv CatalogServiceServer) {
	s.RegisterService(&CatalogService_ServiceDesc, srv)
}
