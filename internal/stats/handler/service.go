package handler

import (
	"context"

	"github.com/fekuna/omnipos-stand-service/internal/rpc"
	"google.golang.org/grpc"
)

const ServiceName = "omnipos.stand.v1.StatisticsService"

// StatisticsRequest defaults to revenue, descending.
type StatisticsRequest struct {
	SortBy    string `json:"sort_by,omitempty"`
	SortOrder string `json:"sort_order,omitempty"`
}

type ProductStat struct {
	ProductId    string `json:"product_id"`
	ProductName  string `json:"product_name"`
	Quantity     int    `json:"quantity"`
	TotalRevenue string `json:"total_revenue"`
}

type StatisticsResponse struct {
	TotalProducts   int            `json:"total_products"`
	TotalRevenue    string         `json:"total_revenue"`
	TotalTips       string         `json:"total_tips"`
	OrphanedRevenue string         `json:"orphaned_revenue"`
	PerProduct      []*ProductStat `json:"per_product"`
}

type ExportResponse struct {
	ContentType string `json:"content_type"`
	Data        string `json:"data"`
}

type StatisticsServiceServer interface {
	GetStatistics(context.Context, *StatisticsRequest) (*StatisticsResponse, error)
	ExportStatistics(context.Context, *StatisticsRequest) (*ExportResponse, error)
}

var StatisticsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*StatisticsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		rpc.UnaryMethod(ServiceName, "GetStatistics", StatisticsServiceServer.GetStatistics),
		rpc.UnaryMethod(ServiceName, "ExportStatistics", StatisticsServiceServer.ExportStatistics),
	},
	Metadata: "omnipos/stand/v1/statistics.proto",
}

func RegisterStatisticsServiceServer(s grpc.ServiceRegistrar, srv StatisticsServiceServer) {
	s.RegisterService(&StatisticsService_ServiceDesc, srv)
}
