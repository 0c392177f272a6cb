package handler

import (
	"context"

	"github.com/fekuna/omnipos-stand-service/internal/rpc"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
)

const ServiceName = "omnipos.stand.v1.LedgerService"

type Transaction struct {
	ProductId   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	Tip         string `json:"tip"`
	Total       string `json:"total"`
	Timestamp   string `json:"timestamp"` // RFC 3339, nanoseconds kept
}

type ListTransactionsResponse struct {
	Transactions []*Transaction `json:"transactions"`
}

type DeleteTransactionRequest struct {
	ProductId string `json:"product_id"`
	Timestamp string `json:"timestamp"`
}

type DeleteTransactionResponse struct {
	Deleted bool   `json:"deleted"`
	Balance string `json:"balance"`
}

type CashBalanceResponse struct {
	Balance string `json:"balance"`
}

type ResetAllRequest struct {
	Confirm bool `json:"confirm"`
}

type LedgerServiceServer interface {
	ListTransactions(context.Context, *emptypb.Empty) (*ListTransactionsResponse, error)
	DeleteTransaction(context.Context, *DeleteTransactionRequest) (*DeleteTransactionResponse, error)
	GetCashBalance(context.Context, *emptypb.Empty) (*CashBalanceResponse, error)
	ResetCashBalance(context.Context, *emptypb.Empty) (*CashBalanceResponse, error)
	ResetAll(context.Context, *ResetAllRequest) (*emptypb.Empty, error)
}

var LedgerService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*LedgerServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		rpc.UnaryMethod(ServiceName, "ListTransactions", LedgerServiceServer.ListTransactions),
		rpc.UnaryMethod(ServiceName, "DeleteTransaction", LedgerServiceServer.DeleteTransaction),
		rpc.UnaryMethod(ServiceName, "GetCashBalance", LedgerServiceServer.GetCashBalance),
		rpc.UnaryMethod(ServiceName, "ResetCashBalance", LedgerServiceServer.ResetCashBalance),
		rpc.UnaryMethod(ServiceName, "ResetAll", LedgerServiceServer.ResetAll),
	},
	Metadata: "omnipos/stand/v1/ledger.proto",
}

func RegisterLedgerServiceServer(s grpc.ServiceRegistrar, srv LedgerServiceServer) {
	s.RegisterService(&LedgerService_ServiceDesc, srv)
}
