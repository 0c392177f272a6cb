package server

import (
	"context"
	"net"
	"strings"
	"testing"

	ledgerH "github.com/fekuna/omnipos-stand-service/internal/ledger/handler"
	prodH "github.com/fekuna/omnipos-stand-service/internal/product/handler"
	"github.com/fekuna/omnipos-stand-service/internal/rpc"
	statsH "github.com/fekuna/omnipos-stand-service/internal/stats/handler"
	"github.com/fekuna/omnipos-stand-service/internal/storage"
	"github.com/fekuna/omnipos-stand-service/internal/storage/memory"
	tillH "github.com/fekuna/omnipos-stand-service/internal/till/handler"
	"github.com/fekuna/omnipos-stand-service/pkg/logger"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"
)

func dial(t *testing.T) *grpc.ClientConn {
	t.Helper()
	log := logger.NewNop()
	lis := bufconn.Listen(1 << 20)

	srv := New(NewUseCases(storage.NewGateway(memory.NewStore()), log), log)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHealth(t *testing.T) {
	conn := dial(t)

	resp, err := healthpb.NewHealthClient(conn).Check(context.Background(), &healthpb.HealthCheckRequest{Service: tillH.ServiceName})
	require.NoError(t, err)
	require.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.Status)
}

func TestSaleOverGRPC(t *testing.T) {
	ctx := context.Background()
	conn := dial(t)

	addProduct := func(name, price string) string {
		resp, err := rpc.Invoke[prodH.ProductResponse](ctx, conn, prodH.ServiceName, "AddProduct", &prodH.AddProductRequest{Name: name, Price: price})
		require.NoError(t, err)
		return resp.Product.Id
	}
	waffel := addProduct("Waffel", "2.50")
	tee := addProduct("Tee", "1.00")

	list, err := rpc.Invoke[prodH.ListProductsResponse](ctx, conn, prodH.ServiceName, "ListProducts", &emptypb.Empty{})
	require.NoError(t, err)
	require.Len(t, list.Products, 2)
	require.Equal(t, "2.50", list.Products[0].Price)

	for _, id := range []string{waffel, waffel, waffel, tee} {
		_, err := rpc.Invoke[tillH.CartResponse](ctx, conn, tillH.ServiceName, "AddToCart", &tillH.CartItemRequest{ProductId: id})
		require.NoError(t, err)
	}
	cart, err := rpc.Invoke[tillH.CartResponse](ctx, conn, tillH.ServiceName, "GetCart", &emptypb.Empty{})
	require.NoError(t, err)
	require.Equal(t, "8.50", cart.Subtotal)
	require.Equal(t, 4, cart.ItemCount)

	co, err := rpc.Invoke[tillH.CheckoutResponse](ctx, conn, tillH.ServiceName, "OpenCheckout", &emptypb.Empty{})
	require.NoError(t, err)
	require.Equal(t, "open", co.State)

	_, err = rpc.Invoke[tillH.CheckoutResponse](ctx, conn, tillH.ServiceName, "SetTip", &tillH.AmountRequest{Amount: "1.00"})
	require.NoError(t, err)
	co, err = rpc.Invoke[tillH.CheckoutResponse](ctx, conn, tillH.ServiceName, "Tender", &tillH.AmountRequest{Amount: "10.00"})
	require.NoError(t, err)
	require.Equal(t, "9.50", co.FinalTotal)
	require.Equal(t, "0.50", co.Change)
	require.True(t, co.CanComplete)

	done, err := rpc.Invoke[tillH.CompleteCheckoutResponse](ctx, conn, tillH.ServiceName, "CompleteCheckout", &emptypb.Empty{})
	require.NoError(t, err)
	require.Equal(t, 2, done.Lines)
	require.Equal(t, "0.50", done.Change)

	txs, err := rpc.Invoke[ledgerH.ListTransactionsResponse](ctx, conn, ledgerH.ServiceName, "ListTransactions", &emptypb.Empty{})
	require.NoError(t, err)
	require.Len(t, txs.Transactions, 2)
	require.Equal(t, "0.88", txs.Transactions[0].Tip)
	require.Equal(t, "Waffel", txs.Transactions[0].ProductName)

	report, err := rpc.Invoke[statsH.StatisticsResponse](ctx, conn, statsH.ServiceName, "GetStatistics", &statsH.StatisticsRequest{SortBy: "quantity", SortOrder: "desc"})
	require.NoError(t, err)
	require.Equal(t, 4, report.TotalProducts)
	require.Equal(t, "8.50", report.TotalRevenue)
	require.Equal(t, "1.00", report.TotalTips)
	require.Equal(t, waffel, report.PerProduct[0].ProductId)

	export, err := rpc.Invoke[statsH.ExportResponse](ctx, conn, statsH.ServiceName, "ExportStatistics", &statsH.StatisticsRequest{})
	require.NoError(t, err)
	require.Equal(t, "text/csv", export.ContentType)
	require.True(t, strings.HasPrefix(export.Data, "product_id,product,quantity,revenue\n"))

	del, err := rpc.Invoke[ledgerH.DeleteTransactionResponse](ctx, conn, ledgerH.ServiceName, "DeleteTransaction", &ledgerH.DeleteTransactionRequest{
		ProductId: txs.Transactions[0].ProductId,
		Timestamp: txs.Transactions[0].Timestamp,
	})
	require.NoError(t, err)
	require.True(t, del.Deleted)
	require.Equal(t, "1.12", del.Balance)

	_, err = rpc.Invoke[emptypb.Empty](ctx, conn, ledgerH.ServiceName, "ResetAll", &ledgerH.ResetAllRequest{Confirm: true})
	require.NoError(t, err)
	balance, err := rpc.Invoke[ledgerH.CashBalanceResponse](ctx, conn, ledgerH.ServiceName, "GetCashBalance", &emptypb.Empty{})
	require.NoError(t, err)
	require.Equal(t, "0.00", balance.Balance)
}

func TestErrorCodes(t *testing.T) {
	ctx := context.Background()
	conn := dial(t)

	_, err := rpc.Invoke[prodH.ProductResponse](ctx, conn, prodH.ServiceName, "AddProduct", &prodH.AddProductRequest{Name: "", Price: "1"})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = rpc.Invoke[tillH.CartResponse](ctx, conn, tillH.ServiceName, "AddToCart", &tillH.CartItemRequest{ProductId: "missing"})
	require.Equal(t, codes.NotFound, status.Code(err))

	p, err := rpc.Invoke[prodH.ProductResponse](ctx, conn, prodH.ServiceName, "AddProduct", &prodH.AddProductRequest{Name: "Tee", Price: "1"})
	require.NoError(t, err)
	_, err = rpc.Invoke[tillH.CartResponse](ctx, conn, tillH.ServiceName, "AddToCart", &tillH.CartItemRequest{ProductId: p.Product.Id})
	require.NoError(t, err)
	_, err = rpc.Invoke[tillH.CheckoutResponse](ctx, conn, tillH.ServiceName, "OpenCheckout", &emptypb.Empty{})
	require.NoError(t, err)

	_, err = rpc.Invoke[tillH.CompleteCheckoutResponse](ctx, conn, tillH.ServiceName, "CompleteCheckout", &emptypb.Empty{})
	require.Equal(t, codes.FailedPrecondition, status.Code(err))

	_, err = rpc.Invoke[tillH.CheckoutResponse](ctx, conn, tillH.ServiceName, "Tender", &tillH.AmountRequest{Amount: "0.03"})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = rpc.Invoke[emptypb.Empty](ctx, conn, ledgerH.ServiceName, "ResetAll", &ledgerH.ResetAllRequest{})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	dens, err := rpc.Invoke[tillH.ListDenominationsResponse](ctx, conn, tillH.ServiceName, "ListDenominations", &emptypb.Empty{})
	require.NoError(t, err)
	require.Len(t, dens.Denominations, 14)
	require.Equal(t, "0.01", dens.Denominations[0].Value)
}
