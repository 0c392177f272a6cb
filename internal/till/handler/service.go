package handler

import (
	"context"

	"github.com/fekuna/omnipos-stand-service/internal/rpc"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
)

const ServiceName = "omnipos.stand.v1.TillService"

type CartLine struct {
	ProductId string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	Subtotal  string `json:"subtotal"`
}

type CartResponse struct {
	Lines     []*CartLine `json:"lines"`
	Subtotal  string      `json:"subtotal"`
	ItemCount int         `json:"item_count"`
}

type CartItemRequest struct {
	ProductId string `json:"product_id"`
}

type CheckoutResponse struct {
	State       string `json:"state"`
	Subtotal    string `json:"subtotal"`
	Tip         string `json:"tip"`
	RoundUp     bool   `json:"round_up"`
	FinalTotal  string `json:"final_total"`
	Received    string `json:"received"`
	Change      string `json:"change"`
	Deficit     string `json:"deficit"`
	CanComplete bool   `json:"can_complete"`
}

type AmountRequest struct {
	Amount string `json:"amount"`
}

type RoundUpRequest struct {
	Enabled bool `json:"enabled"`
}

type CompleteCheckoutResponse struct {
	Subtotal   string `json:"subtotal"`
	Tip        string `json:"tip"`
	FinalTotal string `json:"final_total"`
	Received   string `json:"received"`
	Change     string `json:"change"`
	Timestamp  string `json:"timestamp"`
	Lines      int    `json:"lines"`
}

type Denomination struct {
	Value string `json:"value"`
	Kind  string `json:"kind"`
	Label string `json:"label"`
}

type ListDenominationsResponse struct {
	Denominations []*Denomination `json:"denominations"`
}

type TillServiceServer interface {
	AddToCart(context.Context, *CartItemRequest) (*CartResponse, error)
	RemoveFromCart(context.Context, *CartItemRequest) (*CartResponse, error)
	ClearCart(context.Context, *emptypb.Empty) (*CartResponse, error)
	GetCart(context.Context, *emptypb.Empty) (*CartResponse, error)

	OpenCheckout(context.Context, *emptypb.Empty) (*CheckoutResponse, error)
	GetCheckout(context.Context, *emptypb.Empty) (*CheckoutResponse, error)
	Tender(context.Context, *AmountRequest) (*CheckoutResponse, error)
	SetTip(context.Context, *AmountRequest) (*CheckoutResponse, error)
	SetRoundUp(context.Context, *RoundUpRequest) (*CheckoutResponse, error)
	ResetPayment(context.Context, *emptypb.Empty) (*CheckoutResponse, error)
	CancelCheckout(context.Context, *emptypb.Empty) (*CheckoutResponse, error)
	CompleteCheckout(context.Context, *emptypb.Empty) (*CompleteCheckoutResponse, error)

	ListDenominations(context.Context, *emptypb.Empty) (*ListDenominationsResponse, error)
}

var TillService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*TillServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		rpc.UnaryMethod(ServiceName, "AddToCart", TillServiceServer.AddToCart),
		rpc.UnaryMethod(ServiceName, "RemoveFromCart", TillServiceServer.RemoveFromCart),
		rpc.UnaryMethod(ServiceName, "ClearCart", TillServiceServer.ClearCart),
		rpc.UnaryMethod(ServiceName, "GetCart", TillServiceServer.GetCart),
		rpc.UnaryMethod(ServiceName, "OpenCheckout", TillServiceServer.OpenCheckout),
		rpc.UnaryMethod(ServiceName, "GetCheckout", TillServiceServer.GetCheckout),
		rpc.UnaryMethod(ServiceName, "Tender", TillServiceServer.Tender),
		rpc.UnaryMethod(ServiceName, "SetTip", TillServiceServer.SetTip),
		rpc.UnaryMethod(ServiceName, "SetRoundUp", TillServiceServer.SetRoundUp),
		rpc.UnaryMethod(ServiceName, "ResetPayment", TillServiceServer.ResetPayment),
		rpc.UnaryMethod(ServiceName, "CancelCheckout", TillServiceServer.CancelCheckout),
		rpc.UnaryMethod(ServiceName, "CompleteCheckout", TillServiceServer.CompleteCheckout),
		rpc.UnaryMethod(ServiceName, "ListDenominations", TillServiceServer.ListDenominations),
	},
	Metadata: "omnipos/stand/v1/till.proto",
}

func RegisterTillServiceServer(s grpc.ServiceRegistrar, srv TillServiceServer) {
	s.RegisterService(&TillService_ServiceDesc, srv)
}
