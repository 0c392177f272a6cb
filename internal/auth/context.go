package auth

import (
	"context"

	"google.golang.org/grpc/metadata"
)

// CashierHeader is the metadata key a till client sets to say who is serving.
const CashierHeader = "x-cashier"

type cashierKey struct{}

// WithCashier stores the cashier name on ctx.
func WithCashier(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, cashierKey{}, name)
}

// GetCashier returns the cashier stored by WithCashier, or "".
func GetCashier(ctx context.Context) string {
	val, _ := ctx.Value(cashierKey{}).(string)
	return val
}

// CashierFromMetadata reads CashierHeader from incoming gRPC metadata.
func CashierFromMetadata(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if val := md.Get(CashierHeader); len(val) > 0 {
		return val[0]
	}
	return ""
}
