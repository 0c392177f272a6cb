package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/metadata"
)

func TestGetCashier(t *testing.T) {
	require.Empty(t, GetCashier(context.Background()))
	require.Equal(t, "Tom", GetCashier(WithCashier(context.Background(), "Tom")))
}

func TestCashierFromMetadata(t *testing.T) {
	require.Empty(t, CashierFromMetadata(context.Background()))

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(CashierHeader, "Jana"))
	require.Equal(t, "Jana", CashierFromMetadata(ctx))
	require.Empty(t, GetCashier(ctx))
}
