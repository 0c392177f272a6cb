// Package server assembles the stand's gRPC server.
package server

import (
	"github.com/fekuna/omnipos-stand-service/internal/ledger"
	ledgerH "github.com/fekuna/omnipos-stand-service/internal/ledger/handler"
	ledgerUC "github.com/fekuna/omnipos-stand-service/internal/ledger/usecase"
	"github.com/fekuna/omnipos-stand-service/internal/product"
	prodH "github.com/fekuna/omnipos-stand-service/internal/product/handler"
	prodUC "github.com/fekuna/omnipos-stand-service/internal/product/usecase"
	"github.com/fekuna/omnipos-stand-service/internal/rpc"
	"github.com/fekuna/omnipos-stand-service/internal/stats"
	statsH "github.com/fekuna/omnipos-stand-service/internal/stats/handler"
	statsUC "github.com/fekuna/omnipos-stand-service/internal/stats/usecase"
	"github.com/fekuna/omnipos-stand-service/internal/storage"
	"github.com/fekuna/omnipos-stand-service/internal/till"
	tillH "github.com/fekuna/omnipos-stand-service/internal/till/handler"
	tillUC "github.com/fekuna/omnipos-stand-service/internal/till/usecase"
	"github.com/fekuna/omnipos-stand-service/pkg/logger"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

type UseCases struct {
	Catalog product.UseCase
	Ledger  ledger.UseCase
	Till    till.UseCase
	Stats   stats.UseCase
}

// NewUseCases wires every use case onto one persistence gateway.
func NewUseCases(gw *storage.Gateway, log logger.ZapLogger) UseCases {
	catalog := prodUC.NewProductUseCase(gw, log.With(zapComponent("catalog")))
	sales := ledgerUC.NewLedgerUseCase(gw, gw, log.With(zapComponent("ledger")))
	return UseCases{
		Catalog: catalog,
		Ledger:  sales,
		Till:    tillUC.NewTillUseCase(catalog, sales, log.With(zapComponent("till"))),
		Stats:   statsUC.NewStatsUseCase(gw, gw, log.With(zapComponent("stats"))),
	}
}

// New registers the stand services plus health and reflection.
func New(uc UseCases, log logger.ZapLogger, opts ...grpc.ServerOption) *grpc.Server {
	opts = append([]grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			rpc.RecoveryInterceptor(log),
			rpc.LoggingInterceptor(log),
		),
	}, opts...)
	s := grpc.NewServer(opts...)

	prodH.RegisterCatalogServiceServer(s, prodH.NewProductHandler(uc.Catalog, log))
	tillH.RegisterTillServiceServer(s, tillH.NewTillHandler(uc.Till, log))
	ledgerH.RegisterLedgerServiceServer(s, ledgerH.NewLedgerHandler(uc.Ledger, uc.Catalog, log))
	statsH.RegisterStatisticsServiceServer(s, statsH.NewStatsHandler(uc.Stats, log))

	hs := health.NewServer()
	for _, name := range []string{"", prodH.ServiceName, tillH.ServiceName, ledgerH.ServiceName, statsH.ServiceName} {
		hs.SetServingStatus(name, healthpb.HealthCheckResponse_SERVING)
	}
	healthpb.RegisterHealthServer(s, hs)

	reflection.Register(s)
	return s
}

func zapComponent(name string) zap.Field {
	return zap.String("component", name)
}
