package main

import (
	"context"
	"log"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/joho/godotenv"
	"google.golang.org/grpc"

	"github.com/murkotick/product-draft-service/internal/app/draft/domain/services"
	"github.com/murkotick/product-draft-service/internal/app/draft/dto"
	"github.com/murkotick/product-draft-service/internal/app/draft/queries"
	"github.com/murkotick/product-draft-service/internal/app/draft/queries/get_draft"
	"github.com/murkotick/product-draft-service/internal/app/draft/queries/list_drafts"
	"github.com/murkotick/product-draft-service/internal/app/draft/repo"
	"github.com/murkotick/product-draft-service/internal/app/draft/usecases/close_draft"
	"github.com/murkotick/product-draft-service/internal/app/draft/usecases/discard_draft"
	"github.com/murkotick/product-draft-service/internal/app/draft/usecases/edit_draft"
	"github.com/murkotick/product-draft-service/internal/app/draft/usecases/generate_variants"
	"github.com/murkotick/product-draft-service/internal/app/draft/usecases/start_draft"
	"github.com/murkotick/product-draft-service/internal/app/draft/usecases/submit_draft"
	"github.com/murkotick/product-draft-service/internal/app/draft/usecases/validate_draft"
	"github.com/murkotick/product-draft-service/internal/pkg/clock"
	committer "github.com/murkotick/product-draft-service/internal/pkg/committer"
	"github.com/murkotick/product-draft-service/internal/pkg/dictionary"
	grpcdraft "github.com/murkotick/product-draft-service/internal/transport/grpc/draft"
)

func main() {
	// .env is optional.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("load .env: %v", err)
	}

	addr := env("GRPC_ADDR", ":50051")
	spannerDB := env("SPANNER_DATABASE", "projects/test-project/instances/emulator-instance/databases/test-db")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM.
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		<-ch
		log.Println("shutdown signal received")
		cancel()
	}()

	client, err := spanner.NewClient(ctx, spannerDB)
	if err != nil {
		log.Fatalf("spanner.NewClient: %v", err)
	}
	defer client.Close()

	labels, err := dictionary.Load()
	if err != nil {
		log.Fatalf("load labels: %v", err)
	}

	defaults, err := sessionDefaults()
	if err != nil {
		log.Fatalf("session defaults: %v", err)
	}

	clk := clock.RealClock{}
	sessions := repo.NewSessionRepo(clk)
	catalogRepo := repo.NewCatalogRepo()
	outboxRepo := repo.NewOutboxRepo()
	cm := committer.NewAdapter(client)
	readModel := queries.NewSpannerCatalogReadModel(client)

	// CQRS wiring
	cmds := grpcdraft.Commands{
		Start:    start_draft.NewInteractor(sessions, defaults),
		Edit:     edit_draft.NewInteractor(sessions),
		Generate: generate_variants.NewInteractor(sessions, services.NewVariantGenerator(nil)),
		Validate: validate_draft.NewInteractor(sessions, readModel, labels),
		Submit:   submit_draft.NewInteractor(sessions, catalogRepo, outboxRepo, cm, readModel, labels, clk),
		Discard:  discard_draft.NewInteractor(sessions),
		Close:    close_draft.NewInteractor(sessions),
	}
	mapper := dto.NewMapper(labels, services.NewPricingCalculator())
	qrys := grpcdraft.Queries{
		Get:  get_draft.NewHandler(sessions, mapper),
		List: list_drafts.NewHandler(sessions, mapper),
	}
	h := grpcdraft.NewHandler(cmds, qrys)

	// gRPC server
	srv := grpc.NewServer(grpc.UnaryInterceptor(grpcdraft.LoggingInterceptor()))
	grpcdraft.RegisterDraftServiceServer(srv, h)

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatalf("listen %s: %v", addr, err)
	}

	go func() {
		log.Printf("gRPC server listening on %s (labels: %s)", addr, strings.Join(labels.Languages(), ","))
		if err := srv.Serve(lis); err != nil {
			log.Printf("grpc serve: %v", err)
			cancel()
		}
	}()

	<-ctx.Done()
	stopped := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		srv.Stop()
	}

	if open := sessions.IDs(); len(open) > 0 {
		log.Printf("discarding %d open draft sessions", len(open))
	}
	log.Println("server stopped")
}

func env(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
