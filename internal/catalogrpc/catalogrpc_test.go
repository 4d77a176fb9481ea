package catalogrpc

import (
	"context"
	"errors"
	"net"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"novelverse/internal/catalog"
)

type fakeDB struct{ err error }

func (f *fakeDB) PingContext(context.Context) error { return f.err }

func dial(t *testing.T, srv *grpc.Server) *grpc.ClientConn {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	cc, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = cc.Close() })
	return cc
}

func TestCatalogList(t *testing.T) {
	hl := NewHealth(nil)
	cli := NewClient(dial(t, NewGRPCServer(catalog.NewSeedStore(), hl)))
	ctx := context.Background()

	resp, err := cli.List(ctx, &ListRequest{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	var ids string
	for _, n := range resp.Items {
		ids += n.ID
	}
	if resp.Total != 4 || ids != "3124" {
		t.Fatalf("popular order = %q (total %d), want 3124", ids, resp.Total)
	}

	resp, err = cli.List(ctx, &ListRequest{Genre: "romance"})
	if err != nil || resp.Total != 1 || resp.Items[0].Title != "Starlit Dreams" {
		t.Fatalf("romance = %+v, %v", resp, err)
	}

	resp, err = cli.List(ctx, &ListRequest{Search: "zzzznotfound"})
	if err != nil || resp.Total != 0 {
		t.Fatalf("no match = %+v, %v", resp, err)
	}
}

func TestCatalogGet(t *testing.T) {
	cli := NewClient(dial(t, NewGRPCServer(catalog.NewSeedStore(), NewHealth(nil))))
	ctx := context.Background()

	got, err := cli.Get(ctx, &GetRequest{ID: "1"})
	if err != nil || got.Novel.Title != "The Mystic Academy" {
		t.Fatalf("Get(1) = %+v, %v", got, err)
	}

	_, err = cli.Get(ctx, &GetRequest{ID: "99"})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("Get(99) code = %v, want NotFound", status.Code(err))
	}
	_, err = cli.Get(ctx, &GetRequest{ID: " "})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("Get(blank) code = %v, want InvalidArgument", status.Code(err))
	}
}

func TestHealthFollowsDBPing(t *testing.T) {
	db := &fakeDB{}
	hl := NewHealth(db)
	hc := healthpb.NewHealthClient(dial(t, NewGRPCServer(catalog.NewSeedStore(), hl)))
	ctx := context.Background()

	if st := hl.Check(ctx); st != healthpb.HealthCheckResponse_SERVING {
		t.Fatalf("Check = %v, want SERVING", st)
	}
	resp, err := hc.Check(ctx, &healthpb.HealthCheckRequest{Service: ServiceName})
	if err != nil || resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		t.Fatalf("health = %v, %v", resp.GetStatus(), err)
	}

	db.err = errors.New("database is closed")
	hl.Check(ctx)
	resp, err = hc.Check(ctx, &healthpb.HealthCheckRequest{})
	if err != nil || resp.GetStatus() != healthpb.HealthCheckResponse_NOT_SERVING {
		t.Fatalf("health after ping failure = %v, %v", resp.GetStatus(), err)
	}
}

func TestHealthWithoutDB(t *testing.T) {
	if st := NewHealth(nil).Check(context.Background()); st != healthpb.HealthCheckResponse_SERVING {
		t.Fatalf("Check = %v, want SERVING", st)
	}
}
