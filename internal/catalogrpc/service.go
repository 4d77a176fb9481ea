package catalogrpc

import (
	"context"
	"log/slog"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"novelverse/internal/catalog"
	"novelverse/pkg/models"
)

const ServiceName = "novelverse.catalog.v1.Catalog"

type ListRequest struct {
	Search string `json:"search"`
	Genre  string `json:"genre"`
	Sort   string `json:"sort"`
}

type ListResponse struct {
	Total int                   `json:"total"`
	Items []models.NovelSummary `json:"items"`
}

type GetRequest struct {
	ID string `json:"id"`
}

type GetResponse struct {
	Novel models.NovelSummary `json:"novel"`
}

// CatalogServer is the server side of the catalog service.
type CatalogServer interface {
	List(ctx context.Context, req *ListRequest) (*ListResponse, error)
	Get(ctx context.Context, req *GetRequest) (*GetResponse, error)
}

// Server answers catalog calls from a Store through the same pipeline as
// /api/novels.
type Server struct {
	Store catalog.Store
}

func NewServer(store catalog.Store) *Server {
	return &Server{Store: store}
}

func (s *Server) List(ctx context.Context, req *ListRequest) (*ListResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request required")
	}
	novels, err := s.Store.List(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "rpc list novels", "err", err)
		return nil, status.Error(codes.Internal, "list failed")
	}
	genre := strings.TrimSpace(req.Genre)
	if genre == "" {
		genre = catalog.AllGenres
	}
	items := catalog.Apply(novels, catalog.Criteria{
		Query: req.Search,
		Genre: genre,
		Sort:  catalog.ParseSortKey(req.Sort, catalog.SortPopular),
	})
	return &ListResponse{Total: len(items), Items: items}, nil
}

func (s *Server) Get(ctx context.Context, req *GetRequest) (*GetResponse, error) {
	if req == nil || strings.TrimSpace(req.ID) == "" {
		return nil, status.Error(codes.InvalidArgument, "id required")
	}
	n, err := s.Store.Get(ctx, strings.TrimSpace(req.ID))
	if err != nil {
		slog.ErrorContext(ctx, "rpc get novel", "id", req.ID, "err", err)
		return nil, status.Error(codes.Internal, "get failed")
	}
	if n == nil {
		return nil, status.Error(codes.NotFound, "not found")
	}
	return &GetResponse{Novel: *n}, nil
}

// ServiceDesc is registered with grpc.Server.RegisterService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CatalogServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "List", Handler: listHandler},
		{MethodName: "Get", Handler: getHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "novelverse/catalog",
}

func Register(s grpc.ServiceRegistrar, srv CatalogServer) {
	s.RegisterService(&ServiceDesc, srv)
}

func listHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogServer).List(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/List"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CatalogServer).List(ctx, req.(*ListRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func getHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogServer).Get(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/Get"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CatalogServer).Get(ctx, req.(*GetRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// Client calls the catalog service with the JSON codec.
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func (c *Client) List(ctx context.Context, req *ListRequest) (*ListResponse, error) {
	out := new(ListResponse)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/List", req, out, grpc.CallContentSubtype(CodecName)); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Get(ctx context.Context, req *GetRequest) (*GetResponse, error) {
	out := new(GetResponse)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/Get", req, out, grpc.CallContentSubtype(CodecName)); err != nil {
		return nil, err
	}
	return out, nil
}
