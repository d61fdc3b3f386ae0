package handler

import (
	"context"
	"net"
	"testing"

	"github.com/fekuna/omnipos-catalog-service/internal/middleware"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/pkg/i18n"
	"github.com/fekuna/omnipos-catalog-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-catalog-service/internal/requestctx"
	catalogv1 "github.com/fekuna/omnipos-catalog-service/internal/rpc/catalogv1"
	"github.com/fekuna/omnipos-catalog-service/internal/variant"
	"github.com/fekuna/omnipos-catalog-service/internal/variant/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

type stubVariants struct {
	variant.UseCase
	variants map[string]model.ProductVariant
	filters  *dto.VariantFilters
}

func (s *stubVariants) FindOne(_ context.Context, id string) (*model.ProductVariant, error) {
	v, ok := s.variants[id]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (s *stubVariants) ListByProduct(_ context.Context, filters *dto.VariantFilters) ([]model.ProductVariant, int, error) {
	s.filters = filters
	out := make([]model.ProductVariant, 0, len(s.variants))
	for _, v := range s.variants {
		out = append(out, v)
	}
	return out, len(out), nil
}

func newClient(t *testing.T, uc variant.UseCase) *catalogv1.ProductVariantServiceClient {
	t.Helper()

	translator, err := i18n.New("en")
	require.NoError(t, err)

	lis := bufconn.Listen(1 << 20)
	server := grpc.NewServer(grpc.ChainUnaryInterceptor(
		middleware.Chain(logger.NewNop(), translator, requestctx.RequestContext{ChannelID: "default-channel", LanguageCode: "en"})...,
	))
	catalogv1.RegisterProductVariantServiceServer(server, NewVariantHandler(uc, logger.NewNop()))
	go server.Serve(lis)
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return catalogv1.NewProductVariantServiceClient(conn)
}

func TestGetVariant(t *testing.T) {
	uc := &stubVariants{variants: map[string]model.ProductVariant{
		"v1": {BaseModel: model.BaseModel{ID: "v1"}, ProductID: "p1", SKU: "TS-S", Name: "T-Shirt S", Price: 1100, PriceBeforeTax: 1000},
	}}
	client := newClient(t, uc)

	resp, err := client.GetVariant(context.Background(), &catalogv1.GetVariantRequest{ID: "v1"})
	require.NoError(t, err)
	assert.Equal(t, "TS-S", resp.Variant.SKU)
	assert.Equal(t, "T-Shirt S", resp.Variant.Name)
	assert.Equal(t, int64(1100), resp.Variant.Price)
	assert.Equal(t, int64(1000), resp.Variant.PriceBeforeTax)
}

func TestGetVariantMissing(t *testing.T) {
	client := newClient(t, &stubVariants{})

	_, err := client.GetVariant(context.Background(), &catalogv1.GetVariantRequest{ID: "v9"})
	st := status.Convert(err)
	assert.Equal(t, codes.NotFound, st.Code())
	assert.Equal(t, `No ProductVariant with the id "v9" could be found`, st.Message())
}

func TestListVariantsPassesFilters(t *testing.T) {
	uc := &stubVariants{variants: map[string]model.ProductVariant{
		"v1": {BaseModel: model.BaseModel{ID: "v1"}, ProductID: "p1"},
	}}
	client := newClient(t, uc)

	resp, err := client.ListVariants(context.Background(), &catalogv1.ListVariantsRequest{ProductID: "p1", Query: "red", Page: 2, PageSize: 5})
	require.NoError(t, err)
	assert.Len(t, resp.Variants, 1)
	assert.Equal(t, int32(1), resp.Total)
	require.NotNil(t, uc.filters)
	assert.Equal(t, dto.VariantFilters{ProductID: "p1", Query: "red", Page: 2, PageSize: 5}, *uc.filters)
}
