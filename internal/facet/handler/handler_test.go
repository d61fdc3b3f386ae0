package handler

import (
	"context"
	"net"
	"testing"

	"github.com/fekuna/omnipos-catalog-service/internal/facet"
	"github.com/fekuna/omnipos-catalog-service/internal/middleware"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/pkg/i18n"
	"github.com/fekuna/omnipos-catalog-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-catalog-service/internal/requestctx"
	catalogv1 "github.com/fekuna/omnipos-catalog-service/internal/rpc/catalogv1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

type stubFacets struct {
	facet.UseCase
	facets map[string]model.Facet
}

func (s *stubFacets) GetFacet(_ context.Context, id string) (*model.Facet, error) {
	f, ok := s.facets[id]
	if !ok {
		return nil, nil
	}
	return &f, nil
}

func newClient(t *testing.T, uc facet.UseCase) *catalogv1.FacetServiceClient {
	t.Helper()

	translator, err := i18n.New("en")
	require.NoError(t, err)

	lis := bufconn.Listen(1 << 20)
	server := grpc.NewServer(grpc.ChainUnaryInterceptor(
		middleware.Chain(logger.NewNop(), translator, requestctx.RequestContext{ChannelID: "default-channel", LanguageCode: "en"})...,
	))
	catalogv1.RegisterFacetServiceServer(server, NewFacetHandler(uc, logger.NewNop()))
	go server.Serve(lis)
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return catalogv1.NewFacetServiceClient(conn)
}

func TestGetFacetIsScopedToMerchant(t *testing.T) {
	client := newClient(t, &stubFacets{facets: map[string]model.Facet{
		"f1": {
			BaseModel:  model.BaseModel{ID: "f1"},
			MerchantID: "m1",
			Code:       "brand",
			Name:       "Brand",
			Values:     []model.FacetValue{{BaseModel: model.BaseModel{ID: "fv1"}, FacetID: "f1", Code: "acme"}},
		},
	}})

	own := metadata.AppendToOutgoingContext(context.Background(), requestctx.HeaderMerchantID, "m1")
	resp, err := client.GetFacet(own, &catalogv1.GetFacetRequest{ID: "f1"})
	require.NoError(t, err)
	assert.Equal(t, "brand", resp.Facet.Code)
	assert.Equal(t, "Brand", resp.Facet.Name)
	require.Len(t, resp.Facet.Values, 1)
	assert.Equal(t, "acme", resp.Facet.Values[0].Code)

	other := metadata.AppendToOutgoingContext(context.Background(), requestctx.HeaderMerchantID, "m2")
	_, err = client.GetFacet(other, &catalogv1.GetFacetRequest{ID: "f1"})
	st := status.Convert(err)
	assert.Equal(t, codes.NotFound, st.Code())
	assert.Equal(t, `No Facet with the id "f1" could be found`, st.Message())
}

func TestCreateFacetRequiresMerchant(t *testing.T) {
	client := newClient(t, &stubFacets{})

	_, err := client.CreateFacet(context.Background(), &catalogv1.CreateFacetRequest{Code: "brand"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}
