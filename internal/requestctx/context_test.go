package requestctx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/metadata"
)

var defaults = RequestContext{ChannelID: "default", LanguageCode: "en"}

func TestFromMetadata(t *testing.T) {
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(
		HeaderChannelID, "web",
		HeaderLanguageCode, "id",
		HeaderMerchantID, "m1",
		HeaderUserID, "u1",
	))

	assert.Equal(t, RequestContext{ChannelID: "web", LanguageCode: "id", MerchantID: "m1", UserID: "u1"},
		FromMetadata(ctx, defaults))
}

func TestFromMetadataUsesDefaults(t *testing.T) {
	assert.Equal(t, defaults, FromMetadata(context.Background(), defaults))

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(HeaderChannelID, ""))
	assert.Equal(t, "default", FromMetadata(ctx, defaults).ChannelID)
}

func TestFromPrefersStoredContext(t *testing.T) {
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(HeaderChannelID, "web"))
	ctx = With(ctx, RequestContext{ChannelID: "pos"})

	assert.Equal(t, "pos", From(ctx).ChannelID)
	assert.Equal(t, "web", From(metadata.NewIncomingContext(context.Background(), metadata.Pairs(HeaderChannelID, "web"))).ChannelID)
}
