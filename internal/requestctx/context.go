package requestctx

import (
	"context"

	"google.golang.org/grpc/metadata"
)

const (
	HeaderChannelID    = "x-channel-id"
	HeaderLanguageCode = "x-language-code"
	HeaderMerchantID   = "x-merchant-id"
	HeaderUserID       = "x-user-id"
)

// RequestContext carries the sales channel and language an operation runs in.
type RequestContext struct {
	ChannelID    string
	LanguageCode string
	MerchantID   string
	UserID       string
}

type ctxKey struct{}

func With(ctx context.Context, rc RequestContext) context.Context {
	return context.WithValue(ctx, ctxKey{}, rc)
}

// From returns the request context stored by the interceptor, falling back to
// incoming metadata when the interceptor did not run.
func From(ctx context.Context) RequestContext {
	if rc, ok := ctx.Value(ctxKey{}).(RequestContext); ok {
		return rc
	}
	return FromMetadata(ctx, RequestContext{})
}

// FromMetadata reads the request headers, using defaults for missing values.
func FromMetadata(ctx context.Context, defaults RequestContext) RequestContext {
	rc := defaults
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return rc
	}
	if val := md.Get(HeaderChannelID); len(val) > 0 && val[0] != "" {
		rc.ChannelID = val[0]
	}
	if val := md.Get(HeaderLanguageCode); len(val) > 0 && val[0] != "" {
		rc.LanguageCode = val[0]
	}
	if val := md.Get(HeaderMerchantID); len(val) > 0 {
		rc.MerchantID = val[0]
	}
	if val := md.Get(HeaderUserID); len(val) > 0 {
		rc.UserID = val[0]
	}
	return rc
}
