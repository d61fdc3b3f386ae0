package middleware

import (
	"context"
	"runtime/debug"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/apperror"
	"github.com/fekuna/omnipos-catalog-service/internal/pkg/i18n"
	"github.com/fekuna/omnipos-catalog-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-catalog-service/internal/requestctx"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const keyInternal = "error.internal"

// ContextInterceptor reads channel, language, merchant and user from the
// request metadata and stores them in the context. Missing channel and
// language fall back to defaults.
func ContextInterceptor(defaults requestctx.RequestContext) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		rc := requestctx.FromMetadata(ctx, defaults)
		return handler(requestctx.With(ctx, rc), req)
	}
}

// LoggingInterceptor logs every call with its status code and duration.
func LoggingInterceptor(log logger.ZapLogger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		code := status.Code(err)
		fields := []zap.Field{
			zap.String("method", info.FullMethod),
			zap.String("code", code.String()),
			zap.Duration("duration", time.Since(start)),
		}
		switch code {
		case codes.OK:
			log.Info("grpc call", fields...)
		case codes.Internal, codes.Unknown, codes.Unavailable:
			log.Error("grpc call failed", append(fields, zap.Error(err))...)
		default:
			log.Warn("grpc call failed", append(fields, zap.Error(err))...)
		}
		return resp, err
	}
}

// RecoveryInterceptor turns a panicking handler into an error. It must run
// inside ErrorInterceptor so the error is reported as Internal.
func RecoveryInterceptor(log logger.ZapLogger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("panic recovered",
					zap.String("method", info.FullMethod),
					zap.Any("panic", r),
					zap.ByteString("stack", debug.Stack()),
				)
				resp, err = nil, errors.Errorf("panic in %s: %v", info.FullMethod, r)
			}
		}()
		return handler(ctx, req)
	}
}

// Chain returns the interceptors in the order the server installs them.
func Chain(log logger.ZapLogger, translator *i18n.Translator, defaults requestctx.RequestContext) []grpc.UnaryServerInterceptor {
	return []grpc.UnaryServerInterceptor{
		LoggingInterceptor(log),
		ContextInterceptor(defaults),
		ErrorInterceptor(translator),
		RecoveryInterceptor(log),
	}
}

// ErrorInterceptor converts use-case errors into gRPC status errors with a
// message localized in the request language.
func ErrorInterceptor(translator *i18n.Translator) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err != nil {
			return nil, ToStatus(ctx, translator, err)
		}
		return resp, nil
	}
}

// ToStatus maps err to a status error. Errors that already carry a status
// are returned unchanged.
func ToStatus(ctx context.Context, translator *i18n.Translator, err error) error {
	if _, ok := status.FromError(err); ok {
		return err
	}
	if st := status.FromContextError(err); st.Code() != codes.Unknown {
		return st.Err()
	}

	lang := requestctx.From(ctx).LanguageCode
	appErr, ok := apperror.As(err)
	if !ok {
		return status.Error(codes.Internal, localize(translator, lang, keyInternal, nil))
	}
	return status.Error(Code(appErr.Kind), localize(translator, lang, appErr.MessageKey, appErr.Params))
}

// Code returns the gRPC code for an error kind.
func Code(kind apperror.Kind) codes.Code {
	switch kind {
	case apperror.KindEntityNotFound:
		return codes.NotFound
	case apperror.KindNoPriceForChannel, apperror.KindNoTranslation:
		return codes.FailedPrecondition
	case apperror.KindInvalidInput:
		return codes.InvalidArgument
	case apperror.KindConflict:
		return codes.AlreadyExists
	case apperror.KindUnavailable:
		return codes.Unavailable
	case apperror.KindUnauthenticated:
		return codes.Unauthenticated
	default:
		return codes.Internal
	}
}

func localize(translator *i18n.Translator, lang, key string, params map[string]any) string {
	if translator == nil {
		return key
	}
	return translator.Localize(lang, key, params)
}
