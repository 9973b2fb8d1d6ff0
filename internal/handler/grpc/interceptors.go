package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-face-keeper/internal/logger"
	"github.com/MKhiriev/go-face-keeper/internal/utils"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const (
	authorizationKey = "authorization"
	traceIDKey       = "x-trace-id"
	maxTraceIDLength = 128
)

// LoggingInterceptor attaches a trace-scoped logger to the call context and
// logs every call once it returns. The trace id is taken from the
// x-trace-id metadata or generated, and is echoed back in the header.
func (h *Handler) LoggingInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		traceID := firstMetadataValue(ctx, traceIDKey)
		if traceID == "" || len(traceID) > maxTraceIDLength {
			traceID = uuid.NewString()
		}
		_ = grpc.SetHeader(ctx, metadata.Pairs(traceIDKey, traceID))

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		ctx = l.WithContext(ctx)

		start := time.Now()
		resp, err := handler(ctx, req)

		l.Info().
			Str("method", info.FullMethod).
			Str("code", status.Code(err).String()).
			Dur("duration", time.Since(start)).
			Send()

		return resp, err
	}
}

// AuthInterceptor resolves the bearer token from the authorization metadata
// and stores its subject under [utils.UserIDCtxKey]. Any failure ends the
// call with codes.Unauthenticated.
func (h *Handler) AuthInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		log := logger.FromContextOr(ctx, h.logger)

		if _, ok := metadata.FromIncomingContext(ctx); !ok {
			log.Err(ErrMissingMetadata).Str("method", info.FullMethod).Send()
			return nil, status.Error(codes.Unauthenticated, ErrMissingMetadata.Error())
		}

		raw := firstMetadataValue(ctx, authorizationKey)
		if raw == "" {
			log.Err(ErrEmptyAuthorizationMetadata).Str("method", info.FullMethod).Send()
			return nil, status.Error(codes.Unauthenticated, ErrEmptyAuthorizationMetadata.Error())
		}

		tokenString, err := utils.ParseBearerToken(raw)
		if err != nil {
			log.Err(err).Str("method", info.FullMethod).Send()
			return nil, status.Error(codes.Unauthenticated, err.Error())
		}

		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Str("method", info.FullMethod).Msg("error occurred during parsing token")
			return nil, status.Error(codes.Unauthenticated, "invalid access token")
		}

		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)
		return handler(ctx, req)
	}
}

func firstMetadataValue(ctx context.Context, key string) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if values := md.Get(key); len(values) > 0 {
		return values[0]
	}
	return ""
}
