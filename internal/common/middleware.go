package common

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type contextKey string

const (
	userIDKey contextKey = "user_id"
	handleKey contextKey = "handle"
)

var publicMethods = map[string]bool{
	"/grpc.health.v1.Health/Check": true,
}

// WithPrincipal injects the authenticated user identity into ctx.
func WithPrincipal(ctx context.Context, userID, handle string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, handleKey, handle)
}

// UserIDFromContext returns the authenticated principal id, or ErrUnauthenticated.
func UserIDFromContext(ctx context.Context) (string, error) {
	userID, ok := ctx.Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("%w: no authenticated principal", ErrUnauthenticated)
	}
	return userID, nil
}

// AuthInterceptor validates the bearer token carried in the "authorization"
// metadata and injects the principal into the request context.
func AuthInterceptor(jwtManager *JWTManager) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		if publicMethods[info.FullMethod] {
			return handler(ctx, req)
		}

		ctx, err := authenticate(ctx, jwtManager)
		if err != nil {
			return nil, err
		}
		return handler(ctx, req)
	}
}

// StreamAuthInterceptor rejects a subscription before it registers anything
// when the principal is missing or invalid.
func StreamAuthInterceptor(jwtManager *JWTManager) grpc.StreamServerInterceptor {
	return func(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		ctx, err := authenticate(ss.Context(), jwtManager)
		if err != nil {
			return err
		}
		return handler(srv, &authenticatedStream{ServerStream: ss, ctx: ctx})
	}
}

type authenticatedStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *authenticatedStream) Context() context.Context {
	return s.ctx
}

func authenticate(ctx context.Context, jwtManager *JWTManager) (context.Context, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing metadata")
	}
	vals := md["authorization"]
	if len(vals) == 0 {
		return nil, status.Error(codes.Unauthenticated, "authorization required")
	}

	tokenString, ok := bearerToken(vals[0])
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "invalid auth header")
	}

	claims, err := jwtManager.ValidToken(tokenString)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid or expired token")
	}

	return WithPrincipal(ctx, claims.UserID, claims.Handle), nil
}

// HTTPAuthMiddleware is the REST counterpart of AuthInterceptor.
func HTTPAuthMiddleware(jwtManager *JWTManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				http.Error(w, `{"error":"authorization required"}`, http.StatusUnauthorized)
				return
			}
			claims, err := jwtManager.ValidToken(tokenString)
			if err != nil {
				http.Error(w, `{"error":"invalid or expired token"}`, http.StatusUnauthorized)
				return
			}
			ctx := WithPrincipal(r.Context(), claims.UserID, claims.Handle)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken parses "Bearer <token>".
func bearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", false
	}
	return parts[1], true
}
