package draft

import (
	"context"
	"log"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// LoggingInterceptor logs every unary call with its status code and latency.
func LoggingInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		code := status.Code(err)
		if err != nil {
			log.Printf("grpc %s code=%s duration=%s err=%v", info.FullMethod, code, time.Since(start), err)
		} else {
			log.Printf("grpc %s code=%s duration=%s", info.FullMethod, code, time.Since(start))
		}
		return resp, err
	}
}
