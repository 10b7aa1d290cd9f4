package main

import (
	"context"
	"errors"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	pb "gigmarket/api/v1/chat"
	"gigmarket/internal/common"
	"gigmarket/internal/di"
)

func main() {
	log.Println("Starting Chat Service...")

	app, cleanup, err := di.InitializeChatService()
	if err != nil {
		log.Fatalf("Failed to initialize chat service: %v", err)
	}
	defer cleanup()

	closeLog := setupLogOutput(app.Config.Logging.OutputPath)
	defer closeLog()

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(common.LoggingUnaryInterceptor, common.AuthInterceptor(app.JWT)),
		grpc.ChainStreamInterceptor(common.LoggingStreamInterceptor, common.StreamAuthInterceptor(app.JWT)),
	)
	pb.RegisterChatServiceServer(grpcServer, app.Handler)

	healthServer := health.NewServer()
	healthServer.SetServingStatus(pb.ChatService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	reflection.Register(grpcServer)

	grpcAddr := net.JoinHostPort(app.Config.Server.Host, app.Config.Server.GRPCPort)
	lis, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		log.Fatalf("Failed to listen on %s: %v", grpcAddr, err)
	}

	httpServer := &http.Server{
		Addr:         net.JoinHostPort(app.Config.Server.Host, app.Config.Server.HTTPPort),
		Handler:      app.HTTP.Router(),
		ReadTimeout:  time.Duration(app.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(app.Config.Server.WriteTimeout) * time.Second,
	}

	go func() {
		log.Printf("Chat Service gRPC running on %s", grpcAddr)
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("Failed to serve gRPC: %v", err)
		}
	}()

	go func() {
		log.Printf("Chat Service HTTP running on %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to serve HTTP: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down Chat Service...")
	healthServer.Shutdown()

	// Live subscription streams only end once the broker closes them.
	app.Broker.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("HTTP shutdown error: %v", err)
	}

	stopped := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-ctx.Done():
		grpcServer.Stop()
	}
	log.Println("Chat Service stopped")
}

// setupLogOutput points the standard logger at stdout, stderr or a file.
func setupLogOutput(path string) func() {
	switch path {
	case "", "stdout":
		log.SetOutput(os.Stdout)
		return func() {}
	case "stderr":
		log.SetOutput(os.Stderr)
		return func() {}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Printf("Cannot open log file %s, logging to stdout: %v", path, err)
		return func() {}
	}
	log.SetOutput(io.MultiWriter(os.Stdout, f))
	return func() { f.Close() }
}
