//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"gigmarket/internal/chat/handler"
	"gigmarket/internal/chat/router"
	"gigmarket/internal/chat/service"
	"gigmarket/internal/common"
	"gigmarket/internal/config"
)

// This is just a declaration; wire generates the real body in wire_gen.go.
func InitializeChatService() (*ChatApp, func(), error) {
	wire.Build(
		config.LoadConfig,
		ProvideDatabase,
		ProvideChatRepository,
		ProvideMongo,
		ProvideAttachmentChecker,
		ProvideBroker,
		router.NewRouter,
		wire.Bind(new(service.Publisher), new(*router.Router)),
		wire.Bind(new(handler.Subscriber), new(*router.Router)),
		service.NewChatService,
		common.NewJWTManager,
		handler.NewChatHandler,
		handler.NewHTTPHandler,
		wire.Struct(new(ChatApp), "*"),
	)
	return nil, nil, nil
}
