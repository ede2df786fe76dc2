package main

import (
	"context"

	_ "smartmenu/docs"
	"smartmenu/internal/adapter/http/routes"
	"smartmenu/internal/infrastructure/config"
	"smartmenu/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
)

// @title           Smart Menu API
// @version         1.0
// @description     Restaurant self-ordering: menu, customer sessions, order boards and admin dashboard.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("invalid configuration: %v", err)
	}
	logger.Setup(cfg.LogLevel, cfg.LogFormat)

	if err := routes.Run(context.Background(), cfg); err != nil {
		logrus.Fatal(err)
	}
}
