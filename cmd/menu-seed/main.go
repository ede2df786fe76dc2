// Command menu-seed writes the default menu into the DynamoDB menu table so
// the API can run with MENU_SOURCE=dynamodb.
package main

import (
	"context"
	"time"

	"smartmenu/internal/adapter/persistence/repository"
	"smartmenu/internal/infrastructure/catalog"
	"smartmenu/internal/infrastructure/database"
	"smartmenu/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
)

func main() {
	logger.Setup("info", "text")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	ddb, err := database.ConnectDynamoDB(ctx)
	if err != nil {
		logrus.Fatalf("connect dynamodb: %v", err)
	}

	items := catalog.DefaultMenu()
	if err := repository.NewMenuDynamoRepository(ddb).SeedMenu(ctx, items); err != nil {
		logrus.Fatalf("seed menu: %v", err)
	}
	logrus.WithField("items", len(items)).Info("menu seeded")
}
