// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	savedfilterstore "github.com/breezehq/breeze-console/internal/app/store/savedfilters"
	"github.com/breezehq/breeze-console/internal/app/system/backendapi"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ConnectDB establishes the MongoDB connection (saved filters) and builds
// the platform API client. The platform is not pinged here: the console must
// come up even when the platform is down, serving snapshots and samples.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (Deps, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(appCfg.MongoURI))
	if err != nil {
		return Deps{}, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return Deps{}, fmt.Errorf("ping mongo: %w", err)
	}
	logger.Info("connected to MongoDB", zap.String("database", appCfg.MongoDatabase))

	api := backendapi.New(appCfg.PlatformAPIURL, appCfg.PlatformToken, appCfg.PlatformTimeout, logger)
	logger.Info("platform API client ready", zap.String("base_url", appCfg.PlatformAPIURL))

	return Deps{
		MongoClient:   client,
		MongoDatabase: client.Database(appCfg.MongoDatabase),
		API:           api,
	}, nil
}

// EnsureSchema creates the indexes the console owns.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) error {
	if err := savedfilterstore.EnsureIndexes(ctx, deps.MongoDatabase); err != nil {
		return fmt.Errorf("ensure saved filter indexes: %w", err)
	}
	return nil
}
