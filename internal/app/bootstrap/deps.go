// internal/app/bootstrap/deps.go
package bootstrap

import (
	"github.com/breezehq/breeze-console/internal/app/system/backendapi"
	"go.mongodb.org/mongo-driver/mongo"
)

// Deps holds database and back-end dependencies for the app.
type Deps struct {
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database
	API           *backendapi.Client
}
