package repository_test

import (
	"context"
	"os"
	"testing"

	"community-site-api/config"
	"community-site-api/internal/database"

	"go.mongodb.org/mongo-driver/mongo"
)

// Integration tests run against a real MongoDB instance. They are skipped
// unless MONGO_TEST_URI is set, so the unit suite stays self-contained.
func getTestDB(t *testing.T) *mongo.Database {
	t.Helper()
	if os.Getenv("MONGO_TEST_URI") == "" {
		t.Skip("MONGO_TEST_URI not set; skipping store integration tests")
	}

	cfg := config.LoadTestConfig()
	db, disconnect, err := database.InitMongo(&cfg.Mongo)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(disconnect)
	return db
}

func dropCollection(t *testing.T, db *mongo.Database, name string) {
	t.Helper()
	if err := db.Collection(name).Drop(context.Background()); err != nil {
		t.Fatalf("Failed to drop collection %s: %v", name, err)
	}
}
