package dbmongo

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"gigmarket/internal/config"
)

// Runs against the docker-compose MongoDB when MONGO_INTEGRATION=1.
func TestAttachmentStore_Integration(t *testing.T) {
	if os.Getenv("MONGO_INTEGRATION") != "1" {
		t.Skip("MONGO_INTEGRATION not set")
	}
	ctx := context.Background()

	cfg := &config.Config{
		MongoDB: config.MongoDBConfig{
			Host:     getEnvOrDefault("MONGO_HOST", "localhost"),
			Port:     getEnvOrDefault("MONGO_PORT", "27017"),
			Username: getEnvOrDefault("MONGO_USERNAME", "admin"),
			Password: getEnvOrDefault("MONGO_PASSWORD", "admin123"),
			Database: getEnvOrDefault("MONGO_DATABASE", "gigmarket_test"),
			Bucket:   "media_files_test",
		},
	}

	client, err := NewMongoConnection(cfg)
	require.NoError(t, err, "Ensure MongoDB is running: docker-compose up -d mongo")
	defer client.Close(ctx)

	fileID, err := client.GridFS.UploadFromStream("contract.pdf", strings.NewReader("signed"))
	require.NoError(t, err)
	defer client.GridFS.Delete(fileID)

	store := NewAttachmentStore(client)

	ok, err := store.Exists(ctx, fileID.Hex())
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Exists(ctx, primitive.NewObjectID().Hex())
	require.NoError(t, err)
	assert.False(t, ok)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
