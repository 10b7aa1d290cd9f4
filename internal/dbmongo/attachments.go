package dbmongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AttachmentStore resolves attachment references against the GridFS files
// collection of the media bucket. Messages only carry the reference.
type AttachmentStore struct {
	files *mongo.Collection
}

func NewAttachmentStore(mc *MongoClient) *AttachmentStore {
	return newAttachmentStore(mc.Database, mc.Bucket)
}

func newAttachmentStore(db *mongo.Database, bucket string) *AttachmentStore {
	return &AttachmentStore{files: db.Collection(bucket + ".files")}
}

// Exists reports whether attachmentID names a stored file. A reference that is
// not an ObjectID hex string never does.
func (s *AttachmentStore) Exists(ctx context.Context, attachmentID string) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(attachmentID)
	if err != nil {
		return false, nil
	}

	n, err := s.files.CountDocuments(ctx, bson.M{"_id": objectID}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("attachment lookup failed: %w", err)
	}
	return n > 0, nil
}
