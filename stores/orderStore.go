package stores

import (
	"context"
	"time"

	"github.com/Abtahee-2104089/hackathon-CUET/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type OrderStore interface {
	Create(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error)
	ListByVendor(ctx context.Context, vendorID primitive.ObjectID, status string) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string, entry models.StatusEntry) error
	SetPaymentStatus(ctx context.Context, id primitive.ObjectID, status string) error
	SetPaymentID(ctx context.Context, id primitive.ObjectID, paymentID string) error
}

type MongoOrderStore struct {
	collection *mongo.Collection
}

func NewMongoOrderStore(db *mongo.Database) *MongoOrderStore {
	return &MongoOrderStore{collection: db.Collection("orders")}
}

func (s *MongoOrderStore) Create(ctx context.Context, order *models.Order) error {
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now
	result, err := s.collection.InsertOne(ctx, order)
	if err != nil {
		return err
	}
	order.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *MongoOrderStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	var order models.Order
	if err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *MongoOrderStore) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	return s.list(ctx, bson.M{"user": userID})
}

func (s *MongoOrderStore) ListByVendor(ctx context.Context, vendorID primitive.ObjectID, status string) ([]models.Order, error) {
	filter := bson.M{"vendor": vendorID}
	if status != "" {
		filter["status"] = status
	}
	return s.list(ctx, filter)
}

func (s *MongoOrderStore) list(ctx context.Context, filter bson.M) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateStatus sets the new status and pushes the history entry in a
// single update, keeping the one-entry-per-transition invariant.
func (s *MongoOrderStore) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string, entry models.StatusEntry) error {
	_, err := s.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set":  bson.M{"status": status, "updatedAt": time.Now()},
		"$push": bson.M{"statusHistory": entry},
	})
	return err
}

func (s *MongoOrderStore) SetPaymentStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	_, err := s.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"paymentStatus": status, "updatedAt": time.Now()},
	})
	return err
}

func (s *MongoOrderStore) SetPaymentID(ctx context.Context, id primitive.ObjectID, paymentID string) error {
	_, err := s.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"paymentId": paymentID, "updatedAt": time.Now()},
	})
	return err
}
