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

type MenuStore interface {
	Create(ctx context.Context, item *models.MenuItem) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.MenuItem, error)
	ListByVendor(ctx context.Context, vendorID primitive.ObjectID, availableOnly bool) ([]models.MenuItem, error)
	Update(ctx context.Context, item *models.MenuItem) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	SetAvailability(ctx context.Context, id primitive.ObjectID, isAvailable bool) error
}

type MongoMenuStore struct {
	collection *mongo.Collection
}

func NewMongoMenuStore(db *mongo.Database) *MongoMenuStore {
	return &MongoMenuStore{collection: db.Collection("menuitems")}
}

func (s *MongoMenuStore) Create(ctx context.Context, item *models.MenuItem) error {
	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now
	result, err := s.collection.InsertOne(ctx, item)
	if err != nil {
		return err
	}
	item.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *MongoMenuStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *MongoMenuStore) ListByVendor(ctx context.Context, vendorID primitive.ObjectID, availableOnly bool) ([]models.MenuItem, error) {
	filter := bson.M{"vendor": vendorID}
	if availableOnly {
		filter["isAvailable"] = true
	}
	opts := options.Find().SetSort(bson.D{{Key: "category", Value: 1}, {Key: "name", Value: 1}})

	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.MenuItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *MongoMenuStore) Update(ctx context.Context, item *models.MenuItem) error {
	item.UpdatedAt = time.Now()
	_, err := s.collection.ReplaceOne(ctx, bson.M{"_id": item.ID}, item)
	return err
}

func (s *MongoMenuStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (s *MongoMenuStore) SetAvailability(ctx context.Context, id primitive.ObjectID, isAvailable bool) error {
	_, err := s.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"isAvailable": isAvailable, "updatedAt": time.Now()},
	})
	return err
}
