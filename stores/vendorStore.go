package stores

import (
	"context"
	"time"

	"github.com/Abtahee-2104089/hackathon-CUET/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type VendorStore interface {
	Create(ctx context.Context, vendor *models.Vendor) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Vendor, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID) (*models.Vendor, error)
	ListOpen(ctx context.Context) ([]models.Vendor, error)
	Update(ctx context.Context, vendor *models.Vendor) error
	SetOpen(ctx context.Context, id primitive.ObjectID, isOpen bool) error
}

type MongoVendorStore struct {
	collection *mongo.Collection
}

func NewMongoVendorStore(db *mongo.Database) *MongoVendorStore {
	return &MongoVendorStore{collection: db.Collection("vendors")}
}

func (s *MongoVendorStore) Create(ctx context.Context, vendor *models.Vendor) error {
	now := time.Now()
	vendor.CreatedAt = now
	vendor.UpdatedAt = now
	result, err := s.collection.InsertOne(ctx, vendor)
	if err != nil {
		return err
	}
	vendor.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *MongoVendorStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&vendor); err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (s *MongoVendorStore) GetByUserID(ctx context.Context, userID primitive.ObjectID) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := s.collection.FindOne(ctx, bson.M{"user": userID}).Decode(&vendor); err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (s *MongoVendorStore) ListOpen(ctx context.Context) ([]models.Vendor, error) {
	cursor, err := s.collection.Find(ctx, bson.M{"isOpen": true})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var vendors []models.Vendor
	if err := cursor.All(ctx, &vendors); err != nil {
		return nil, err
	}
	return vendors, nil
}

func (s *MongoVendorStore) Update(ctx context.Context, vendor *models.Vendor) error {
	vendor.UpdatedAt = time.Now()
	_, err := s.collection.ReplaceOne(ctx, bson.M{"_id": vendor.ID}, vendor)
	return err
}

func (s *MongoVendorStore) SetOpen(ctx context.Context, id primitive.ObjectID, isOpen bool) error {
	_, err := s.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"isOpen": isOpen, "updatedAt": time.Now()},
	})
	return err
}
