package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cse-motors/inventory-system/internal/core/domain"
)

const reviewCollection = "reviews"

// MongoReviewRepository persists vehicle reviews. The reviews collection
// carries a unique compound index on (vehicle_id, account_id).
type MongoReviewRepository struct {
	coll *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) *MongoReviewRepository {
	return &MongoReviewRepository{coll: db.Collection(reviewCollection)}
}

type mongoReview struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	VehicleID primitive.ObjectID `bson:"vehicle_id"`
	AccountID primitive.ObjectID `bson:"account_id"`
	Rating    int                `bson:"rating"`
	Comment   string             `bson:"comment"`
	CreatedAt int64              `bson:"created_at"`

	// Populated by the $lookup in ListByVehicle, never stored.
	Reviewer []mongoAccount `bson:"reviewer,omitempty"`
}

func (m mongoReview) toDomain() domain.Review {
	review := domain.Review{
		ID:        m.ID.Hex(),
		VehicleID: m.VehicleID.Hex(),
		AccountID: m.AccountID.Hex(),
		Rating:    m.Rating,
		Comment:   m.Comment,
		CreatedAt: unixToTime(m.CreatedAt),
	}
	if len(m.Reviewer) > 0 {
		review.ReviewerName = m.Reviewer[0].FirstName + " " + m.Reviewer[0].LastName
	}
	return review
}

func (r *MongoReviewRepository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	vehicleOID, err := primitive.ObjectIDFromHex(review.VehicleID)
	if err != nil {
		return nil, domain.ErrVehicleNotFound
	}
	accountOID, err := primitive.ObjectIDFromHex(review.AccountID)
	if err != nil {
		return nil, domain.ErrAccountNotFound
	}

	doc := mongoReview{
		VehicleID: vehicleOID,
		AccountID: accountOID,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateReview
		}
		return nil, fmt.Errorf("insert review: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	created := doc.toDomain()
	return &created, nil
}

func (r *MongoReviewRepository) ListByVehicle(ctx context.Context, vehicleID string) ([]domain.Review, error) {
	oid, err := primitive.ObjectIDFromHex(vehicleID)
	if err != nil {
		return nil, domain.ErrVehicleNotFound
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"vehicle_id": oid}}},
		{{Key: "$sort", Value: bson.M{"created_at": -1}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         accountCollection,
			"localField":   "account_id",
			"foreignField": "_id",
			"as":           "reviewer",
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer cursor.Close(ctx)

	var out []domain.Review
	for cursor.Next(ctx) {
		var mr mongoReview
		if err := cursor.Decode(&mr); err != nil {
			return nil, fmt.Errorf("decode review: %w", err)
		}
		out = append(out, mr.toDomain())
	}
	return out, cursor.Err()
}

func (r *MongoReviewRepository) AverageRating(ctx context.Context, vehicleID string) (*domain.RatingSummary, error) {
	oid, err := primitive.ObjectIDFromHex(vehicleID)
	if err != nil {
		return nil, domain.ErrVehicleNotFound
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"vehicle_id": oid}}},
		{{Key: "$group", Value: bson.M{
			"_id":     nil,
			"average": bson.M{"$avg": "$rating"},
			"count":   bson.M{"$sum": 1},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("rating summary: %w", err)
	}
	defer cursor.Close(ctx)

	summary := &domain.RatingSummary{}
	if cursor.Next(ctx) {
		var row struct {
			Average float64 `bson:"average"`
			Count   int64   `bson:"count"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("decode rating summary: %w", err)
		}
		summary.Average = row.Average
		summary.Count = row.Count
	}
	return summary, cursor.Err()
}

func (r *MongoReviewRepository) Delete(ctx context.Context, reviewID string) error {
	oid, err := primitive.ObjectIDFromHex(reviewID)
	if err != nil {
		return domain.ErrReviewNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrReviewNotFound
	}
	return nil
}
