package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cse-motors/inventory-system/internal/core/domain"
)

const (
	classificationCollection = "classifications"
	vehicleCollection        = "vehicles"
)

// MongoInventoryRepository persists classifications and vehicles. The
// classifications collection carries a unique index on name.
type MongoInventoryRepository struct {
	classifications *mongo.Collection
	vehicles        *mongo.Collection
}

func NewInventoryRepository(db *mongo.Database) *MongoInventoryRepository {
	return &MongoInventoryRepository{
		classifications: db.Collection(classificationCollection),
		vehicles:        db.Collection(vehicleCollection),
	}
}

type mongoClassification struct {
	ID   primitive.ObjectID `bson:"_id,omitempty"`
	Name string             `bson:"name"`
}

type mongoVehicle struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	ClassificationID primitive.ObjectID `bson:"classification_id"`
	Make             string             `bson:"make"`
	Model            string             `bson:"model"`
	Year             int                `bson:"year"`
	Description      string             `bson:"description"`
	Image            string             `bson:"image"`
	Thumbnail        string             `bson:"thumbnail"`
	Price            float64            `bson:"price"`
	Miles            int                `bson:"miles"`
	Color            string             `bson:"color"`
	CreatedAt        int64              `bson:"created_at"`
}

func (m mongoVehicle) toDomain() domain.Vehicle {
	return domain.Vehicle{
		ID:               m.ID.Hex(),
		ClassificationID: m.ClassificationID.Hex(),
		Make:             m.Make,
		Model:            m.Model,
		Year:             m.Year,
		Description:      m.Description,
		Image:            m.Image,
		Thumbnail:        m.Thumbnail,
		Price:            m.Price,
		Miles:            m.Miles,
		Color:            m.Color,
		CreatedAt:        unixToTime(m.CreatedAt),
	}
}

func (r *MongoInventoryRepository) ListClassifications(ctx context.Context) ([]domain.Classification, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.classifications.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list classifications: %w", err)
	}
	defer cursor.Close(ctx)

	var out []domain.Classification
	for cursor.Next(ctx) {
		var mc mongoClassification
		if err := cursor.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode classification: %w", err)
		}
		out = append(out, domain.Classification{ID: mc.ID.Hex(), Name: mc.Name})
	}
	return out, cursor.Err()
}

func (r *MongoInventoryRepository) FindClassification(ctx context.Context, id string) (*domain.Classification, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrClassificationNotFound
	}

	var mc mongoClassification
	if err := r.classifications.FindOne(ctx, bson.M{"_id": oid}).Decode(&mc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrClassificationNotFound
		}
		return nil, fmt.Errorf("find classification: %w", err)
	}
	return &domain.Classification{ID: mc.ID.Hex(), Name: mc.Name}, nil
}

func (r *MongoInventoryRepository) CreateClassification(ctx context.Context, name string) (*domain.Classification, error) {
	res, err := r.classifications.InsertOne(ctx, mongoClassification{Name: name})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrClassificationExists
		}
		return nil, fmt.Errorf("insert classification: %w", err)
	}
	return &domain.Classification{ID: res.InsertedID.(primitive.ObjectID).Hex(), Name: name}, nil
}

func (r *MongoInventoryRepository) ListVehiclesByClassification(ctx context.Context, classificationID string) ([]domain.Vehicle, error) {
	oid, err := primitive.ObjectIDFromHex(classificationID)
	if err != nil {
		return nil, domain.ErrClassificationNotFound
	}

	opts := options.Find().SetSort(bson.D{{Key: "make", Value: 1}, {Key: "model", Value: 1}})
	cursor, err := r.vehicles.Find(ctx, bson.M{"classification_id": oid}, opts)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	defer cursor.Close(ctx)

	var out []domain.Vehicle
	for cursor.Next(ctx) {
		var mv mongoVehicle
		if err := cursor.Decode(&mv); err != nil {
			return nil, fmt.Errorf("decode vehicle: %w", err)
		}
		out = append(out, mv.toDomain())
	}
	return out, cursor.Err()
}

func (r *MongoInventoryRepository) FindVehicle(ctx context.Context, id string) (*domain.Vehicle, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrVehicleNotFound
	}

	var mv mongoVehicle
	if err := r.vehicles.FindOne(ctx, bson.M{"_id": oid}).Decode(&mv); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrVehicleNotFound
		}
		return nil, fmt.Errorf("find vehicle: %w", err)
	}
	v := mv.toDomain()
	return &v, nil
}

func (r *MongoInventoryRepository) CreateVehicle(ctx context.Context, v *domain.Vehicle) (*domain.Vehicle, error) {
	classOID, err := primitive.ObjectIDFromHex(v.ClassificationID)
	if err != nil {
		return nil, domain.ErrClassificationNotFound
	}

	doc := mongoVehicle{
		ClassificationID: classOID,
		Make:             v.Make,
		Model:            v.Model,
		Year:             v.Year,
		Description:      v.Description,
		Image:            v.Image,
		Thumbnail:        v.Thumbnail,
		Price:            v.Price,
		Miles:            v.Miles,
		Color:            v.Color,
		CreatedAt:        v.CreatedAt.Unix(),
	}

	res, err := r.vehicles.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert vehicle: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	created := doc.toDomain()
	return &created, nil
}
