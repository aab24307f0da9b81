package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/skyline-bms/apartment-portal/internal/core/domain"
)

const notificationsCollection = "notifications"

type MongoNotificationRepository struct {
	coll *mongo.Collection
}

func NewNotificationRepository(db *mongo.Database) *MongoNotificationRepository {
	return &MongoNotificationRepository{coll: db.Collection(notificationsCollection)}
}

type mongoNotification struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	ApartmentNumber string             `bson:"apartment_number"`
	Type            string             `bson:"type"`
	Title           string             `bson:"title"`
	Message         string             `bson:"message"`
	Read            bool               `bson:"read"`
	CreatedAt       time.Time          `bson:"created_at"`
}

func (r *MongoNotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	doc := mongoNotification{
		ApartmentNumber: n.ApartmentNumber,
		Type:            string(n.Type),
		Title:           n.Title,
		Message:         n.Message,
		CreatedAt:       n.CreatedAt,
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		n.ID = oid.Hex()
	}
	return nil
}

func (r *MongoNotificationRepository) ListByApartment(ctx context.Context, apartmentNumber string) ([]domain.Notification, error) {
	cur, err := r.coll.Find(ctx,
		bson.M{"apartment_number": apartmentNumber},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("find notifications: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.Notification
	for cur.Next(ctx) {
		var mn mongoNotification
		if err := cur.Decode(&mn); err != nil {
			return nil, fmt.Errorf("decode notification: %w", err)
		}
		out = append(out, domain.Notification{
			ID:              mn.ID.Hex(),
			ApartmentNumber: mn.ApartmentNumber,
			Type:            domain.NotificationType(mn.Type),
			Title:           mn.Title,
			Message:         mn.Message,
			Read:            mn.Read,
			CreatedAt:       mn.CreatedAt,
		})
	}
	return out, cur.Err()
}

func (r *MongoNotificationRepository) MarkRead(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNotificationNotFound
	}
	res, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": bson.M{"read": true}})
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotificationNotFound
	}
	return nil
}
