package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/skyline-bms/apartment-portal/internal/core/domain"
)

const (
	usersCollection    = "users"
	countersCollection = "counters"
)

type MongoUserRepository struct {
	coll     *mongo.Collection
	counters *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{
		coll:     db.Collection(usersCollection),
		counters: db.Collection(countersCollection),
	}
}

type mongoUser struct {
	UserID          int64  `bson:"user_id"`
	Username        string `bson:"username"`
	Email           string `bson:"email"`
	FullName        string `bson:"full_name"`
	Phone           string `bson:"phone,omitempty"`
	ApartmentNumber string `bson:"apartment_number,omitempty"`
	Building        string `bson:"building,omitempty"`
	Role            string `bson:"role"`
	IsActive        bool   `bson:"is_active"`
	PasswordHash    string `bson:"password_hash"`
	CreatedAt       int64  `bson:"created_at"`
	UpdatedAt       int64  `bson:"updated_at"`
}

func (r *MongoUserRepository) Create(ctx context.Context, user *domain.UserProfile) (*domain.UserProfile, error) {
	id, err := r.nextID(ctx)
	if err != nil {
		return nil, err
	}

	doc := mongoUser{
		UserID:          id,
		Username:        user.Username,
		Email:           user.Email,
		FullName:        user.FullName,
		Phone:           user.Phone,
		ApartmentNumber: user.ApartmentNumber,
		Building:        user.Building,
		Role:            string(user.Role),
		IsActive:        user.IsActive,
		PasswordHash:    user.PasswordHash,
		CreatedAt:       user.CreatedAt.Unix(),
		UpdatedAt:       user.UpdatedAt.Unix(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	return r.FindByUsername(ctx, user.Username)
}

func (r *MongoUserRepository) FindByUsername(ctx context.Context, username string) (*domain.UserProfile, error) {
	var mu mongoUser
	if err := r.coll.FindOne(ctx, bson.M{"username": username}).Decode(&mu); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return mu.toDomain(), nil
}

func (r *MongoUserRepository) List(ctx context.Context) ([]domain.UserProfile, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoUserRepository) ListByRoles(ctx context.Context, roles ...domain.Role) ([]domain.UserProfile, error) {
	names := make([]string, len(roles))
	for i, role := range roles {
		names[i] = string(role)
	}
	return r.find(ctx, bson.M{"role": bson.M{"$in": names}})
}

func (r *MongoUserRepository) find(ctx context.Context, filter bson.M) ([]domain.UserProfile, error) {
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "user_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	defer cur.Close(ctx)

	var users []domain.UserProfile
	for cur.Next(ctx) {
		var mu mongoUser
		if err := cur.Decode(&mu); err != nil {
			return nil, fmt.Errorf("decode user: %w", err)
		}
		users = append(users, *mu.toDomain())
	}
	return users, cur.Err()
}

// nextID allocates a monotonically increasing numeric user id through the
// counters collection.
func (r *MongoUserRepository) nextID(ctx context.Context) (int64, error) {
	var out struct {
		Seq int64 `bson:"seq"`
	}
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": usersCollection},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&out)
	if err != nil {
		return 0, fmt.Errorf("allocate user id: %w", err)
	}
	return out.Seq, nil
}

func (mu mongoUser) toDomain() *domain.UserProfile {
	return &domain.UserProfile{
		ID:              mu.UserID,
		Username:        mu.Username,
		Email:           mu.Email,
		FullName:        mu.FullName,
		Phone:           mu.Phone,
		ApartmentNumber: mu.ApartmentNumber,
		Building:        mu.Building,
		Role:            domain.Role(mu.Role),
		IsActive:        mu.IsActive,
		PasswordHash:    mu.PasswordHash,
		CreatedAt:       unixToTime(mu.CreatedAt),
		UpdatedAt:       unixToTime(mu.UpdatedAt),
	}
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
