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

const billsCollection = "bills"

type MongoBillRepository struct {
	coll *mongo.Collection
}

func NewBillRepository(db *mongo.Database) *MongoBillRepository {
	return &MongoBillRepository{coll: db.Collection(billsCollection)}
}

type mongoBill struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	BillNumber      string             `bson:"bill_number"`
	ApartmentNumber string             `bson:"apartment_number"`
	Building        string             `bson:"building,omitempty"`
	Type            string             `bson:"bill_type"`
	Title           string             `bson:"title"`
	Description     string             `bson:"description,omitempty"`
	AmountCents     int64              `bson:"amount_cents"`
	DueDate         time.Time          `bson:"due_date"`
	Status          string             `bson:"status"`
	CreatedAt       time.Time          `bson:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at"`
	PaidAt          *time.Time         `bson:"paid_at,omitempty"`
}

func (r *MongoBillRepository) ListAll(ctx context.Context) ([]domain.Bill, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoBillRepository) ListByApartment(ctx context.Context, apartmentNumber string) ([]domain.Bill, error) {
	return r.find(ctx, bson.M{"apartment_number": apartmentNumber})
}

func (r *MongoBillRepository) ListOutstandingDueBefore(ctx context.Context, cutoff time.Time) ([]domain.Bill, error) {
	return r.find(ctx, bson.M{
		"status":   bson.M{"$in": []string{string(domain.BillPending), string(domain.BillOverdue)}},
		"due_date": bson.M{"$lt": cutoff},
	})
}

func (r *MongoBillRepository) find(ctx context.Context, filter bson.M) ([]domain.Bill, error) {
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "due_date", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find bills: %w", err)
	}
	defer cur.Close(ctx)

	var bills []domain.Bill
	for cur.Next(ctx) {
		var mb mongoBill
		if err := cur.Decode(&mb); err != nil {
			return nil, fmt.Errorf("decode bill: %w", err)
		}
		bills = append(bills, domain.Bill{
			ID:              mb.ID.Hex(),
			BillNumber:      mb.BillNumber,
			ApartmentNumber: mb.ApartmentNumber,
			Building:        mb.Building,
			Type:            domain.BillType(mb.Type),
			Title:           mb.Title,
			Description:     mb.Description,
			AmountCents:     mb.AmountCents,
			DueDate:         mb.DueDate,
			Status:          domain.BillStatus(mb.Status),
			CreatedAt:       mb.CreatedAt,
			UpdatedAt:       mb.UpdatedAt,
			PaidAt:          mb.PaidAt,
		})
	}
	return bills, cur.Err()
}
