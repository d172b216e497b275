package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/legalsheba/legalsheba-api/internal/core/domain"
)

const appointmentCollection = "appointments"

type MongoAppointmentRepository struct {
	coll *mongo.Collection
}

func NewAppointmentRepository(db *mongo.Database) *MongoAppointmentRepository {
	return &MongoAppointmentRepository{coll: db.Collection(appointmentCollection)}
}

type mongoAppointment struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty"`
	ClientID           string             `bson:"client_id"`
	ClientName         string             `bson:"client_name"`
	LawyerProfileID    string             `bson:"lawyer_profile_id"`
	LawyerUserID       string             `bson:"lawyer_user_id"`
	LawyerName         string             `bson:"lawyer_name"`
	AppointmentDate    string             `bson:"appointment_date"`
	Status             string             `bson:"status"`
	ProblemDescription string             `bson:"problem_description,omitempty"`
	Notes              string             `bson:"notes,omitempty"`
	CreatedAt          int64              `bson:"created_at"`
}

func (ma mongoAppointment) toDomain() *domain.Appointment {
	return &domain.Appointment{
		ID:                 ma.ID.Hex(),
		ClientID:           ma.ClientID,
		ClientName:         ma.ClientName,
		LawyerProfileID:    ma.LawyerProfileID,
		LawyerUserID:       ma.LawyerUserID,
		LawyerName:         ma.LawyerName,
		AppointmentDate:    ma.AppointmentDate,
		Status:             domain.AppointmentStatus(ma.Status),
		ProblemDescription: ma.ProblemDescription,
		Notes:              ma.Notes,
		CreatedAt:          unixToTime(ma.CreatedAt),
	}
}

func (r *MongoAppointmentRepository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	doc := mongoAppointment{
		ClientID:           appt.ClientID,
		ClientName:         appt.ClientName,
		LawyerProfileID:    appt.LawyerProfileID,
		LawyerUserID:       appt.LawyerUserID,
		LawyerName:         appt.LawyerName,
		AppointmentDate:    appt.AppointmentDate,
		Status:             string(appt.Status),
		ProblemDescription: appt.ProblemDescription,
		Notes:              appt.Notes,
		CreatedAt:          appt.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert appointment: %w", err)
	}

	created := *appt
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MongoAppointmentRepository) FindByID(ctx context.Context, id string) (*domain.Appointment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAppointmentNotFound
	}

	var ma mongoAppointment
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&ma); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("find appointment: %w", err)
	}
	return ma.toDomain(), nil
}

func (r *MongoAppointmentRepository) ListByLawyer(ctx context.Context, lawyerProfileID string, page, size int) ([]*domain.Appointment, int64, error) {
	return r.list(ctx, bson.M{"lawyer_profile_id": lawyerProfileID}, page, size)
}

func (r *MongoAppointmentRepository) ListByClient(ctx context.Context, clientID string, page, size int) ([]*domain.Appointment, int64, error) {
	return r.list(ctx, bson.M{"client_id": clientID}, page, size)
}

// UpdateStatus sets the status and returns the updated record.
func (r *MongoAppointmentRepository) UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) (*domain.Appointment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAppointmentNotFound
	}

	var ma mongoAppointment
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"status": string(status)}},
		opts,
	).Decode(&ma)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("update appointment status: %w", err)
	}
	return ma.toDomain(), nil
}

func (r *MongoAppointmentRepository) list(ctx context.Context, filter bson.M, page, size int) ([]*domain.Appointment, int64, error) {
	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count appointments: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: -1}}).
		SetSkip(int64(page) * int64(size)).
		SetLimit(int64(size))

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list appointments: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Appointment
	for cur.Next(ctx) {
		var ma mongoAppointment
		if err := cur.Decode(&ma); err != nil {
			return nil, 0, fmt.Errorf("decode appointment: %w", err)
		}
		out = append(out, ma.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate appointments: %w", err)
	}
	return out, total, nil
}
