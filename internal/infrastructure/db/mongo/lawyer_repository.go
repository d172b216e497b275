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

const lawyerCollection = "lawyer_profiles"

type MongoLawyerRepository struct {
	coll *mongo.Collection
}

func NewLawyerRepository(db *mongo.Database) *MongoLawyerRepository {
	return &MongoLawyerRepository{coll: db.Collection(lawyerCollection)}
}

type mongoLawyer struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty"`
	UserID              string             `bson:"user_id"`
	Name                string             `bson:"name"`
	Experience          int                `bson:"experience"`
	Location            string             `bson:"location,omitempty"`
	CourtOfPractice     string             `bson:"court_of_practice,omitempty"`
	AvailabilityDetails string             `bson:"availability_details,omitempty"`
	VisitingHour        string             `bson:"v_hour,omitempty"`
	Specialties         []string           `bson:"specialties,omitempty"`
	CreatedAt           int64              `bson:"created_at"`
}

func (ml mongoLawyer) toDomain() *domain.LawyerProfile {
	return &domain.LawyerProfile{
		ID:                  ml.ID.Hex(),
		UserID:              ml.UserID,
		Name:                ml.Name,
		Experience:          ml.Experience,
		Location:            ml.Location,
		CourtOfPractice:     ml.CourtOfPractice,
		AvailabilityDetails: ml.AvailabilityDetails,
		VisitingHour:        ml.VisitingHour,
		Specialties:         ml.Specialties,
		CreatedAt:           unixToTime(ml.CreatedAt),
	}
}

func (r *MongoLawyerRepository) Create(ctx context.Context, profile *domain.LawyerProfile) (*domain.LawyerProfile, error) {
	doc := mongoLawyer{
		UserID:              profile.UserID,
		Name:                profile.Name,
		Experience:          profile.Experience,
		Location:            profile.Location,
		CourtOfPractice:     profile.CourtOfPractice,
		AvailabilityDetails: profile.AvailabilityDetails,
		VisitingHour:        profile.VisitingHour,
		Specialties:         profile.Specialties,
		CreatedAt:           profile.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert lawyer profile: %w", err)
	}

	created := *profile
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MongoLawyerRepository) FindByID(ctx context.Context, id string) (*domain.LawyerProfile, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrLawyerNotFound
	}

	var ml mongoLawyer
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&ml); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrLawyerNotFound
		}
		return nil, fmt.Errorf("find lawyer profile: %w", err)
	}
	return ml.toDomain(), nil
}

func (r *MongoLawyerRepository) FindByUserID(ctx context.Context, userID string) (*domain.LawyerProfile, error) {
	var ml mongoLawyer
	if err := r.coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&ml); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrLawyerNotFound
		}
		return nil, fmt.Errorf("find lawyer profile by user: %w", err)
	}
	return ml.toDomain(), nil
}

func (r *MongoLawyerRepository) List(ctx context.Context) ([]*domain.LawyerProfile, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list lawyer profiles: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.LawyerProfile
	for cur.Next(ctx) {
		var ml mongoLawyer
		if err := cur.Decode(&ml); err != nil {
			return nil, fmt.Errorf("decode lawyer profile: %w", err)
		}
		out = append(out, ml.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate lawyer profiles: %w", err)
	}
	return out, nil
}
