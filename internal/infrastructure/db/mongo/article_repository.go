package mongo

import (
	"context"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/legalsheba/legalsheba-api/internal/core/domain"
)

const articleCollection = "info_hub"

type MongoArticleRepository struct {
	coll *mongo.Collection
}

func NewArticleRepository(db *mongo.Database) *MongoArticleRepository {
	return &MongoArticleRepository{coll: db.Collection(articleCollection)}
}

type mongoArticle struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Content   string             `bson:"content"`
	Category  string             `bson:"category"`
	Date      string             `bson:"date"`
	CreatedAt int64              `bson:"created_at"`
}

func (ma mongoArticle) toDomain() *domain.Article {
	return &domain.Article{
		ID:        ma.ID.Hex(),
		Title:     ma.Title,
		Content:   ma.Content,
		Category:  ma.Category,
		Date:      ma.Date,
		CreatedAt: unixToTime(ma.CreatedAt),
	}
}

func (r *MongoArticleRepository) Create(ctx context.Context, article *domain.Article) (*domain.Article, error) {
	doc := mongoArticle{
		Title:     article.Title,
		Content:   article.Content,
		Category:  article.Category,
		Date:      article.Date,
		CreatedAt: article.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert article: %w", err)
	}

	created := *article
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MongoArticleRepository) FindByID(ctx context.Context, id string) (*domain.Article, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrArticleNotFound
	}

	var ma mongoArticle
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&ma); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrArticleNotFound
		}
		return nil, fmt.Errorf("find article: %w", err)
	}
	return ma.toDomain(), nil
}

func (r *MongoArticleRepository) Update(ctx context.Context, article *domain.Article) (*domain.Article, error) {
	oid, err := primitive.ObjectIDFromHex(article.ID)
	if err != nil {
		return nil, domain.ErrArticleNotFound
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"title":    article.Title,
		"content":  article.Content,
		"category": article.Category,
		"date":     article.Date,
	}})
	if err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrArticleNotFound
	}
	return article, nil
}

func (r *MongoArticleRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrArticleNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrArticleNotFound
	}
	return nil
}

func (r *MongoArticleRepository) List(ctx context.Context, category string, page, size int) ([]*domain.Article, int64, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = bson.M{"$regex": "^" + regexp.QuoteMeta(category) + "$", "$options": "i"}
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count articles: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: -1}}).
		SetSkip(int64(page) * int64(size)).
		SetLimit(int64(size))

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list articles: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Article
	for cur.Next(ctx) {
		var ma mongoArticle
		if err := cur.Decode(&ma); err != nil {
			return nil, 0, fmt.Errorf("decode article: %w", err)
		}
		out = append(out, ma.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate articles: %w", err)
	}
	return out, total, nil
}
