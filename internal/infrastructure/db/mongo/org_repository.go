package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/taking/backoffice/internal/core/domain"
)

const orgCollection = "orgs"

type OrgRepository struct {
	coll *mongo.Collection
}

func NewOrgRepository(db *mongo.Database) *OrgRepository {
	return &OrgRepository{coll: db.Collection(orgCollection)}
}

type mongoOrg struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	BizNum    string             `bson:"biznum,omitempty"`
	Contact   string             `bson:"contact,omitempty"`
	Enabled   bool               `bson:"enabled"`
	CreatedAt int64              `bson:"created_at"`
}

func (mo mongoOrg) toDomain() *domain.Org {
	return &domain.Org{
		ID:        mo.ID.Hex(),
		Name:      mo.Name,
		BizNum:    mo.BizNum,
		Contact:   mo.Contact,
		Enabled:   mo.Enabled,
		CreatedAt: unixToTime(mo.CreatedAt),
	}
}

func (r *OrgRepository) Create(ctx context.Context, org *domain.Org) (*domain.Org, error) {
	doc := mongoOrg{
		Name:      org.Name,
		BizNum:    org.BizNum,
		Contact:   org.Contact,
		Enabled:   org.Enabled,
		CreatedAt: org.CreatedAt.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateOrg
		}
		return nil, fmt.Errorf("insert org: %w", err)
	}
	return r.FindByName(ctx, org.Name)
}

func (r *OrgRepository) FindByName(ctx context.Context, name string) (*domain.Org, error) {
	return r.findOne(ctx, bson.M{"name": name})
}

func (r *OrgRepository) FindByID(ctx context.Context, id string) (*domain.Org, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrOrgNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *OrgRepository) findOne(ctx context.Context, filter bson.M) (*domain.Org, error) {
	var mo mongoOrg
	if err := r.coll.FindOne(ctx, filter).Decode(&mo); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOrgNotFound
		}
		return nil, fmt.Errorf("find org: %w", err)
	}
	return mo.toDomain(), nil
}

func (r *OrgRepository) List(ctx context.Context, page, size int) ([]domain.Org, int64, error) {
	total, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("count orgs: %w", err)
	}

	opts := options.Find().
		SetSkip(int64((page - 1) * size)).
		SetLimit(int64(size)).
		SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list orgs: %w", err)
	}
	defer cursor.Close(ctx)

	orgs := make([]domain.Org, 0, size)
	for cursor.Next(ctx) {
		var mo mongoOrg
		if err := cursor.Decode(&mo); err != nil {
			return nil, 0, fmt.Errorf("decode org: %w", err)
		}
		orgs = append(orgs, *mo.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate orgs: %w", err)
	}
	return orgs, total, nil
}

func (r *OrgRepository) Update(ctx context.Context, org *domain.Org) (*domain.Org, error) {
	oid, err := primitive.ObjectIDFromHex(org.ID)
	if err != nil {
		return nil, domain.ErrOrgNotFound
	}

	update := bson.M{"$set": bson.M{
		"name":    org.Name,
		"biznum":  org.BizNum,
		"contact": org.Contact,
		"enabled": org.Enabled,
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateOrg
		}
		return nil, fmt.Errorf("update org: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrOrgNotFound
	}
	return r.FindByID(ctx, org.ID)
}

func (r *OrgRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrOrgNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete org: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrOrgNotFound
	}
	return nil
}
