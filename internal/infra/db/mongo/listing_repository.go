package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	domainbooking "rentgear/internal/domain/booking"
	domainfreeplan "rentgear/internal/domain/freeplan"
	domainlistings "rentgear/internal/domain/listings"
	"rentgear/internal/domain/shared/money"
)

var ErrConcurrentUpdate = errors.New("mongo: concurrent update detected")

type ListingRepository struct {
	col *mongo.Collection
}

func NewListingRepository(db *mongo.Database) *ListingRepository {
	return &ListingRepository{col: db.Collection("agg_listing")}
}

func (r *ListingRepository) ByID(ctx context.Context, id domainlistings.ListingID) (*domainlistings.Listing, error) {
	var doc listingDocument
	if err := r.col.FindOne(ctx, bson.M{"_id": string(id)}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domainlistings.ErrNotFound
		}
		return nil, err
	}
	return doc.toAggregate(), nil
}

// Save upserts the listing, rejecting stale writes through the version field.
func (r *ListingRepository) Save(ctx context.Context, l *domainlistings.Listing) error {
	doc := newListingDocument(l)
	filter := bson.M{"_id": doc.ID, "version": l.Version}
	doc.Version = l.Version + 1
	update := bson.M{"$set": doc}
	opts := options.Update().SetUpsert(true)
	res, err := r.col.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrConcurrentUpdate
		}
		return err
	}
	if res.MatchedCount == 0 && res.UpsertedCount == 0 {
		return ErrConcurrentUpdate
	}
	l.Version = doc.Version
	return nil
}

var _ domainlistings.ListingRepository = (*ListingRepository)(nil)

type listingDocument struct {
	ID            string          `bson:"_id"`
	Host          string          `bson:"host_id"`
	Title         string          `bson:"title"`
	Description   string          `bson:"description"`
	State         string          `bson:"state"`
	PriceAmount   int64           `bson:"price_amount"`
	PriceCurrency string          `bson:"price_currency"`
	Unit          string          `bson:"unit"`
	MaxUsageHours int             `bson:"max_usage_hours"`
	FreePlan      []entryDocument `bson:"free_plan,omitempty"`
	CreatedAt     int64           `bson:"created_at"`
	UpdatedAt     int64           `bson:"updated_at"`
	Version       int64           `bson:"version"`
}

type entryDocument struct {
	StartTime string `bson:"start_time"`
	EndTime   string `bson:"end_time"`
}

func newListingDocument(l *domainlistings.Listing) listingDocument {
	doc := listingDocument{
		ID:            string(l.ID),
		Host:          string(l.Host),
		Title:         l.Title,
		Description:   l.Description,
		State:         string(l.State),
		PriceAmount:   l.Price.Amount,
		PriceCurrency: l.Price.Currency,
		Unit:          string(l.Unit),
		MaxUsageHours: l.MaxUsageHours,
		CreatedAt:     l.CreatedAt.UnixMilli(),
		UpdatedAt:     l.UpdatedAt.UnixMilli(),
		Version:       l.Version,
	}
	for _, e := range l.FreePlan {
		doc.FreePlan = append(doc.FreePlan, entryDocument{StartTime: e.StartTime, EndTime: e.EndTime})
	}
	return doc
}

func (d listingDocument) toAggregate() *domainlistings.Listing {
	agg := &domainlistings.Listing{
		ID:            domainlistings.ListingID(d.ID),
		Host:          domainlistings.HostID(d.Host),
		Title:         d.Title,
		Description:   d.Description,
		State:         domainlistings.ListingState(d.State),
		Price:         money.Money{Amount: d.PriceAmount, Currency: d.PriceCurrency},
		Unit:          domainbooking.UnitType(d.Unit),
		MaxUsageHours: d.MaxUsageHours,
		CreatedAt:     timestampToTime(d.CreatedAt),
		UpdatedAt:     timestampToTime(d.UpdatedAt),
		Version:       d.Version,
	}
	for _, e := range d.FreePlan {
		agg.FreePlan = append(agg.FreePlan, domainfreeplan.Entry{StartTime: e.StartTime, EndTime: e.EndTime})
	}
	return agg
}

func timestampToTime(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
