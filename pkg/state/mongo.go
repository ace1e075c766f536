package state

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/seatwise/seatwise/pkg/errors"
)

const (
	mongoDatabase   = "seatwise"
	mongoCollection = "snapshots"
)

// MongoStore persists snapshots in a MongoDB collection, one document
// per snapshot. Latest is resolved by sorting on save time rather than
// a marker document.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to MongoDB using a mongodb:// URI.
func NewMongoStore(ctx context.Context, uri string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "connect to mongodb")
	}
	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(context.Background())
		return nil, errors.Wrap(errors.ErrCodeStore, err, "ping mongodb")
	}
	return &MongoStore{
		client: client,
		coll:   client.Database(mongoDatabase).Collection(mongoCollection),
	}, nil
}

func (s *MongoStore) Save(ctx context.Context, snap *Snapshot) error {
	opts := options.Replace().SetUpsert(true)
	if _, err := s.coll.ReplaceOne(ctx, bson.M{"id": snap.ID}, snap, opts); err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "save snapshot")
	}
	return nil
}

func (s *MongoStore) Latest(ctx context.Context) (*Snapshot, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "saved_at", Value: -1}})
	return s.findOne(ctx, bson.M{}, opts)
}

func (s *MongoStore) Get(ctx context.Context, id string) (*Snapshot, error) {
	return s.findOne(ctx, bson.M{"id": id})
}

func (s *MongoStore) findOne(ctx context.Context, filter bson.M, opts ...*options.FindOneOptions) (*Snapshot, error) {
	var snap Snapshot
	err := s.coll.FindOne(ctx, filter, opts...).Decode(&snap)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "read snapshot")
	}
	return &snap, nil
}

func (s *MongoStore) List(ctx context.Context) ([]*Snapshot, error) {
	opts := options.Find().SetSort(bson.D{{Key: "saved_at", Value: -1}})
	cur, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "list snapshots")
	}
	defer cur.Close(ctx)

	var out []*Snapshot
	if err := cur.All(ctx, &out); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "decode snapshots")
	}
	return out, nil
}

func (s *MongoStore) Delete(ctx context.Context, id string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"id": id}); err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "delete snapshot")
	}
	return nil
}

func (s *MongoStore) Close() error {
	return s.client.Disconnect(context.Background())
}

var _ Store = (*MongoStore)(nil)
