package database

import (
	"context"
	"fmt"

	"github.com/sakethnarayana/glow-haven/config"
	"github.com/sakethnarayana/glow-haven/internal/common"
	"github.com/sakethnarayana/glow-haven/internal/logger"
	"github.com/sakethnarayana/glow-haven/internal/schema"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore thực hiện các thao tác catalog (collection, index) trên một *mongo.Database.
// Mọi lỗi của driver đều được chuyển qua common.ConvertMongoError.
type MongoStore struct {
	db   *mongo.Database
	mode string
}

// NewMongoStore tạo MongoStore; mode là config.CreateModeExplicit hoặc config.CreateModeProbe
func NewMongoStore(db *mongo.Database, mode string) *MongoStore {
	if mode != config.CreateModeProbe {
		mode = config.CreateModeExplicit
	}
	return &MongoStore{db: db, mode: mode}
}

// Name trả về tên database
func (s *MongoStore) Name() string {
	return s.db.Name()
}

// ListCollectionNames trả về tên các collection hiện có
func (s *MongoStore) ListCollectionNames(ctx context.Context) ([]string, error) {
	names, err := s.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return names, nil
}

// CreateCollection tạo collection theo chế độ đã cấu hình
func (s *MongoStore) CreateCollection(ctx context.Context, desc schema.CollectionDescriptor) error {
	if s.mode == config.CreateModeProbe {
		return s.createByProbe(ctx, desc)
	}

	err := s.db.CreateCollection(ctx, desc.Name)
	if err != nil && common.IsNamespaceExists(err) {
		// Collection xuất hiện giữa lúc liệt kê và lúc tạo: coi như đã có
		logger.GetAppLogger().WithField("collection", desc.Name).Debug("Collection created concurrently, ignoring NamespaceExists")
		return nil
	}
	return common.ConvertMongoError(err)
}

// createByProbe chèn document mẫu để MongoDB tạo collection, sau đó xóa ngay theo _id vừa sinh
func (s *MongoStore) createByProbe(ctx context.Context, desc schema.CollectionDescriptor) error {
	coll := s.db.Collection(desc.Name)

	res, err := coll.InsertOne(ctx, desc.Template())
	if err != nil {
		return common.ConvertMongoError(err)
	}

	del, err := coll.DeleteOne(ctx, bson.M{"_id": res.InsertedID})
	if err != nil {
		return common.ConvertMongoError(err)
	}
	if del.DeletedCount != 1 {
		return common.Wrap(common.ErrDatabase,
			fmt.Errorf("probe document %v was not removed from %s", res.InsertedID, desc.Name), "")
	}

	logger.GetAppLogger().WithFields(logrus.Fields{
		"collection": desc.Name,
		"probe_id":   res.InsertedID,
	}).Debug("Probe document inserted and removed")
	return nil
}

// indexInfo là document trả về bởi listIndexes
type indexInfo struct {
	Name   string `bson:"name"`
	Key    bson.D `bson:"key"`
	Unique bool   `bson:"unique"`

	Sparse                  bool     `bson:"sparse"`
	Hidden                  bool     `bson:"hidden"`
	ExpireAfterSeconds      *int64   `bson:"expireAfterSeconds,omitempty"`
	PartialFilterExpression bson.Raw `bson:"partialFilterExpression,omitempty"`
	Collation               bson.Raw `bson:"collation,omitempty"`
}

// ListIndexes trả về các index hiện có trên collection
func (s *MongoStore) ListIndexes(ctx context.Context, collection string) ([]schema.IndexSpec, error) {
	cursor, err := s.db.Collection(collection).Indexes().List(ctx)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var specs []schema.IndexSpec
	for cursor.Next(ctx) {
		var info indexInfo
		if err := cursor.Decode(&info); err != nil {
			return nil, common.Wrap(common.ErrDatabase, err, "cannot decode index info")
		}
		specs = append(specs, toIndexSpec(info))
	}
	if err := cursor.Err(); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return specs, nil
}

// toIndexSpec chuẩn hóa key spec; chiều index có thể là int32, int64 hoặc double
// tùy client đã tạo index. Index đặc biệt (text, 2dsphere, hashed) giữ Direction = 0.
// Các option sparse, hidden, TTL, partial filter, collation được giữ để so khớp đầy đủ.
func toIndexSpec(info indexInfo) schema.IndexSpec {
	spec := schema.IndexSpec{
		Name:                    info.Name,
		Unique:                  info.Unique,
		Sparse:                  info.Sparse,
		Hidden:                  info.Hidden,
		ExpireAfterSeconds:      info.ExpireAfterSeconds,
		PartialFilterExpression: info.PartialFilterExpression,
		Collation:               info.Collation,
	}
	for _, e := range info.Key {
		key := schema.IndexKey{Field: e.Key}
		switch v := e.Value.(type) {
		case int32:
			key.Direction = int(v)
		case int64:
			key.Direction = int(v)
		case float64:
			key.Direction = int(v)
		case int:
			key.Direction = v
		}
		spec.Keys = append(spec.Keys, key)
	}
	return spec
}

// CreateIndex tạo index với tên tường minh và cờ unique; trả về tên index
func (s *MongoStore) CreateIndex(ctx context.Context, idx schema.IndexDescriptor) (string, error) {
	opts := options.Index().SetName(idx.Name())
	if idx.Unique {
		opts = opts.SetUnique(true)
	}

	name, err := s.db.Collection(idx.Collection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    idx.KeysDocument(),
		Options: opts,
	})
	if err != nil {
		return "", common.ConvertMongoError(err)
	}
	return name, nil
}
