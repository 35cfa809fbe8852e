package provisioner

import (
	"context"
	"sort"

	"github.com/sakethnarayana/glow-haven/internal/common"
	"github.com/sakethnarayana/glow-haven/internal/schema"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// fakeCollection mô phỏng một collection: document đếm theo _id và danh sách index
type fakeCollection struct {
	docs    map[primitive.ObjectID]bson.Raw
	indexes []schema.IndexSpec
}

// fakeStore mô phỏng hành vi catalog của MongoDB trong bộ nhớ:
// collection luôn có index _id_, chèn document vào collection chưa có sẽ tạo collection,
// tạo index trùng tên/key nhưng khác cấu hình trả lỗi IndexOptionsConflict.
type fakeStore struct {
	name        string
	probe       bool
	collections map[string]*fakeCollection

	// Lỗi cài sẵn theo thao tác
	listErr      error
	createErrFor map[string]error
	indexErrFor  map[string]error

	createCalls int
	indexCalls  int
	probeIDs    []primitive.ObjectID
}

func newFakeStore(probe bool) *fakeStore {
	return &fakeStore{
		name:         "beauty_db",
		probe:        probe,
		collections:  map[string]*fakeCollection{},
		createErrFor: map[string]error{},
		indexErrFor:  map[string]error{},
	}
}

func (s *fakeStore) materialize(name string) *fakeCollection {
	c, ok := s.collections[name]
	if !ok {
		c = &fakeCollection{
			docs:    map[primitive.ObjectID]bson.Raw{},
			indexes: []schema.IndexSpec{{Name: "_id_", Keys: []schema.IndexKey{schema.Asc("_id")}}},
		}
		s.collections[name] = c
	}
	return c
}

// seed tạo sẵn collection với n document và các index cho trước
func (s *fakeStore) seed(name string, n int, indexes ...schema.IndexSpec) {
	c := s.materialize(name)
	for i := 0; i < n; i++ {
		raw, _ := bson.Marshal(bson.M{"seed": i})
		c.docs[primitive.NewObjectID()] = raw
	}
	c.indexes = append(c.indexes, indexes...)
}

func (s *fakeStore) count(name string) int {
	return len(s.collections[name].docs)
}

func (s *fakeStore) Name() string { return s.name }

func (s *fakeStore) ListCollectionNames(ctx context.Context) ([]string, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	names := make([]string, 0, len(s.collections))
	for n := range s.collections {
		names = append(names, n)
	}
	sort.Strings(names)
	return names, nil
}

func (s *fakeStore) CreateCollection(ctx context.Context, desc schema.CollectionDescriptor) error {
	s.createCalls++
	if err := s.createErrFor[desc.Name]; err != nil {
		return err
	}

	if !s.probe {
		if _, ok := s.collections[desc.Name]; ok {
			return nil
		}
		s.materialize(desc.Name)
		return nil
	}

	// probe: chèn template rồi xóa theo _id vừa sinh
	raw, err := bson.Marshal(desc.Template())
	if err != nil {
		return err
	}
	c := s.materialize(desc.Name)
	id := primitive.NewObjectID()
	c.docs[id] = raw
	s.probeIDs = append(s.probeIDs, id)
	delete(c.docs, id)
	return nil
}

func (s *fakeStore) ListIndexes(ctx context.Context, collection string) ([]schema.IndexSpec, error) {
	c, ok := s.collections[collection]
	if !ok {
		return nil, nil
	}
	out := make([]schema.IndexSpec, len(c.indexes))
	copy(out, c.indexes)
	return out, nil
}

func (s *fakeStore) CreateIndex(ctx context.Context, idx schema.IndexDescriptor) (string, error) {
	s.indexCalls++
	if err := s.indexErrFor[idx.Collection+"."+idx.Name()]; err != nil {
		return "", err
	}

	want := idx.Spec()
	c := s.materialize(idx.Collection)
	for _, have := range c.indexes {
		if have.Name != want.Name && !have.SameKeys(want) {
			continue
		}
		if have.Name == want.Name && have.Matches(want) {
			return want.Name, nil
		}
		return "", common.ConvertMongoError(mongo.CommandError{
			Code:    common.MongoCodeIndexOptionsConflict,
			Name:    "IndexOptionsConflict",
			Message: "An existing index has the same name or key pattern as the requested index",
		})
	}
	c.indexes = append(c.indexes, want)
	return want.Name, nil
}

// snapshot trả về trạng thái catalog để so sánh giữa các lần chạy
func (s *fakeStore) snapshot() map[string][]string {
	out := map[string][]string{}
	for name, c := range s.collections {
		var idx []string
		for _, spec := range c.indexes {
			idx = append(idx, spec.Name+" "+spec.String())
		}
		sort.Strings(idx)
		out[name] = idx
	}
	return out
}

var _ Store = (*fakeStore)(nil)
