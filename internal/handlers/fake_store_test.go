package handlers_test

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/communityhub/events-service/internal/handlers"
	"github.com/communityhub/events-service/internal/store"
)

// fakeStore is an in-memory handlers.DocumentStore. Errors can be injected
// per operation to exercise the failure paths.
type fakeStore struct {
	containers map[string]map[string]json.RawMessage
	createErr  error
	queryErr   error
	deleteErr  error
	creates    int
}

func newFakeStore() *fakeStore {
	return &fakeStore{containers: map[string]map[string]json.RawMessage{}}
}

func (f *fakeStore) CreateItem(_ context.Context, container, id, partitionKey string, doc any) error {
	f.creates++
	if f.createErr != nil {
		return f.createErr
	}
	body, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	if f.containers[container] == nil {
		f.containers[container] = map[string]json.RawMessage{}
	}
	f.containers[container][id] = body
	return nil
}

func (f *fakeStore) QueryByField(ctx context.Context, container, field, value string) ([]json.RawMessage, error) {
	return f.query(container, field, value, value)
}

func (f *fakeStore) QueryByFieldRange(ctx context.Context, container, field, lo, hi string) ([]json.RawMessage, error) {
	return f.query(container, field, lo, hi)
}

func (f *fakeStore) query(container, field, lo, hi string) ([]json.RawMessage, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	docs := make([]json.RawMessage, 0)
	for _, raw := range f.containers[container] {
		var m map[string]any
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, err
		}
		v, _ := m[field].(string)
		if v >= lo && v <= hi {
			docs = append(docs, raw)
		}
	}
	sort.Slice(docs, func(i, j int) bool { return string(docs[i]) < string(docs[j]) })
	return docs, nil
}

func (f *fakeStore) DeleteItem(_ context.Context, container, id, partitionKey string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.containers[container][id]; !ok {
		return store.ErrNotFound
	}
	delete(f.containers[container], id)
	return nil
}

// docs returns every stored document in a container.
func (f *fakeStore) docs(container string) []json.RawMessage {
	out := make([]json.RawMessage, 0, len(f.containers[container]))
	for _, raw := range f.containers[container] {
		out = append(out, raw)
	}
	return out
}

func newEventsRouter(st handlers.DocumentStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers.RegisterEventRoutes(r, st)
	return r
}

func newFeedbackRouter(st handlers.DocumentStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers.RegisterFeedbackRoutes(r, st)
	return r
}
