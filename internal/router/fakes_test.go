package router

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"homenest-backend/internal/models"
	"homenest-backend/internal/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
)

var errStoreDown = errors.New("server selection error: context deadline exceeded")

// memProperties mimics the Properties collection closely enough for the
// HTTP contract: ObjectID parsing, $set merge and single-key sort.
type memProperties struct {
	mu    sync.Mutex
	docs  []models.Property
	fail  bool
	limit []int64
}

func (m *memProperties) List(ctx context.Context, s repository.Sort, limit int64) ([]models.Property, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return nil, errStoreDown
	}
	m.limit = append(m.limit, limit)

	out := append([]models.Property{}, m.docs...)
	sort.SliceStable(out, func(i, j int) bool {
		c := compareProperty(out[i], out[j], s.Field)
		if s.Order == repository.Descending {
			return c > 0
		}
		return c < 0
	})
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func compareProperty(a, b models.Property, field string) int {
	switch field {
	case "price":
		return compareFloat(a.Price, b.Price)
	case "title":
		return strings.Compare(a.Title, b.Title)
	default:
		return compareTime(a.CreatedAt, b.CreatedAt)
	}
}

func compareFloat(a, b *float64) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	case *a < *b:
		return -1
	case *a > *b:
		return 1
	}
	return 0
}

func compareTime(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return a.Compare(*b)
}

func (m *memProperties) FindByID(ctx context.Context, id string) (*models.Property, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	for _, p := range m.docs {
		if p.ID == oid {
			p := p
			return &p, nil
		}
	}
	return nil, nil
}

func (m *memProperties) Create(ctx context.Context, p *models.Property) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errStoreDown
	}
	p.ID = bson.NewObjectID()
	m.docs = append(m.docs, *p)
	return nil
}

func (m *memProperties) Update(ctx context.Context, id string, fields bson.M) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return false, err
	}
	for i, p := range m.docs {
		if p.ID != oid {
			continue
		}
		merged, err := mergeFields(p, fields)
		if err != nil {
			return false, err
		}
		merged.ID = oid
		m.docs[i] = merged
		return true, nil
	}
	return false, nil
}

func mergeFields(p models.Property, fields bson.M) (models.Property, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return p, err
	}
	doc := map[string]any{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return p, err
	}
	for k, v := range fields {
		doc[k] = v
	}
	raw, err = json.Marshal(doc)
	if err != nil {
		return p, err
	}
	var out models.Property
	err = json.Unmarshal(raw, &out)
	return out, err
}

func (m *memProperties) Delete(ctx context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return false, err
	}
	for i, p := range m.docs {
		if p.ID == oid {
			m.docs = append(m.docs[:i], m.docs[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (m *memProperties) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.docs)
}

type memReviews struct {
	mu   sync.Mutex
	docs []models.Review
	fail bool
}

func (m *memReviews) List(ctx context.Context, f repository.ReviewFilter) ([]models.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return nil, errStoreDown
	}
	out := []models.Review{}
	for _, r := range m.docs {
		if f.PropertyID != "" && r.PropertyID != f.PropertyID {
			continue
		}
		if f.UserEmail != "" && r.UserEmail != f.UserEmail {
			continue
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memReviews) Create(ctx context.Context, r *models.Review) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errStoreDown
	}
	r.ID = bson.NewObjectID()
	m.docs = append(m.docs, *r)
	return nil
}

func (m *memReviews) Delete(ctx context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return false, err
	}
	for i, r := range m.docs {
		if r.ID == oid {
			m.docs = append(m.docs[:i], m.docs[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type memSliders struct {
	docs []models.Slider
	fail bool
}

func (m *memSliders) List(ctx context.Context) ([]models.Slider, error) {
	if m.fail {
		return nil, errStoreDown
	}
	return append([]models.Slider{}, m.docs...), nil
}

func (m *memSliders) Count(ctx context.Context) (int64, error) {
	if m.fail {
		return 0, errStoreDown
	}
	return int64(len(m.docs)), nil
}

type pinger struct{ err error }

func (p pinger) Ping(ctx context.Context) error { return p.err }
