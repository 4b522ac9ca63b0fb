package search

import (
	"context"
	"encoding/json"

	"github.com/fekuna/omnipos-inventory-service/internal/model"
	"github.com/fekuna/omnipos-inventory-service/pkg/search"
	"github.com/pkg/errors"
)

const movementMapping = `{
  "mappings": {
    "properties": {
      "id":              {"type": "keyword"},
      "variant_id":      {"type": "keyword"},
      "warehouse_id":    {"type": "keyword"},
      "movement_type":   {"type": "keyword"},
      "quantity_change": {"type": "double"},
      "quantity_before": {"type": "double"},
      "quantity_after":  {"type": "double"},
      "reference_type":  {"type": "keyword"},
      "reference_id":    {"type": "keyword"},
      "notes":           {"type": "text"},
      "performed_by":    {"type": "keyword"},
      "performed_at":    {"type": "date"}
    }
  }
}`

// DocumentStore is the subset of the search client the indexer needs.
type DocumentStore interface {
	CreateIndex(ctx context.Context, index, mapping string) error
	Index(ctx context.Context, index, id string, doc interface{}) error
	Search(ctx context.Context, index string, query map[string]interface{}) (*search.SearchResult, error)
}

var _ DocumentStore = (*search.Client)(nil)

// MovementIndexer copies movement log rows into a search index for audit
// queries. The database stays the source of truth.
type MovementIndexer struct {
	store DocumentStore
	index string
}

func NewMovementIndexer(store DocumentStore, index string) *MovementIndexer {
	return &MovementIndexer{store: store, index: index}
}

func (i *MovementIndexer) EnsureIndex(ctx context.Context) error {
	return i.store.CreateIndex(ctx, i.index, movementMapping)
}

// IndexMovements uses the movement id as document id, so re-indexing is harmless.
func (i *MovementIndexer) IndexMovements(ctx context.Context, movements []model.MovementEntry) error {
	for idx := range movements {
		m := &movements[idx]
		if err := i.store.Index(ctx, i.index, m.ID, m); err != nil {
			return errors.Wrapf(err, "index movement %s", m.ID)
		}
	}
	return nil
}

type MovementQuery struct {
	VariantID   string
	WarehouseID string
	PerformedBy string
	Text        string // matched against notes
	Size        int
}

// SearchMovements runs an audit query against the index, newest first.
func (i *MovementIndexer) SearchMovements(ctx context.Context, q *MovementQuery) ([]model.MovementEntry, int, error) {
	var filters []interface{}
	for field, value := range map[string]string{
		"variant_id":   q.VariantID,
		"warehouse_id": q.WarehouseID,
		"performed_by": q.PerformedBy,
	} {
		if value != "" {
			filters = append(filters, map[string]interface{}{"term": map[string]interface{}{field: value}})
		}
	}

	boolQuery := map[string]interface{}{"filter": filters}
	if q.Text != "" {
		boolQuery["must"] = []interface{}{
			map[string]interface{}{"match": map[string]interface{}{"notes": q.Text}},
		}
	}

	size := q.Size
	if size <= 0 {
		size = 20
	}
	res, err := i.store.Search(ctx, i.index, map[string]interface{}{
		"query": map[string]interface{}{"bool": boolQuery},
		"sort":  []interface{}{map[string]interface{}{"performed_at": "desc"}},
		"size":  size,
	})
	if err != nil {
		return nil, 0, errors.Wrap(err, "search movements")
	}

	out := make([]model.MovementEntry, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		var m model.MovementEntry
		if err := json.Unmarshal(hit.Source, &m); err != nil {
			return nil, 0, errors.Wrapf(err, "decode movement %s", hit.ID)
		}
		out = append(out, m)
	}
	return out, res.Hits.Total.Value, nil
}
