package collection

import (
	"cmp"
	"context"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/vigyat/agrostore/internal/storage"
	"go.uber.org/zap"
)

// AssetReleaser frees a hosted asset referenced from a record.
type AssetReleaser interface {
	Release(ctx context.Context, reference string) error
}

type Option func(*Collection)

// WithClock replaces the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Collection) { c.now = now }
}

// WithIDGenerator replaces the record id generator.
func WithIDGenerator(newID func() string) Option {
	return func(c *Collection) { c.newID = newID }
}

// WithAssetReleaser enables releasing images referenced by the schema's
// image field on delete.
func WithAssetReleaser(releaser AssetReleaser) Option {
	return func(c *Collection) { c.releaser = releaser }
}

func WithMetrics(metrics *Metrics) Option {
	return func(c *Collection) { c.metrics = metrics }
}

// Collection is the CRUD adapter for one entity type. It keeps an index set
// of live ids under Schema.Key and one hash per record under Key:<id>.
//
// Index and record writes are separate backend calls. A failure between
// them can leave an index entry without a record, which List tolerates, or
// a record without an index entry, which is invisible to List.
type Collection struct {
	schema  Schema
	codec   codec
	backend storage.Backend

	now      func() time.Time
	newID    func() string
	releaser AssetReleaser
	metrics  *Metrics

	logger *zap.Logger
}

func New(schema Schema, backend storage.Backend, logger *zap.Logger, opts ...Option) *Collection {
	logger = logger.With(zap.String("entity", schema.Name))

	c := &Collection{
		schema:  schema,
		codec:   codec{schema: schema, logger: logger},
		backend: backend,

		now:      time.Now,
		newID:    uuid.NewString,
		releaser: nil,
		metrics:  nil,

		logger: logger,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Collection) Schema() Schema {
	return c.schema
}

// List returns every record, newest first. Records sharing a timestamp are
// ordered by id. A missing or non-set index yields an empty slice.
func (c *Collection) List(ctx context.Context) (records []Record, err error) {
	defer c.observe(opList, time.Now(), &err)

	keyType, err := c.backend.Type(ctx, c.schema.Key)
	if err != nil {
		return nil, fmt.Errorf("failed to check index: %w", err)
	}
	if keyType != storage.KeyTypeSet {
		c.logger.Debug("index is empty", zap.String("type", string(keyType)))
		return []Record{}, nil
	}

	ids, err := c.backend.SetMembers(ctx, c.schema.Key)
	if err != nil {
		return nil, fmt.Errorf("failed to read index: %w", err)
	}

	records, err = c.fetch(ctx, ids)
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(records, func(a, b Record) int {
		return cmp.Or(
			cmp.Compare(b.CreatedAt(), a.CreatedAt()),
			cmp.Compare(a.ID(), b.ID()),
		)
	})

	c.logger.Debug("listed records", zap.Int("indexed", len(ids)), zap.Int("count", len(records)))
	return records, nil
}

// IsEmpty reports whether no record has ever been indexed or the index has
// been emptied. It does not read any record.
func (c *Collection) IsEmpty(ctx context.Context) (bool, error) {
	exists, err := c.backend.Exists(ctx, c.schema.Key)
	if err != nil {
		return false, fmt.Errorf("failed to check index: %w", err)
	}

	return !exists, nil
}

// Get returns the record with the given id or ErrNotFound.
func (c *Collection) Get(ctx context.Context, id string) (rec Record, err error) {
	defer c.observe(opGet, time.Now(), &err)

	return c.get(ctx, id)
}

// Create validates fields, stamps id and timestamps, writes the record and
// indexes it. The returned record is what a subsequent Get returns.
func (c *Collection) Create(ctx context.Context, fields map[string]any) (rec Record, err error) {
	defer c.observe(opCreate, time.Now(), &err)

	rec, err = c.codec.normalize(fields)
	if err != nil {
		return nil, err
	}
	c.applyDefaults(rec)

	if valErr := c.codec.validate(rec); valErr != nil {
		return nil, valErr
	}

	id := c.newID()
	now := formatTime(c.now())
	rec[FieldID] = id
	rec[FieldCreatedAt] = now
	rec[FieldUpdatedAt] = now

	stored, err := c.write(ctx, rec)
	if err != nil {
		return nil, err
	}

	if repErr := c.repairIndex(ctx); repErr != nil {
		return nil, repErr
	}
	if addErr := c.backend.SetAdd(ctx, c.schema.Key, id); addErr != nil {
		return nil, fmt.Errorf("failed to index record: %w", addErr)
	}

	c.logger.Info("record created", zap.String("id", id))
	return stored, nil
}

// Update merges partial over the existing record. Identity and timestamp
// fields in partial are ignored; updatedAt never moves backwards.
func (c *Collection) Update(ctx context.Context, id string, partial map[string]any) (rec Record, err error) {
	defer c.observe(opUpdate, time.Now(), &err)

	current, err := c.get(ctx, id)
	if err != nil {
		return nil, err
	}

	changes, err := c.codec.normalize(partial)
	if err != nil {
		return nil, err
	}

	merged := maps.Clone(current)
	maps.Copy(merged, changes)
	merged[FieldUpdatedAt] = max(formatTime(c.now()), current.UpdatedAt())

	if valErr := c.codec.validate(merged); valErr != nil {
		return nil, valErr
	}

	stored, err := c.write(ctx, merged)
	if err != nil {
		return nil, err
	}

	c.logger.Info("record updated", zap.String("id", id), zap.Strings("fields", slices.Sorted(maps.Keys(changes))))
	return stored, nil
}

// Upsert merges fields into the record with a caller chosen id, creating it
// when absent. The id is indexed like any created record.
func (c *Collection) Upsert(ctx context.Context, id string, fields map[string]any) (rec Record, err error) {
	defer c.observe(opUpsert, time.Now(), &err)

	changes, err := c.codec.normalize(fields)
	if err != nil {
		return nil, err
	}

	current, err := c.get(ctx, id)
	switch {
	case err == nil:
	case IsNotFound(err):
		current = Record{}
		c.applyDefaults(current)
	default:
		return nil, err
	}

	now := formatTime(c.now())
	merged := maps.Clone(current)
	maps.Copy(merged, changes)
	merged[FieldID] = id
	if merged.CreatedAt() == "" {
		merged[FieldCreatedAt] = now
	}
	merged[FieldUpdatedAt] = max(now, current.UpdatedAt())

	if valErr := c.codec.validate(merged); valErr != nil {
		return nil, valErr
	}

	stored, err := c.write(ctx, merged)
	if err != nil {
		return nil, err
	}

	if repErr := c.repairIndex(ctx); repErr != nil {
		return nil, repErr
	}
	if addErr := c.backend.SetAdd(ctx, c.schema.Key, id); addErr != nil {
		return nil, fmt.Errorf("failed to index record: %w", addErr)
	}

	c.logger.Info("record upserted", zap.String("id", id))
	return stored, nil
}

// Delete removes the record and its index entry. Deleting an absent id is
// not an error. A hosted image referenced by the record is released on a
// best-effort basis.
func (c *Collection) Delete(ctx context.Context, id string) (err error) {
	defer c.observe(opDelete, time.Now(), &err)

	key := c.schema.RecordKey(id)

	var image string
	if c.schema.ImageField != "" && c.releaser != nil {
		fields, getErr := c.backend.HashGetAll(ctx, key)
		if getErr != nil {
			return fmt.Errorf("failed to read record: %w", getErr)
		}
		image = fields[c.schema.ImageField]
	}

	if delErr := c.backend.Delete(ctx, key); delErr != nil {
		return fmt.Errorf("failed to delete record: %w", delErr)
	}
	if remErr := c.backend.SetRemove(ctx, c.schema.Key, id); remErr != nil {
		return fmt.Errorf("failed to unindex record: %w", remErr)
	}

	c.release(ctx, id, image)

	c.logger.Info("record deleted", zap.String("id", id))
	return nil
}

// DeleteAll removes every indexed record together with the index in one
// multi-key delete. Hosted images are released afterwards.
func (c *Collection) DeleteAll(ctx context.Context) (err error) {
	defer c.observe(opDeleteAll, time.Now(), &err)

	keyType, err := c.backend.Type(ctx, c.schema.Key)
	if err != nil {
		return fmt.Errorf("failed to check index: %w", err)
	}
	if keyType == storage.KeyTypeNone {
		return nil
	}

	var ids []string
	if keyType == storage.KeyTypeSet {
		ids, err = c.backend.SetMembers(ctx, c.schema.Key)
		if err != nil {
			return fmt.Errorf("failed to read index: %w", err)
		}
	}

	keys := make([]string, 0, len(ids)+1)
	for _, id := range ids {
		keys = append(keys, c.schema.RecordKey(id))
	}

	var images []string
	if c.schema.ImageField != "" && c.releaser != nil && len(keys) > 0 {
		hashes, getErr := c.backend.HashGetAllBatch(ctx, keys)
		if getErr != nil {
			return fmt.Errorf("failed to read records: %w", getErr)
		}
		for _, fields := range hashes {
			if ref := fields[c.schema.ImageField]; ref != "" {
				images = append(images, ref)
			}
		}
	}

	if delErr := c.backend.Delete(ctx, append(keys, c.schema.Key)...); delErr != nil {
		return fmt.Errorf("failed to delete records: %w", delErr)
	}

	for _, ref := range images {
		c.release(ctx, "", ref)
	}

	c.logger.Info("all records deleted", zap.Int("count", len(ids)))
	return nil
}

func (c *Collection) get(ctx context.Context, id string) (Record, error) {
	key := c.schema.RecordKey(id)

	fields, err := c.backend.HashGetAll(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to read record: %w", err)
	}

	rec := c.codec.decode(key, fields)
	if rec == nil {
		return nil, fmt.Errorf("%w: %s %s", ErrNotFound, c.schema.Name, id)
	}

	return rec, nil
}

func (c *Collection) fetch(ctx context.Context, ids []string) ([]Record, error) {
	if len(ids) == 0 {
		return []Record{}, nil
	}

	// deterministic key order keeps tie-breaking independent of set order
	ids = slices.Sorted(slices.Values(ids))
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = c.schema.RecordKey(id)
	}

	hashes, err := c.backend.HashGetAllBatch(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}

	records := make([]Record, 0, len(hashes))
	for i, fields := range hashes {
		rec := c.codec.decode(keys[i], fields)
		if rec == nil {
			c.logger.Debug("skipping indexed id without record", zap.String("id", ids[i]))
			continue
		}
		records = append(records, rec)
	}

	return records, nil
}

// write persists the full record and returns it as it will be read back.
func (c *Collection) write(ctx context.Context, rec Record) (Record, error) {
	key := c.schema.RecordKey(rec.ID())

	fields, err := c.codec.encode(rec)
	if err != nil {
		return nil, err
	}

	if setErr := c.backend.HashSet(ctx, key, fields); setErr != nil {
		return nil, fmt.Errorf("failed to write record: %w", setErr)
	}

	return c.codec.decode(key, fields), nil
}

// repairIndex drops an index key that holds something other than a set, so
// the following add does not fail with a type error.
func (c *Collection) repairIndex(ctx context.Context) error {
	keyType, err := c.backend.Type(ctx, c.schema.Key)
	if err != nil {
		return fmt.Errorf("failed to check index: %w", err)
	}
	if keyType == storage.KeyTypeNone || keyType == storage.KeyTypeSet {
		return nil
	}

	c.logger.Warn("replacing index key of unexpected type", zap.String("type", string(keyType)))
	if delErr := c.backend.Delete(ctx, c.schema.Key); delErr != nil {
		return fmt.Errorf("failed to repair index: %w", delErr)
	}

	return nil
}

func (c *Collection) applyDefaults(rec Record) {
	for _, field := range c.schema.Fields {
		if field.Default == nil {
			continue
		}
		if _, ok := rec[field.Name]; !ok {
			rec[field.Name] = field.Default
		}
	}
}

func (c *Collection) release(ctx context.Context, id, reference string) {
	if reference == "" || c.releaser == nil {
		return
	}

	if err := c.releaser.Release(ctx, reference); err != nil {
		c.logger.Warn(
			"failed to release asset",
			zap.String("id", id),
			zap.String("reference", reference),
			zap.Error(err),
		)
	}
}

func (c *Collection) observe(operation string, started time.Time, err *error) {
	if c.metrics == nil {
		return
	}
	c.metrics.observe(c.schema.Name, operation, time.Since(started), *err)
}
