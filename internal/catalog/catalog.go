package catalog

import (
	"github.com/vigyat/agrostore/internal/collection"
	"github.com/vigyat/agrostore/internal/storage"
	"go.uber.org/zap"
)

// Catalog holds one collection per entity.
type Catalog struct {
	collections []*collection.Collection
	byName      map[string]*collection.Collection

	logger *zap.Logger
}

func New(backend storage.Backend, logger *zap.Logger, opts ...collection.Option) *Catalog {
	c := &Catalog{
		collections: make([]*collection.Collection, 0, len(Schemas())),
		byName:      make(map[string]*collection.Collection, len(Schemas())),

		logger: logger,
	}

	for _, schema := range Schemas() {
		col := collection.New(schema, backend, logger, opts...)
		c.collections = append(c.collections, col)
		c.byName[schema.Name] = col
	}

	return c
}

// Collection returns the collection for an entity name.
func (c *Catalog) Collection(name string) (*collection.Collection, bool) {
	col, ok := c.byName[name]
	return col, ok
}

// All returns every collection in registration order.
func (c *Catalog) All() []*collection.Collection {
	return c.collections
}

func (c *Catalog) Products() *collection.Collection {
	return c.byName[EntityProducts]
}

func (c *Catalog) Orders() *collection.Collection {
	return c.byName[EntityOrders]
}

func (c *Catalog) StoreInfo() *collection.Collection {
	return c.byName[EntityStoreInfo]
}
