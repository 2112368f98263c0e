package app

import (
	"fmt"

	"hotel_simulation/internal/domain"
)

// Factory creates components of one fixed kind.
type Factory struct {
	kind  domain.Kind
	newFn func(...domain.Option) *domain.Component
	opts  []domain.Option
}

func (f Factory) Kind() domain.Kind { return f.kind }

func (f Factory) CreateComponent() *domain.Component { return f.newFn(f.opts...) }

func NewVisitorFactory(opts ...domain.Option) Factory {
	return Factory{kind: domain.KindVisitor, newFn: domain.NewVisitor, opts: opts}
}

func NewReceptionWorkerFactory(opts ...domain.Option) Factory {
	return Factory{kind: domain.KindReceptionWorker, newFn: domain.NewReceptionWorker, opts: opts}
}

func NewRestaurantWorkerFactory(opts ...domain.Option) Factory {
	return Factory{kind: domain.KindRestaurantWorker, newFn: domain.NewRestaurantWorker, opts: opts}
}

func NewRoomFactory(opts ...domain.Option) Factory {
	return Factory{kind: domain.KindRoom, newFn: domain.NewRoom, opts: opts}
}

func NewBarFactory(opts ...domain.Option) Factory {
	return Factory{kind: domain.KindBar, newFn: domain.NewBar, opts: opts}
}

func NewRawFoodFactory(opts ...domain.Option) Factory {
	return Factory{kind: domain.KindRawFood, newFn: domain.NewRawFood, opts: opts}
}

func NewRawDrinksFactory(opts ...domain.Option) Factory {
	return Factory{kind: domain.KindRawDrinks, newFn: domain.NewRawDrinks, opts: opts}
}

func NewCleanserFactory(opts ...domain.Option) Factory {
	return Factory{kind: domain.KindCleanser, newFn: domain.NewCleanser, opts: opts}
}

// CatalogOptions tunes the components the catalog hands out.
type CatalogOptions struct {
	Picker domain.Picker // restaurant menu choice; nil uses the global source
	Amount float64       // what a visitor pays per interaction; <= 0 means domain.DefaultAmount
}

// Catalog holds one factory per component kind, in creation order.
type Catalog struct {
	factories map[domain.Kind]domain.ComponentFactory
	order     []domain.Kind
}

func NewCatalog(o CatalogOptions) *Catalog {
	c := &Catalog{factories: make(map[domain.Kind]domain.ComponentFactory, 8)}
	c.Register(NewVisitorFactory(domain.WithAmount(o.Amount)))
	c.Register(NewReceptionWorkerFactory())
	c.Register(NewRoomFactory())
	c.Register(NewBarFactory())
	c.Register(NewRestaurantWorkerFactory(domain.WithPicker(o.Picker)))
	c.Register(NewRawFoodFactory())
	c.Register(NewRawDrinksFactory())
	c.Register(NewCleanserFactory())
	return c
}

// Register adds f, replacing any factory already bound to its kind.
func (c *Catalog) Register(f domain.ComponentFactory) {
	if c.factories == nil {
		c.factories = make(map[domain.Kind]domain.ComponentFactory)
	}
	if _, ok := c.factories[f.Kind()]; !ok {
		c.order = append(c.order, f.Kind())
	}
	c.factories[f.Kind()] = f
}

func (c *Catalog) Factory(k domain.Kind) (domain.ComponentFactory, error) {
	f, ok := c.factories[k]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownKind, k)
	}
	return f, nil
}

func (c *Catalog) Create(k domain.Kind) (*domain.Component, error) {
	f, err := c.Factory(k)
	if err != nil {
		return nil, err
	}
	return f.CreateComponent(), nil
}

func (c *Catalog) Kinds() []domain.Kind {
	out := make([]domain.Kind, len(c.order))
	copy(out, c.order)
	return out
}
