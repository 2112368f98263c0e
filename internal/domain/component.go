package domain

import (
	"fmt"
	"math"
)

type Kind uint8

const (
	KindVisitor Kind = iota + 1
	KindReceptionWorker
	KindRestaurantWorker
	KindRoom
	KindBar
	KindRawFood
	KindRawDrinks
	KindCleanser
	KindDirector
)

var kindNames = map[Kind]string{
	KindVisitor:          "visitor",
	KindReceptionWorker:  "reception_worker",
	KindRestaurantWorker: "restaurant_worker",
	KindRoom:             "room",
	KindBar:              "bar",
	KindRawFood:          "raw_food",
	KindRawDrinks:        "raw_drinks",
	KindCleanser:         "cleanser",
	KindDirector:         "director",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

func (k Kind) IsWorker() bool { return k == KindReceptionWorker || k == KindRestaurantWorker }

func (k Kind) IsSupply() bool { return k == KindRawFood || k == KindRawDrinks || k == KindCleanser }

// Prototype is the capability set shared by everything in the hotel.
// Clone reports false when the value must not be duplicated.
type Prototype interface {
	Kind() Kind
	Interact() []string
	Clone() (Prototype, bool)
}

const DefaultAmount = 100.0

// Component is a closed tagged union over the cloneable hotel entities.
// Only visitors carry a payment strategy; only restaurant workers use the picker.
type Component struct {
	kind    Kind
	payment PaymentStrategy
	amount  float64
	picker  Picker
}

type Option func(*Component)

func WithPicker(p Picker) Option { return func(c *Component) { c.picker = p } }

// WithAmount sets what a visitor pays; anything but a finite positive
// amount keeps DefaultAmount.
func WithAmount(a float64) Option {
	return func(c *Component) {
		if a > 0 && !math.IsInf(a, 0) {
			c.amount = a
		}
	}
}

// NewComponent builds a component of any cloneable kind.
func NewComponent(kind Kind, opts ...Option) (*Component, error) {
	if _, ok := behaviors[kind]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	return build(kind, opts), nil
}

func NewVisitor(opts ...Option) *Component          { return build(KindVisitor, opts) }
func NewReceptionWorker(opts ...Option) *Component  { return build(KindReceptionWorker, opts) }
func NewRestaurantWorker(opts ...Option) *Component { return build(KindRestaurantWorker, opts) }
func NewRoom(opts ...Option) *Component             { return build(KindRoom, opts) }
func NewBar(opts ...Option) *Component              { return build(KindBar, opts) }
func NewRawFood(opts ...Option) *Component          { return build(KindRawFood, opts) }
func NewRawDrinks(opts ...Option) *Component        { return build(KindRawDrinks, opts) }
func NewCleanser(opts ...Option) *Component         { return build(KindCleanser, opts) }

func build(kind Kind, opts []Option) *Component {
	c := &Component{kind: kind, amount: DefaultAmount}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Component) Kind() Kind { return c.kind }

func (c *Component) Amount() float64 { return c.amount }

func (c *Component) PaymentStrategy() PaymentStrategy { return c.payment }

// SetPaymentStrategy attaches p, replacing any previous strategy.
func (c *Component) SetPaymentStrategy(p PaymentStrategy) error {
	if c.kind != KindVisitor {
		return fmt.Errorf("%w: %s", ErrPaymentUnsupported, c.kind)
	}
	c.payment = p
	return nil
}

// Interact returns nil for a component not built by a constructor.
func (c *Component) Interact() []string {
	b, ok := behaviors[c.kind]
	if !ok {
		return nil
	}
	return b.interact(c)
}

// Copy returns an independent component of the same kind.
func (c *Component) Copy() *Component {
	b, ok := behaviors[c.kind]
	if !ok {
		return &Component{kind: c.kind, amount: c.amount}
	}
	return b.clone(c)
}

func (c *Component) Clone() (Prototype, bool) { return c.Copy(), true }

type behavior struct {
	interact func(*Component) []string
	clone    func(*Component) *Component
}

var behaviors = map[Kind]behavior{
	KindVisitor:          {interact: visitorInteract, clone: cloneWithPayment},
	KindReceptionWorker:  {interact: say("Reception worker is assisting a visitor.", "Visitor gets a room."), clone: shallowCopy},
	KindRestaurantWorker: {interact: restaurantInteract, clone: shallowCopy},
	KindRoom:             {interact: say("Room is being used."), clone: fresh},
	KindBar:              {interact: say("Bar is serving drinks."), clone: fresh},
	KindRawFood:          {interact: say("Raw food has arrived at the hotel."), clone: fresh},
	KindRawDrinks:        {interact: say("Raw drinks have arrived at the hotel."), clone: fresh},
	KindCleanser:         {interact: say("Cleanser has arrived at the hotel."), clone: fresh},
}

func say(lines ...string) func(*Component) []string {
	return func(*Component) []string {
		out := make([]string, len(lines))
		copy(out, lines)
		return out
	}
}

func visitorInteract(c *Component) []string {
	if c.payment == nil {
		return []string{"Visitor is interacting.", "No payment strategy set for the visitor."}
	}
	return []string{"Visitor is interacting.", c.payment.Pay(c.amount)}
}

func restaurantInteract(c *Component) []string {
	return []string{
		"Restaurant worker is taking an order from a visitor.",
		"Visitor is having " + pickDish(c.picker) + " in the restaurant.",
	}
}

func shallowCopy(c *Component) *Component {
	cp := *c
	return &cp
}

// cloneWithPayment keeps the strategy reference; strategies are immutable.
func cloneWithPayment(c *Component) *Component {
	return &Component{kind: c.kind, payment: c.payment, amount: c.amount}
}

func fresh(c *Component) *Component {
	return &Component{kind: c.kind, amount: c.amount}
}
