package app

import (
	"errors"

	"github.com/rs/zerolog/log"

	"hotel_simulation/internal/domain"
)

// Facade runs a hotel day from a single entry point.
type Facade struct {
	director *domain.Director

	visitorFactory          domain.ComponentFactory
	receptionWorkerFactory  domain.ComponentFactory
	roomFactory             domain.ComponentFactory
	barFactory              domain.ComponentFactory
	restaurantWorkerFactory domain.ComponentFactory
	supplyFactories         []domain.ComponentFactory

	payment domain.PaymentStrategy
	out     domain.Console
	rec     domain.Recorder
}

// NewFacade wires the facade from cat. rec may be nil.
func NewFacade(cat *Catalog, payment domain.PaymentStrategy, out domain.Console, rec domain.Recorder) (*Facade, error) {
	f := &Facade{director: domain.GetDirector(), payment: payment, out: out, rec: rec}

	slots := []struct {
		kind domain.Kind
		dst  *domain.ComponentFactory
	}{
		{domain.KindVisitor, &f.visitorFactory},
		{domain.KindReceptionWorker, &f.receptionWorkerFactory},
		{domain.KindRoom, &f.roomFactory},
		{domain.KindBar, &f.barFactory},
		{domain.KindRestaurantWorker, &f.restaurantWorkerFactory},
	}
	for _, s := range slots {
		fac, err := cat.Factory(s.kind)
		if err != nil {
			return nil, err
		}
		*s.dst = fac
	}
	for _, k := range []domain.Kind{domain.KindRawFood, domain.KindRawDrinks, domain.KindCleanser} {
		fac, err := cat.Factory(k)
		if err != nil {
			return nil, err
		}
		f.supplyFactories = append(f.supplyFactories, fac)
	}
	return f, nil
}

// SetPaymentStrategy swaps the strategy handed to visitors created from now on.
func (f *Facade) SetPaymentStrategy(p domain.PaymentStrategy) { f.payment = p }

func (f *Facade) PaymentStrategy() domain.PaymentStrategy { return f.payment }

func (f *Facade) OpenHotel() error {
	return f.show(f.director, domain.PhaseOpening)
}

// SimulateDay creates one of each guest-facing component, lets each act,
// then acts again through clones of all five in the same order. A last
// visitor clone shows the payment strategy carried over.
func (f *Facade) SimulateDay() error {
	visitor := f.create(f.visitorFactory)
	if f.payment != nil {
		if err := visitor.SetPaymentStrategy(f.payment); err != nil {
			log.Debug().Err(err).Str("kind", visitor.Kind().String()).Msg("payment strategy not attached")
		}
	}
	if err := f.show(visitor, domain.PhaseOriginal); err != nil {
		return err
	}

	staff := []domain.ComponentFactory{
		f.receptionWorkerFactory,
		f.roomFactory,
		f.barFactory,
		f.restaurantWorkerFactory,
	}
	seen := []domain.Prototype{visitor}
	for _, fac := range staff {
		c := f.create(fac)
		if err := f.show(c, domain.PhaseOriginal); err != nil {
			return err
		}
		seen = append(seen, c)
	}

	for _, c := range seen {
		if err := f.cloneAndShow(c, domain.PhaseClone); err != nil {
			return err
		}
	}

	return f.cloneAndShow(visitor, domain.PhasePayment)
}

// ReceiveSupplies takes the morning delivery of raw food, raw drinks and cleanser.
func (f *Facade) ReceiveSupplies() error {
	for _, fac := range f.supplyFactories {
		if err := f.show(f.create(fac), domain.PhaseDelivery); err != nil {
			return err
		}
	}
	return nil
}

func (f *Facade) create(fac domain.ComponentFactory) *domain.Component {
	c := fac.CreateComponent()
	if f.rec != nil {
		f.rec.ComponentCreated(c.Kind())
	}
	log.Debug().Str("kind", c.Kind().String()).Msg("component created")
	return c
}

// cloneAndShow skips values that refuse to be cloned.
func (f *Facade) cloneAndShow(p domain.Prototype, phase string) error {
	cp, ok := p.Clone()
	if !ok {
		log.Debug().Str("kind", p.Kind().String()).Msg("no clone available")
		return nil
	}
	if f.rec != nil {
		f.rec.ComponentCloned(cp.Kind())
	}
	log.Debug().Str("kind", cp.Kind().String()).Str("phase", phase).Msg("component cloned")
	return f.show(cp, phase)
}

var errNoConsole = errors.New("facade has no console")

func (f *Facade) show(p domain.Prototype, phase string) error {
	if f.out == nil {
		return errNoConsole
	}
	lines := p.Interact()
	if f.rec != nil {
		f.rec.Interaction(p.Kind(), phase)
		if c, ok := p.(*domain.Component); ok && c.PaymentStrategy() != nil {
			f.rec.Payment(c.PaymentStrategy().Method(), c.Amount())
		}
	}
	return f.out.Println(lines...)
}
