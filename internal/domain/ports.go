package domain

type ComponentFactory interface {
	Kind() Kind
	CreateComponent() *Component
}

// Console receives the simulation transcript, one entry per line.
type Console interface {
	Println(lines ...string) error
}

// Recorder observes what the simulation does. Implementations must not
// change the transcript.
type Recorder interface {
	ComponentCreated(k Kind)
	ComponentCloned(k Kind)
	Interaction(k Kind, phase string)
	Payment(m PaymentMethod, amount float64)
	DaySimulated()
}

// Interaction phases
const (
	PhaseOriginal = "original"
	PhaseClone    = "clone"
	PhasePayment  = "payment"
	PhaseDelivery = "delivery"
	PhaseOpening  = "opening"
)
