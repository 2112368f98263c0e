package domain

import "sync"

// Director is the one process-wide hotel director.
type Director struct{}

var (
	director     *Director
	directorOnce sync.Once
)

// GetDirector returns the director, creating it on first use.
func GetDirector() *Director {
	directorOnce.Do(func() { director = &Director{} })
	return director
}

func (*Director) Kind() Kind { return KindDirector }

func (*Director) Interact() []string {
	return []string{`Hotel director announces: "Hotel is open now!"`}
}

// Clone never yields a copy.
func (*Director) Clone() (Prototype, bool) { return nil, false }
