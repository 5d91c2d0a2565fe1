package decorator_mode

import "fmt"

type Size int

const (
	Tall Size = iota
	Grande
	Venti
)

func (s Size) String() string {
	switch s {
	case Grande:
		return "grande"
	case Venti:
		return "venti"
	}
	return "tall"
}

// Beverage is implemented by both the concrete drinks and the condiments
// wrapping them.
type Beverage interface {
	Description() string
	Cost() float64
	Size() Size
	SetSize(s Size)
}

type base struct {
	description string
	size        Size
}

func (b *base) Description() string { return b.description }
func (b *base) Size() Size          { return b.size }
func (b *base) SetSize(s Size)      { b.size = s }

type HouseBlend struct{ base }

func NewHouseBlend() *HouseBlend {
	return &HouseBlend{base{description: "HouseBlend"}}
}

func (*HouseBlend) Cost() float64 { return 1.23 }

type DarkRoast struct{ base }

func NewDarkRoast() *DarkRoast {
	return &DarkRoast{base{description: "DarkRoast"}}
}

func (*DarkRoast) Cost() float64 { return 0.99 }

type Espresso struct{ base }

func NewEspresso() *Espresso {
	return &Espresso{base{description: "Espresso"}}
}

func (*Espresso) Cost() float64 { return 1.99 }

// condiment forwards size to the wrapped beverage, so a size set anywhere
// in the chain applies to the whole drink.
type condiment struct {
	beverage Beverage
}

func (c *condiment) Size() Size     { return c.beverage.Size() }
func (c *condiment) SetSize(s Size) { c.beverage.SetSize(s) }

// bySize picks the price for the current size.
func bySize(s Size, tall, grande, venti float64) float64 {
	switch s {
	case Grande:
		return grande
	case Venti:
		return venti
	}
	return tall
}

type Mocha struct{ condiment }

func NewMocha(b Beverage) *Mocha { return &Mocha{condiment{b}} }

func (m *Mocha) Description() string { return m.beverage.Description() + " Mocha" }

func (m *Mocha) Cost() float64 {
	return m.beverage.Cost() + bySize(m.Size(), 0.35, 0.35+0.15, 0.35+0.15+0.20)
}

type SteamedMilk struct{ condiment }

func NewSteamedMilk(b Beverage) *SteamedMilk { return &SteamedMilk{condiment{b}} }

func (m *SteamedMilk) Description() string { return m.beverage.Description() + " SteamedMilk" }

func (m *SteamedMilk) Cost() float64 { return m.beverage.Cost() + 0.56 }

type Soy struct{ condiment }

func NewSoy(b Beverage) *Soy { return &Soy{condiment{b}} }

func (s *Soy) Description() string { return s.beverage.Description() + " Soy" }

func (s *Soy) Cost() float64 {
	return s.beverage.Cost() + bySize(s.Size(), 0.10, 0.15, 0.20)
}

type Whip struct{ condiment }

func NewWhip(b Beverage) *Whip { return &Whip{condiment{b}} }

func (w *Whip) Description() string { return w.beverage.Description() + " Whip" }

func (w *Whip) Cost() float64 { return w.beverage.Cost() + 0.10 }

// Receipt formats a beverage the way the demo prints it.
func Receipt(b Beverage) string {
	return fmt.Sprintf("%s (%s) %.2f$", b.Description(), b.Size(), b.Cost())
}
