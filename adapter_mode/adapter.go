package adapter_mode

import "github.com/gulipalli123/DesignPatterns/util"

// The adapter converts the Turkey interface into the Duck interface the
// client code expects.

type Duck interface {
	Quack()
	Fly()
}

type Turkey interface {
	Gobble()
	Fly()
}

type MallardDuck struct{ Out util.Sink }

func (d *MallardDuck) Quack() { d.Out.WriteLine("Quack") }
func (d *MallardDuck) Fly()   { d.Out.WriteLine("I'm flying") }

type WildTurkey struct{ Out util.Sink }

func (t *WildTurkey) Gobble() { t.Out.WriteLine("Gobble gobble") }
func (t *WildTurkey) Fly()    { t.Out.WriteLine("I'm flying a short distance") }

// Turkeys fly in short spurts, so one duck flight is several turkey hops.
const turkeyHops = 5

type TurkeyAdapter struct {
	turkey Turkey
}

func NewTurkeyAdapter(t Turkey) *TurkeyAdapter {
	return &TurkeyAdapter{turkey: t}
}

func (a *TurkeyAdapter) Quack() { a.turkey.Gobble() }

func (a *TurkeyAdapter) Fly() {
	for i := 0; i < turkeyHops; i++ {
		a.turkey.Fly()
	}
}

// UseDuck is the client: it only knows about ducks.
func UseDuck(d Duck) {
	d.Quack()
	d.Fly()
}
