package strategy_mode

import "github.com/gulipalli123/DesignPatterns/util"

// The behaviors that vary between ducks are pulled out of Duck so they can
// be swapped at runtime.

type FlyBehavior interface {
	Fly() string
}

type QuackBehavior interface {
	Quack() string
}

type FlyWithWings struct{}

func (FlyWithWings) Fly() string { return "I can fly with my wings" }

type FlyNoWay struct{}

func (FlyNoWay) Fly() string { return "I cannot fly" }

type FlyRocketPowered struct{}

func (FlyRocketPowered) Fly() string { return "I'm flying with a rocket!" }

type Quack struct{}

func (Quack) Quack() string { return "quack" }

type MuteQuack struct{}

func (MuteQuack) Quack() string { return "silence" }

type Squeak struct{}

func (Squeak) Quack() string { return "squeak" }

type Duck struct {
	kind  string
	fly   FlyBehavior
	quack QuackBehavior
	out   util.Sink
}

func NewDuck(kind string, fly FlyBehavior, quack QuackBehavior, out util.Sink) *Duck {
	return &Duck{kind: kind, fly: fly, quack: quack, out: out}
}

func NewMallardDuck(out util.Sink) *Duck {
	return NewDuck("Mallard Duck", FlyWithWings{}, Quack{}, out)
}

func NewModelDuck(out util.Sink) *Duck {
	return NewDuck("Model Duck", FlyNoWay{}, Quack{}, out)
}

func NewRubberDuck(out util.Sink) *Duck {
	return NewDuck("Rubber Duck", FlyNoWay{}, Squeak{}, out)
}

func (d *Duck) Display() { util.Printf(d.out, "I am %s", d.kind) }

func (d *Duck) PerformFly() { d.out.WriteLine(d.fly.Fly()) }

func (d *Duck) PerformQuack() { d.out.WriteLine(d.quack.Quack()) }

func (d *Duck) Swim() { d.out.WriteLine("I can swim") }

func (d *Duck) SetFlyBehavior(fb FlyBehavior) { d.fly = fb }

func (d *Duck) SetQuackBehavior(qb QuackBehavior) { d.quack = qb }
