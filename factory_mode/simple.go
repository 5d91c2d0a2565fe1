package factory_mode

import "github.com/gulipalli123/DesignPatterns/util"

// Simple factory: one object knows how to create every kind of pizza and
// the store asks it by name.

type CheesePizza struct{ pizza }

type GreekPizza struct{ pizza }

type PepperoniPizza struct{ pizza }

type SimplePizzaFactory struct{}

func (SimplePizzaFactory) CreatePizza(kind string) (Pizza, error) {
	switch kind {
	case "cheese":
		return &CheesePizza{pizza{name: "Cheese Pizza"}}, nil
	case "greek":
		return &GreekPizza{pizza{name: "Greek Pizza"}}, nil
	case "pepperoni":
		return &PepperoniPizza{pizza{name: "Pepperoni Pizza"}}, nil
	}
	return nil, unknown(kind)
}

type PizzaStore struct {
	factory SimplePizzaFactory
	out     util.Sink
}

func NewPizzaStore(factory SimplePizzaFactory, out util.Sink) *PizzaStore {
	return &PizzaStore{factory: factory, out: out}
}

func (s *PizzaStore) OrderPizza(kind string) (Pizza, error) {
	p, err := s.factory.CreatePizza(kind)
	if err != nil {
		return nil, err
	}
	process(p, s.out)
	return p, nil
}
