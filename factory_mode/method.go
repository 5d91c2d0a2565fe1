package factory_mode

import "github.com/gulipalli123/DesignPatterns/util"

// Factory method: OrderPizza owns the ordering steps and each regional
// store decides which concrete pizza to create.

// PizzaCreator is the factory method.
type PizzaCreator interface {
	CreatePizza(kind string) (Pizza, error)
}

func OrderPizza(store PizzaCreator, kind string, out util.Sink) (Pizza, error) {
	p, err := store.CreatePizza(kind)
	if err != nil {
		return nil, err
	}
	process(p, out)
	return p, nil
}

type NYStyleCheesePizza struct{ pizza }

type ChicagoStyleCheesePizza struct{ pizza }

// Cut cuts deep dish into squares.
func (p *ChicagoStyleCheesePizza) Cut(out util.Sink) {
	out.WriteLine("Cutting the pizza into square slices")
}

type NYPizzaStore struct{}

func (NYPizzaStore) CreatePizza(kind string) (Pizza, error) {
	if kind == "cheese" {
		return &NYStyleCheesePizza{pizza{
			name:  "NY style sauce and cheese pizza",
			dough: "Thin crust dough",
			sauce: "Marinara sauce",
		}}, nil
	}
	return nil, unknown(kind)
}

type ChicagoPizzaStore struct{}

func (ChicagoPizzaStore) CreatePizza(kind string) (Pizza, error) {
	if kind == "cheese" {
		return &ChicagoStyleCheesePizza{pizza{
			name:  "Chicago style sauce and cheese pizza",
			dough: "Thick crust dough",
			sauce: "Plum tomato sauce",
		}}, nil
	}
	return nil, unknown(kind)
}
