package factory_mode

import "github.com/gulipalli123/DesignPatterns/util"

// Abstract factory: a family of ingredients per region, created through
// one interface so the pizzas never name a concrete ingredient.

type IngredientFactory interface {
	CreateDough() string
	CreateSauce() string
	CreateCheese() string
	CreateClams() string
}

type NYPizzaIngredientFactory struct{}

func (NYPizzaIngredientFactory) CreateDough() string  { return "ThinCrustDough" }
func (NYPizzaIngredientFactory) CreateSauce() string  { return "MarinaraSauce" }
func (NYPizzaIngredientFactory) CreateCheese() string { return "ReggianoCheese" }
func (NYPizzaIngredientFactory) CreateClams() string  { return "FreshClams" }

type ChicagoPizzaIngredientFactory struct{}

func (ChicagoPizzaIngredientFactory) CreateDough() string  { return "ThickCrustDough" }
func (ChicagoPizzaIngredientFactory) CreateSauce() string  { return "PlumTomatoSauce" }
func (ChicagoPizzaIngredientFactory) CreateCheese() string { return "MozzarellaCheese" }
func (ChicagoPizzaIngredientFactory) CreateClams() string  { return "FrozenClams" }

// RegionalCheesePizza gets its ingredients only when prepared.
type RegionalCheesePizza struct {
	pizza
	ingredients IngredientFactory
	cheese      string
}

func (p *RegionalCheesePizza) Prepare(out util.Sink) {
	p.dough = p.ingredients.CreateDough()
	p.sauce = p.ingredients.CreateSauce()
	p.cheese = p.ingredients.CreateCheese()
	p.toppings = []string{p.cheese}
	p.pizza.Prepare(out)
}

type ClamPizza struct {
	pizza
	ingredients IngredientFactory
}

func (p *ClamPizza) Prepare(out util.Sink) {
	p.dough = p.ingredients.CreateDough()
	p.sauce = p.ingredients.CreateSauce()
	p.toppings = []string{p.ingredients.CreateCheese(), p.ingredients.CreateClams()}
	p.pizza.Prepare(out)
}

// Ingredients returns what the last Prepare used, after the name.
func (p *pizza) Ingredients() []string {
	out := []string{p.dough, p.sauce}
	return append(out, p.toppings...)
}

// IngredientPizzaStore is a PizzaCreator whose pizzas are built from a
// regional ingredient family.
type IngredientPizzaStore struct {
	Region      string
	Ingredients IngredientFactory
}

func NewNYIngredientStore() IngredientPizzaStore {
	return IngredientPizzaStore{Region: "NewYork", Ingredients: NYPizzaIngredientFactory{}}
}

func NewChicagoIngredientStore() IngredientPizzaStore {
	return IngredientPizzaStore{Region: "Chicago", Ingredients: ChicagoPizzaIngredientFactory{}}
}

func (s IngredientPizzaStore) CreatePizza(kind string) (Pizza, error) {
	switch kind {
	case "cheese":
		return &RegionalCheesePizza{
			pizza:       pizza{name: s.Region + " Style Cheese Pizza"},
			ingredients: s.Ingredients,
		}, nil
	case "clam":
		return &ClamPizza{
			pizza:       pizza{name: s.Region + " Style Clam Pizza"},
			ingredients: s.Ingredients,
		}, nil
	}
	return nil, unknown(kind)
}
