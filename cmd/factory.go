package cmd

import (
	"github.com/gulipalli123/DesignPatterns/factory_mode"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var factoryCmd = &cobra.Command{
	Use:       "factory [simple|method|abstract]",
	Short:     "Pizza stores built on simple factory, factory method and abstract factory",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"simple", "method", "abstract"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return runFactory(app)
		}
		run, ok := factoryDemos[args[0]]
		if !ok {
			return errors.Errorf("unknown factory demo %q", args[0])
		}
		return run(app)
	},
}

var factoryDemos = map[string]func(*App) error{
	"simple":   runSimpleFactory,
	"method":   runFactoryMethod,
	"abstract": runAbstractFactory,
}

func runFactory(a *App) error {
	for _, name := range []string{"simple", "method", "abstract"} {
		a.Out.WriteLine("== " + name + " factory")
		if err := factoryDemos[name](a); err != nil {
			return err
		}
	}
	return nil
}

func runSimpleFactory(a *App) error {
	store := factory_mode.NewPizzaStore(factory_mode.SimplePizzaFactory{}, a.Out)
	_, err := store.OrderPizza("greek")
	return err
}

func runFactoryMethod(a *App) error {
	for _, store := range []factory_mode.PizzaCreator{factory_mode.NYPizzaStore{}, factory_mode.ChicagoPizzaStore{}} {
		if _, err := factory_mode.OrderPizza(store, "cheese", a.Out); err != nil {
			return err
		}
	}
	return nil
}

func runAbstractFactory(a *App) error {
	for _, order := range []struct {
		store factory_mode.IngredientPizzaStore
		kind  string
	}{
		{factory_mode.NewNYIngredientStore(), "cheese"},
		{factory_mode.NewChicagoIngredientStore(), "clam"},
	} {
		if _, err := factory_mode.OrderPizza(order.store, order.kind, a.Out); err != nil {
			return err
		}
	}
	return nil
}
