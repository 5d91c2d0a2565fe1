package cmd

import (
	"github.com/gulipalli123/DesignPatterns/adapter_mode"
	"github.com/gulipalli123/DesignPatterns/occ_mode"
	"github.com/gulipalli123/DesignPatterns/singleton_mode"
	"github.com/gulipalli123/DesignPatterns/strategy_mode"
	"github.com/gulipalli123/DesignPatterns/util"
)

var (
	strategyCmd   = demo("strategy", "Ducks with interchangeable fly and quack behaviors", runStrategy)
	singletonCmd  = demo("singleton", "One shared counter handed out by an explicit holder", runSingleton)
	adapterCmd    = demo("adapter", "A turkey adapted to the duck interface", runAdapter)
	openClosedCmd = demo("openclosed", "Renderer that is closed for modification", runOpenClosed)
)

func runStrategy(a *App) error {
	mallard := strategy_mode.NewMallardDuck(a.Out)
	mallard.Display()
	mallard.PerformFly()
	mallard.PerformQuack()

	a.Out.WriteLine("changing behaviour dynamically")
	mallard.SetFlyBehavior(strategy_mode.FlyNoWay{})
	mallard.SetQuackBehavior(strategy_mode.MuteQuack{})
	mallard.PerformFly()
	mallard.PerformQuack()

	model := strategy_mode.NewModelDuck(a.Out)
	model.Display()
	model.PerformFly()
	model.SetFlyBehavior(strategy_mode.FlyRocketPowered{})
	model.PerformFly()
	return nil
}

func runSingleton(a *App) error {
	holder := singleton_mode.NewHolder(a.Out)
	obj1 := holder.Get()
	obj1.Print()
	obj2 := holder.Get()
	obj2.Print()
	util.Printf(a.Out, "same instance: %t", obj1 == obj2)
	return nil
}

func runAdapter(a *App) error {
	duck := &adapter_mode.MallardDuck{Out: a.Out}
	turkey := &adapter_mode.WildTurkey{Out: a.Out}

	a.Out.WriteLine("The Turkey says...")
	turkey.Gobble()
	turkey.Fly()
	a.Out.WriteLine("The Duck says...")
	adapter_mode.UseDuck(duck)
	a.Out.WriteLine("The TurkeyAdapter says...")
	adapter_mode.UseDuck(adapter_mode.NewTurkeyAdapter(turkey))
	return nil
}

func runOpenClosed(a *App) error {
	shapes := []occ_mode.Shape{
		occ_mode.Square{}, occ_mode.Square{}, occ_mode.Square{},
		occ_mode.Circle{}, occ_mode.Circle{}, occ_mode.Circle{},
		occ_mode.Triangle{},
	}
	occ_mode.NewRenderer(a.Out).Render(shapes)
	return nil
}
