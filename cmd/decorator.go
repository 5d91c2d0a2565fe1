package cmd

import (
	"github.com/gulipalli123/DesignPatterns/decorator_mode"
)

var decoratorCmd = demo("decorator", "Beverages wrapped in condiment decorators", runDecorator)

func runDecorator(a *App) error {
	var houseblend decorator_mode.Beverage = decorator_mode.NewHouseBlend()
	a.Out.WriteLine(decorator_mode.Receipt(houseblend))
	houseblend.SetSize(decorator_mode.Grande)
	houseblend = decorator_mode.NewMocha(houseblend)
	a.Out.WriteLine(decorator_mode.Receipt(houseblend))
	houseblend = decorator_mode.NewSteamedMilk(houseblend)
	a.Out.WriteLine(decorator_mode.Receipt(houseblend))
	houseblend = decorator_mode.NewMocha(houseblend)
	a.Out.WriteLine(decorator_mode.Receipt(houseblend))

	var roast decorator_mode.Beverage = decorator_mode.NewDarkRoast()
	roast = decorator_mode.NewWhip(decorator_mode.NewSoy(roast))
	roast.SetSize(decorator_mode.Venti)
	a.Out.WriteLine(decorator_mode.Receipt(roast))
	return nil
}
