package factory_mode

import (
	"strings"

	"github.com/gulipalli123/DesignPatterns/util"
	"github.com/pkg/errors"
)

var ErrUnknownPizza = errors.New("unknown pizza")

type Pizza interface {
	Name() string
	Prepare(out util.Sink)
	Bake(out util.Sink)
	Cut(out util.Sink)
	Box(out util.Sink)
}

// pizza carries the steps every pizza shares. Concrete pizzas embed it
// and bring their own Prepare.
type pizza struct {
	name     string
	dough    string
	sauce    string
	toppings []string
}

func (p *pizza) Name() string { return p.name }

func (p *pizza) Prepare(out util.Sink) {
	if p.dough == "" && p.sauce == "" {
		util.Printf(out, "Prepare %s", p.name)
		return
	}
	line := "Prepare " + p.name + " " + p.dough + " " + p.sauce
	if len(p.toppings) > 0 {
		line += " " + strings.Join(p.toppings, " ")
	}
	out.WriteLine(line)
}

func (p *pizza) Bake(out util.Sink) { out.WriteLine("Baking Pizza") }
func (p *pizza) Cut(out util.Sink)  { out.WriteLine("Cutting Pizza") }
func (p *pizza) Box(out util.Sink)  { out.WriteLine("Put Pizza in a box") }

func unknown(kind string) error {
	return errors.Wrapf(ErrUnknownPizza, "%q", kind)
}

// process runs the fixed preparation steps, the part every store shares.
func process(p Pizza, out util.Sink) {
	p.Prepare(out)
	p.Bake(out)
	p.Cut(out)
	p.Box(out)
}
