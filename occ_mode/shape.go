package occ_mode

import "github.com/gulipalli123/DesignPatterns/util"

// Open/closed: adding a shape means adding a type, Renderer stays as is.

type Shape interface {
	Render() string
}

type Square struct{}

func (Square) Render() string { return "rendering square" }

type Circle struct{}

func (Circle) Render() string { return "rendering circle" }

type Triangle struct{}

func (Triangle) Render() string { return "rendering triangle" }

type Renderer struct {
	out util.Sink
}

func NewRenderer(out util.Sink) *Renderer {
	return &Renderer{out: out}
}

func (r *Renderer) Render(shapes []Shape) {
	for _, shape := range shapes {
		r.out.WriteLine(shape.Render())
	}
}
