package singleton_mode

import "github.com/gulipalli123/DesignPatterns/util"

// 单例模式
//
// There is no package level instance. A Holder is created once by the
// program and passed to whoever needs the shared Counter; everyone asking
// the same Holder gets the same Counter. Holder is not safe for concurrent
// use.

type Counter struct {
	i   int
	out util.Sink
}

func (c *Counter) Print() {
	c.i++
	util.Printf(c.out, "%d", c.i)
}

func (c *Counter) Value() int { return c.i }

type Holder struct {
	instance *Counter
	out      util.Sink
	created  int
}

func NewHolder(out util.Sink) *Holder {
	return &Holder{out: out}
}

// Inject sets the instance handed out by Get, mostly for tests.
func (h *Holder) Inject(c *Counter) {
	h.instance = c
}

// Get creates the Counter on first use.
func (h *Holder) Get() *Counter {
	if h.instance == nil {
		h.instance = &Counter{out: h.out}
		h.created++
	}
	return h.instance
}

// Created reports how many times Get had to build a Counter.
func (h *Holder) Created() int { return h.created }
