package observer_mode

import (
	"github.com/google/uuid"
	"github.com/gulipalli123/DesignPatterns/util"
)

// Observer receives measurement updates. Subjects compare observers by
// identity, so implementations must be pointer types.
type Observer interface {
	Update(temperature, pressure, humidity float64)
}

type Display interface {
	Display()
}

// 观察者实例

// subscription holds the subject an observer is attached to.
type subscription struct {
	ID  string
	Sub Subject
}

func newSubscription() subscription {
	return subscription{ID: uuid.NewString()}
}

func (s *subscription) subscribe(sub Subject, o Observer) {
	if s.Sub != nil {
		s.Sub.RemoveObserver(o)
	}
	s.Sub = sub
	sub.RegisterObserver(o)
}

func (s *subscription) unsubscribe(o Observer) {
	if s.Sub == nil {
		return
	}
	s.Sub.RemoveObserver(o)
	s.Sub = nil
}

// CurrentConditionsDisplay shows the latest readings.
type CurrentConditionsDisplay struct {
	subscription
	out  util.Sink
	last Measurements
}

func NewCurrentConditionsDisplay(out util.Sink) *CurrentConditionsDisplay {
	return &CurrentConditionsDisplay{subscription: newSubscription(), out: out}
}

// Subscribe attaches the display to sub, leaving any previous subject.
func (d *CurrentConditionsDisplay) Subscribe(sub Subject) { d.subscribe(sub, d) }

func (d *CurrentConditionsDisplay) Unsubscribe() { d.unsubscribe(d) }

func (d *CurrentConditionsDisplay) Update(temperature, pressure, humidity float64) {
	d.last = Measurements{Temperature: temperature, Pressure: pressure, Humidity: humidity}
	d.Display()
}

func (d *CurrentConditionsDisplay) Display() {
	util.Printf(d.out, "Current conditions: temperature = %g, pressure = %g, humidity = %g",
		d.last.Temperature, d.last.Pressure, d.last.Humidity)
}

// Last returns the readings received by the most recent update.
func (d *CurrentConditionsDisplay) Last() Measurements { return d.last }

// StatisticsDisplay keeps running temperature statistics.
type StatisticsDisplay struct {
	subscription
	out     util.Sink
	last    Measurements
	min     float64
	max     float64
	sum     float64
	samples int
}

func NewStatisticsDisplay(out util.Sink) *StatisticsDisplay {
	return &StatisticsDisplay{subscription: newSubscription(), out: out}
}

func (d *StatisticsDisplay) Subscribe(sub Subject) { d.subscribe(sub, d) }

func (d *StatisticsDisplay) Unsubscribe() { d.unsubscribe(d) }

func (d *StatisticsDisplay) Update(temperature, pressure, humidity float64) {
	d.last = Measurements{Temperature: temperature, Pressure: pressure, Humidity: humidity}
	if d.samples == 0 || temperature < d.min {
		d.min = temperature
	}
	if d.samples == 0 || temperature > d.max {
		d.max = temperature
	}
	d.sum += temperature
	d.samples++
	d.Display()
}

func (d *StatisticsDisplay) Display() {
	util.Printf(d.out, "Avg/Max/Min temperature = %g/%g/%g", d.Average(), d.max, d.min)
}

func (d *StatisticsDisplay) Last() Measurements { return d.last }

// Average is zero until the first update.
func (d *StatisticsDisplay) Average() float64 {
	if d.samples == 0 {
		return 0
	}
	return d.sum / float64(d.samples)
}

func (d *StatisticsDisplay) Min() float64 { return d.min }
func (d *StatisticsDisplay) Max() float64 { return d.max }
func (d *StatisticsDisplay) Samples() int { return d.samples }

// Forecast is derived from the pressure trend.
type Forecast int

const (
	ForecastUnknown Forecast = iota
	ForecastImproving
	ForecastSame
	ForecastRainy
)

func (f Forecast) String() string {
	switch f {
	case ForecastImproving:
		return "Improving weather on the way!"
	case ForecastSame:
		return "More of the same"
	case ForecastRainy:
		return "Watch out for cooler, rainy weather"
	}
	return "No forecast yet"
}

// ForecastDisplay compares each pressure reading with the one before.
type ForecastDisplay struct {
	subscription
	out          util.Sink
	havePressure bool
	lastPressure float64
	forecast     Forecast
}

func NewForecastDisplay(out util.Sink) *ForecastDisplay {
	return &ForecastDisplay{subscription: newSubscription(), out: out}
}

func (d *ForecastDisplay) Subscribe(sub Subject) { d.subscribe(sub, d) }

func (d *ForecastDisplay) Unsubscribe() { d.unsubscribe(d) }

func (d *ForecastDisplay) Update(_, pressure, _ float64) {
	switch {
	case !d.havePressure:
		d.forecast = ForecastUnknown
	case pressure > d.lastPressure:
		d.forecast = ForecastImproving
	case pressure == d.lastPressure:
		d.forecast = ForecastSame
	default:
		d.forecast = ForecastRainy
	}
	d.lastPressure = pressure
	d.havePressure = true
	d.Display()
}

func (d *ForecastDisplay) Display() {
	util.Printf(d.out, "Forecast: %s", d.forecast)
}

func (d *ForecastDisplay) Forecast() Forecast { return d.forecast }
