package observer_mode

import "go.uber.org/zap"

// Push mode: the subject hands every observer the new measurements.

type Subject interface {
	RegisterObserver(o Observer)
	RemoveObserver(o Observer)
	NotifyObservers()
}

// Measurements is the state snapshot delivered on every notification.
type Measurements struct {
	Temperature float64
	Pressure    float64
	Humidity    float64
}

// WeatherData is the concrete subject. Observers are kept in
// registration order and duplicates are allowed.
type WeatherData struct {
	observers []Observer
	current   Measurements
	log       *zap.Logger
}

func NewWeatherData(log *zap.Logger) *WeatherData {
	if log == nil {
		log = zap.NewNop()
	}
	return &WeatherData{log: log.Named("weather")}
}

func (w *WeatherData) RegisterObserver(o Observer) {
	w.observers = append(w.observers, o)
	w.log.Debug("observer registered", zap.Int("observers", len(w.observers)))
}

// RemoveObserver drops every entry identical to o. Removing an observer
// that was never registered does nothing.
func (w *WeatherData) RemoveObserver(o Observer) {
	kept := w.observers[:0]
	for _, v := range w.observers {
		if v != o {
			kept = append(kept, v)
		}
	}
	// clear the tail so removed observers can be collected
	for i := len(kept); i < len(w.observers); i++ {
		w.observers[i] = nil
	}
	removed := len(w.observers) - len(kept)
	w.observers = kept
	w.log.Debug("observer removed", zap.Int("removed", removed), zap.Int("observers", len(w.observers)))
}

// NotifyObservers pushes the current measurements to the observers
// registered when the call starts. Registrations made from inside an
// Update only take effect on the next notification.
func (w *WeatherData) NotifyObservers() {
	snapshot := w.current
	targets := make([]Observer, len(w.observers))
	copy(targets, w.observers)

	w.log.Debug("notify observers",
		zap.Int("observers", len(targets)),
		zap.Float64("temperature", snapshot.Temperature),
		zap.Float64("pressure", snapshot.Pressure),
		zap.Float64("humidity", snapshot.Humidity))
	for _, obj := range targets {
		obj.Update(snapshot.Temperature, snapshot.Pressure, snapshot.Humidity)
	}
}

func (w *WeatherData) measurementsChanged() {
	w.NotifyObservers()
}

// SetMeasurements stores the new readings and then notifies.
func (w *WeatherData) SetMeasurements(temperature, pressure, humidity float64) {
	w.current = Measurements{
		Temperature: temperature,
		Pressure:    pressure,
		Humidity:    humidity,
	}
	w.measurementsChanged()
}

func (w *WeatherData) Measurements() Measurements {
	return w.current
}

// Observers returns a copy of the registered observers in order.
func (w *WeatherData) Observers() []Observer {
	out := make([]Observer, len(w.observers))
	copy(out, w.observers)
	return out
}
