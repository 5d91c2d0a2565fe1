package observer_mode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type mockObserver struct {
	mock.Mock
}

func (m *mockObserver) Update(temperature, pressure, humidity float64) {
	m.Called(temperature, pressure, humidity)
}

// recorder appends its name to a shared journal on every update.
type recorder struct {
	name    string
	journal *[]string
	onCall  func()
}

func (r *recorder) Update(_, _, _ float64) {
	*r.journal = append(*r.journal, r.name)
	if r.onCall != nil {
		r.onCall()
	}
}

func newRecorders(journal *[]string, names ...string) []*recorder {
	out := make([]*recorder, 0, len(names))
	for _, n := range names {
		out = append(out, &recorder{name: n, journal: journal})
	}
	return out
}

func TestNotifyInRegistrationOrder(t *testing.T) {
	var journal []string
	w := NewWeatherData(nil)
	rs := newRecorders(&journal, "c", "a", "d", "b")
	for _, r := range rs {
		w.RegisterObserver(r)
	}
	w.NotifyObservers()
	assert.Equal(t, []string{"c", "a", "d", "b"}, journal)
}

func TestRemoveObserver(t *testing.T) {
	var journal []string
	w := NewWeatherData(nil)
	rs := newRecorders(&journal, "A", "B", "C")
	for _, r := range rs {
		w.RegisterObserver(r)
	}
	w.RemoveObserver(rs[1])
	w.NotifyObservers()
	assert.Equal(t, []string{"A", "C"}, journal)
	assert.Len(t, w.Observers(), 2)
}

func TestRemoveAbsentObserverIsNoop(t *testing.T) {
	var journal []string
	w := NewWeatherData(nil)
	rs := newRecorders(&journal, "A", "B")
	w.RegisterObserver(rs[0])

	assert.NotPanics(t, func() { w.RemoveObserver(rs[1]) })
	w.NotifyObservers()
	assert.Equal(t, []string{"A"}, journal)

	empty := NewWeatherData(nil)
	assert.NotPanics(t, func() { empty.RemoveObserver(rs[0]) })
}

func TestDuplicateRegistration(t *testing.T) {
	var journal []string
	w := NewWeatherData(nil)
	rs := newRecorders(&journal, "A", "B")
	w.RegisterObserver(rs[0])
	w.RegisterObserver(rs[1])
	w.RegisterObserver(rs[0])

	w.NotifyObservers()
	assert.Equal(t, []string{"A", "B", "A"}, journal)

	// every copy goes
	journal = nil
	w.RemoveObserver(rs[0])
	w.NotifyObservers()
	assert.Equal(t, []string{"B"}, journal)
}

func TestSetMeasurementsDeliversSnapshot(t *testing.T) {
	m := &mockObserver{}
	m.On("Update", 10.0, 8.7, 9.5).Once()

	w := NewWeatherData(nil)
	w.RegisterObserver(m)
	w.SetMeasurements(10.0, 8.7, 9.5)

	m.AssertExpectations(t)
	assert.Equal(t, Measurements{Temperature: 10.0, Pressure: 8.7, Humidity: 9.5}, w.Measurements())
}

func TestNotifyDeliversCurrentState(t *testing.T) {
	m := &mockObserver{}
	m.On("Update", 0.0, 0.0, 0.0).Once()
	m.On("Update", 5.3, 4.5, 2.9).Twice()

	w := NewWeatherData(nil)
	w.RegisterObserver(m)
	w.NotifyObservers()
	w.SetMeasurements(5.3, 4.5, 2.9)
	w.NotifyObservers()

	m.AssertExpectations(t)
}

func TestRegisterDuringNotifyWaitsForNextPass(t *testing.T) {
	var journal []string
	w := NewWeatherData(nil)
	late := &recorder{name: "late", journal: &journal}
	first := &recorder{name: "first", journal: &journal}
	registered := false
	first.onCall = func() {
		if !registered {
			registered = true
			w.RegisterObserver(late)
		}
	}
	w.RegisterObserver(first)

	w.NotifyObservers()
	assert.Equal(t, []string{"first"}, journal)

	w.NotifyObservers()
	assert.Equal(t, []string{"first", "first", "late"}, journal)
}

func TestRemoveDuringNotifyWaitsForNextPass(t *testing.T) {
	var journal []string
	w := NewWeatherData(nil)
	rs := newRecorders(&journal, "A", "B")
	rs[0].onCall = func() { w.RemoveObserver(rs[1]) }
	w.RegisterObserver(rs[0])
	w.RegisterObserver(rs[1])

	w.NotifyObservers()
	assert.Equal(t, []string{"A", "B"}, journal)

	journal = nil
	w.NotifyObservers()
	assert.Equal(t, []string{"A"}, journal)
}

func TestObserversReturnsCopy(t *testing.T) {
	var journal []string
	w := NewWeatherData(nil)
	rs := newRecorders(&journal, "A")
	w.RegisterObserver(rs[0])

	obs := w.Observers()
	require.Len(t, obs, 1)
	obs[0] = nil
	assert.Equal(t, Observer(rs[0]), w.Observers()[0])
}

func TestNotifyLogs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	w := NewWeatherData(zap.New(core))
	w.RegisterObserver(&mockObserver{})
	w.RemoveObserver(&mockObserver{})

	assert.Equal(t, 1, logs.FilterMessage("observer registered").Len())
	removed := logs.FilterMessage("observer removed").All()
	require.Len(t, removed, 1)
	assert.EqualValues(t, 0, removed[0].ContextMap()["removed"])
}
