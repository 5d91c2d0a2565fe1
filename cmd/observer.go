package cmd

import (
	"github.com/gulipalli123/DesignPatterns/observer_mode"
	"go.uber.org/zap"
)

var observerCmd = demo("observer", "Weather station pushing readings to displays", runObserver)

// runObserver feeds every configured reading to the station. The
// statistics display leaves after the first reading.
func runObserver(a *App) error {
	station := observer_mode.NewWeatherData(a.Log)
	current := observer_mode.NewCurrentConditionsDisplay(a.Out)
	stats := observer_mode.NewStatisticsDisplay(a.Out)
	forecast := observer_mode.NewForecastDisplay(a.Out)
	current.Subscribe(station)
	stats.Subscribe(station)
	forecast.Subscribe(station)

	for i, r := range a.Config.Weather.Readings {
		station.SetMeasurements(r[0], r[1], r[2])
		if i == 0 {
			a.Log.Debug("statistics display leaves", zap.String("id", stats.ID))
			stats.Unsubscribe()
		}
	}
	return nil
}
