package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, config string, args ...string) (string, string, error) {
	t.Helper()
	dir := t.TempDir()
	logDir := filepath.Join(dir, "Log")
	cfg := filepath.Join(dir, "config.yaml")
	body := fmt.Sprintf("log:\n  dir: %s\n%s", logDir, config)
	require.NoError(t, os.WriteFile(cfg, []byte(body), 0o644))

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(append([]string{"--config", cfg}, args...))
	t.Cleanup(func() {
		programFile = ""
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return buf.String(), logDir, err
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestObserverCommand(t *testing.T) {
	out, _, err := execute(t, "", "observer")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Current conditions: temperature = 10, pressure = 8.7, humidity = 9.5",
		"Avg/Max/Min temperature = 10/10/10",
		"Forecast: No forecast yet",
		"Current conditions: temperature = 5.3, pressure = 4.5, humidity = 2.9",
		"Forecast: Watch out for cooler, rainy weather",
	}, lines(out))
}

func TestObserverReadingsFromConfig(t *testing.T) {
	out, _, err := execute(t, "weather:\n  readings:\n    - [80, 30.4, 65]\n", "observer")
	require.NoError(t, err)
	assert.Len(t, lines(out), 3)
	assert.Contains(t, out, "temperature = 80")
}

func TestRemoteCommandDefaultProgram(t *testing.T) {
	out, logDir, err := execute(t, "", "remote")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"turning off the kitchen light",
		"Garage Door is Open",
		"Turn on the Stereo",
		"Playing from CD",
		"volume level is set to 9",
		"Turn off the Stereo",
		"living room ceiling fan is on high",
		"living room ceiling fan is on low",
		"living room ceiling fan is on high",
		"turning on the kitchen light",
		"Turn on the Stereo",
		"Playing from CD",
		"volume level is set to 9",
		"living room ceiling fan is on low",
		"living room ceiling fan is on high",
		"Turn off the Stereo",
		"turning off the kitchen light",
	}, lines(out))

	info, err := os.ReadFile(filepath.Join(logDir, "patterns_info.log"))
	require.NoError(t, err)
	assert.Contains(t, string(info), "Garage Door is Open")
}

func TestRemoteCommandTooFewSlots(t *testing.T) {
	_, _, err := execute(t, "remote:\n  slots: 3\n", "remote")
	assert.ErrorContains(t, err, "slot out of range")
}

func TestRemoteCommandProgramFile(t *testing.T) {
	program := filepath.Join(t.TempDir(), "program.yaml")
	require.NoError(t, os.WriteFile(program, []byte(`
slots: 1
devices:
  - {name: fan, kind: ceiling-fan, location: attic}
bindings:
  - {slot: 0, device: fan, on: medium, off: off}
steps:
  - {press: on, slot: 0}
  - {press: off, slot: 0}
  - {press: undo}
`), 0o644))

	out, _, err := execute(t, "", "remote", "--program", program)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"attic ceiling fan is on medium",
		"attic ceiling fan is off",
		"attic ceiling fan is on medium",
	}, lines(out))
}

func TestFactoryCommand(t *testing.T) {
	out, _, err := execute(t, "", "factory", "abstract")
	require.NoError(t, err)
	assert.Contains(t, out, "Prepare NewYork Style Cheese Pizza ThinCrustDough MarinaraSauce ReggianoCheese")
	assert.Contains(t, out, "Prepare Chicago Style Clam Pizza ThickCrustDough PlumTomatoSauce MozzarellaCheese FrozenClams")

	_, _, err = execute(t, "", "factory", "builder")
	assert.ErrorContains(t, err, "unknown factory demo")
}

func TestSingletonCommand(t *testing.T) {
	out, _, err := execute(t, "", "singleton")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "same instance: true"}, lines(out))
}

func TestAllCommand(t *testing.T) {
	out, _, err := execute(t, "", "all")
	require.NoError(t, err)
	for _, header := range []string{"strategy", "observer", "decorator", "factory", "singleton", "command", "adapter", "open/closed"} {
		assert.Contains(t, out, "==== "+header+" ====")
	}
	assert.Contains(t, out, "HouseBlend Mocha SteamedMilk Mocha (grande) 2.79$")
	assert.Contains(t, out, "I'm flying a short distance")
	assert.Contains(t, out, "rendering triangle")
}

func TestBadConfig(t *testing.T) {
	_, _, err := execute(t, "remote:\n  slots: -2\n", "singleton")
	assert.Error(t, err)
}
