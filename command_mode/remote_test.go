package command_mode

import (
	"testing"

	"github.com/gulipalli123/DesignPatterns/util"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newRemote(t *testing.T, slots int) *RemoteControl {
	t.Helper()
	rc, err := NewRemoteControl(slots, nil)
	require.NoError(t, err)
	return rc
}

func TestNewRemoteControlNeedsSlots(t *testing.T) {
	for _, n := range []int{0, -1} {
		_, err := NewRemoteControl(n, nil)
		assert.True(t, errors.Is(err, ErrNoSlots))
	}
	rc := newRemote(t, 7)
	assert.Equal(t, 7, rc.Slots())
}

func TestUndoTargetsFanSpeed(t *testing.T) {
	fan := NewCeilingFan("living room", util.Discard)
	rc := newRemote(t, 2)
	require.NoError(t, rc.SetCommand(0, NewCeilingFanHighCommand(fan), NewCeilingFanOffCommand(fan)))
	require.NoError(t, rc.SetCommand(1, NewCeilingFanLowCommand(fan), NewCeilingFanOffCommand(fan)))

	require.NoError(t, rc.OnButtonPressed(1))
	assert.Equal(t, SpeedLow, fan.Speed())
	require.NoError(t, rc.OnButtonPressed(0))
	assert.Equal(t, SpeedHigh, fan.Speed())

	require.NoError(t, rc.UndoButtonPressed())
	assert.Equal(t, SpeedLow, fan.Speed())
}

func TestUndoTargetsMostRecentSlot(t *testing.T) {
	kitchen := NewLight("kitchen", util.Discard)
	door := NewGarageDoor(util.Discard)
	rc := newRemote(t, 3)
	require.NoError(t, rc.SetCommand(0, NewLightOnCommand(kitchen), NewLightOffCommand(kitchen)))
	require.NoError(t, rc.SetCommand(1, NewGarageDoorOpenCommand(door), NewGarageDoorCloseCommand(door)))

	require.NoError(t, rc.OnButtonPressed(0))
	require.NoError(t, rc.OnButtonPressed(1))
	require.NoError(t, rc.UndoButtonPressed())

	assert.True(t, kitchen.IsOn(), "slot 0 must be untouched")
	assert.False(t, door.IsOpen())
}

func TestUndoAfterOffButton(t *testing.T) {
	kitchen := NewLight("kitchen", util.Discard)
	rc := newRemote(t, 1)
	require.NoError(t, rc.SetCommand(0, NewLightOnCommand(kitchen), NewLightOffCommand(kitchen)))

	require.NoError(t, rc.OnButtonPressed(0))
	require.NoError(t, rc.OffButtonPressed(0))
	require.NoError(t, rc.UndoButtonPressed())
	assert.True(t, kitchen.IsOn())
}

func TestRepeatedUndoReappliesRestore(t *testing.T) {
	fan := NewCeilingFan("bedroom", util.Discard)
	fan.Medium()
	rc := newRemote(t, 1)
	require.NoError(t, rc.SetCommand(0, NewCeilingFanHighCommand(fan), NewCeilingFanOffCommand(fan)))

	require.NoError(t, rc.OnButtonPressed(0))
	require.NoError(t, rc.UndoButtonPressed())
	require.NoError(t, rc.UndoButtonPressed())
	assert.Equal(t, SpeedMedium, fan.Speed())
}

func TestRebindingReplacesPair(t *testing.T) {
	first := NewLight("kitchen", util.Discard)
	second := NewLight("garage", util.Discard)
	rc := newRemote(t, 2)

	require.NoError(t, rc.SetCommand(0, NewLightOnCommand(first), NewLightOffCommand(first)))
	require.NoError(t, rc.SetCommand(0, NewLightOnCommand(second), NewLightOffCommand(second)))

	require.NoError(t, rc.OnButtonPressed(0))
	assert.False(t, first.IsOn())
	assert.True(t, second.IsOn())

	require.NoError(t, rc.OffButtonPressed(0))
	assert.False(t, second.IsOn())
}

func TestUndoOnFreshRemote(t *testing.T) {
	rc := newRemote(t, 7)
	err := rc.UndoButtonPressed()
	assert.True(t, errors.Is(err, ErrNothingToUndo))

	// binding alone does not create an undo target
	light := NewLight("kitchen", util.Discard)
	require.NoError(t, rc.SetCommand(0, NewLightOnCommand(light), NewLightOffCommand(light)))
	assert.True(t, errors.Is(rc.UndoButtonPressed(), ErrNothingToUndo))
}

func TestSlotOutOfRange(t *testing.T) {
	rc := newRemote(t, 3)
	light := NewLight("kitchen", util.Discard)
	cmd := NewLightOnCommand(light)

	for _, slot := range []int{-1, 3, 100} {
		assert.True(t, errors.Is(rc.SetCommand(slot, cmd, cmd), ErrSlotOutOfRange), "set %d", slot)
		assert.True(t, errors.Is(rc.OnButtonPressed(slot), ErrSlotOutOfRange), "on %d", slot)
		assert.True(t, errors.Is(rc.OffButtonPressed(slot), ErrSlotOutOfRange), "off %d", slot)
		assert.Nil(t, rc.OnCommand(slot))
		assert.Nil(t, rc.OffCommand(slot))
	}
	assert.False(t, light.IsOn())
}

func TestUnboundSlot(t *testing.T) {
	rc := newRemote(t, 3)
	assert.True(t, errors.Is(rc.OnButtonPressed(2), ErrSlotUnbound))
	assert.True(t, errors.Is(rc.OffButtonPressed(2), ErrSlotUnbound))

	light := NewLight("kitchen", util.Discard)
	require.NoError(t, rc.SetCommand(1, NewLightOnCommand(light), nil))
	require.NoError(t, rc.OnButtonPressed(1))
	assert.True(t, errors.Is(rc.OffButtonPressed(1), ErrSlotUnbound))
	assert.True(t, light.IsOn())
}

func TestFailedPressKeepsUndoTarget(t *testing.T) {
	fan := NewCeilingFan("living room", util.Discard)
	fan.Low()
	rc := newRemote(t, 2)
	require.NoError(t, rc.SetCommand(0, NewCeilingFanHighCommand(fan), NewCeilingFanOffCommand(fan)))

	require.NoError(t, rc.OnButtonPressed(0))
	assert.Error(t, rc.OnButtonPressed(1))
	assert.Error(t, rc.OnButtonPressed(5))

	require.NoError(t, rc.UndoButtonPressed())
	assert.Equal(t, SpeedLow, fan.Speed())
}

func TestRemoteString(t *testing.T) {
	rc := newRemote(t, 2)
	light := NewLight("kitchen", util.Discard)
	require.NoError(t, rc.SetCommand(0, NewLightOnCommand(light), NewLightOffCommand(light)))
	require.NoError(t, rc.SetCommand(1, FuncCommand{}, nil))
	require.NoError(t, rc.OnButtonPressed(0))

	s := rc.String()
	assert.Contains(t, s, "[slot 0] LightOnCommand")
	assert.Contains(t, s, "LightOffCommand")
	assert.Contains(t, s, "[slot 1] FuncCommand")
	assert.Contains(t, s, "[undo] LightOnCommand")
}

func TestRemoteLogsPresses(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	rc, err := NewRemoteControl(1, zap.New(core))
	require.NoError(t, err)
	fan := NewCeilingFan("attic", util.Discard)
	require.NoError(t, rc.SetCommand(0, NewCeilingFanHighCommand(fan), nil))
	require.NoError(t, rc.OnButtonPressed(0))
	require.NoError(t, rc.UndoButtonPressed())

	pressed := logs.FilterMessage("button pressed").All()
	require.Len(t, pressed, 1)
	assert.Equal(t, "on", pressed[0].ContextMap()["button"])
	assert.Equal(t, "CeilingFanCommand", pressed[0].ContextMap()["command"])
	assert.Equal(t, 1, logs.FilterMessage("undo pressed").Len())
}
