package command_mode

// Command encapsulates one request against one device.
//
// Every command that changes device state records the state it found
// inside Execute, so Undo puts back whatever preceded the most recent
// Execute. A command whose Execute never ran undoes to the zero state
// (off, closed, fan OFF): that is the value the capture field starts with.
type Command interface {
	Execute()
	Undo()
}

type LightOnCommand struct {
	light  *Light
	prevOn bool
}

func NewLightOnCommand(light *Light) *LightOnCommand {
	return &LightOnCommand{light: light}
}

func (c *LightOnCommand) Execute() {
	c.prevOn = c.light.IsOn()
	c.light.On()
}

func (c *LightOnCommand) Undo() { restoreLight(c.light, c.prevOn) }

type LightOffCommand struct {
	light  *Light
	prevOn bool
}

func NewLightOffCommand(light *Light) *LightOffCommand {
	return &LightOffCommand{light: light}
}

func (c *LightOffCommand) Execute() {
	c.prevOn = c.light.IsOn()
	c.light.Off()
}

func (c *LightOffCommand) Undo() { restoreLight(c.light, c.prevOn) }

func restoreLight(l *Light, on bool) {
	if on {
		l.On()
	} else {
		l.Off()
	}
}

type GarageDoorOpenCommand struct {
	door     *GarageDoor
	prevOpen bool
}

func NewGarageDoorOpenCommand(door *GarageDoor) *GarageDoorOpenCommand {
	return &GarageDoorOpenCommand{door: door}
}

func (c *GarageDoorOpenCommand) Execute() {
	c.prevOpen = c.door.IsOpen()
	c.door.Up()
}

func (c *GarageDoorOpenCommand) Undo() { restoreDoor(c.door, c.prevOpen) }

type GarageDoorCloseCommand struct {
	door     *GarageDoor
	prevOpen bool
}

func NewGarageDoorCloseCommand(door *GarageDoor) *GarageDoorCloseCommand {
	return &GarageDoorCloseCommand{door: door}
}

func (c *GarageDoorCloseCommand) Execute() {
	c.prevOpen = c.door.IsOpen()
	c.door.Down()
}

func (c *GarageDoorCloseCommand) Undo() { restoreDoor(c.door, c.prevOpen) }

func restoreDoor(d *GarageDoor, open bool) {
	if open {
		d.Up()
	} else {
		d.Down()
	}
}

// StereoOnWithCDCommand turns the stereo on, selects CD and sets volume.
type StereoOnWithCDCommand struct {
	stereo *Stereo
	volume uint8
	prev   StereoState
}

func NewStereoOnWithCDCommand(stereo *Stereo, volume uint8) *StereoOnWithCDCommand {
	return &StereoOnWithCDCommand{stereo: stereo, volume: volume}
}

func (c *StereoOnWithCDCommand) Execute() {
	c.prev = c.stereo.State()
	c.stereo.On()
	c.stereo.SetCD()
	c.stereo.SetVolume(c.volume)
}

func (c *StereoOnWithCDCommand) Undo() { c.stereo.Restore(c.prev) }

type StereoOffCommand struct {
	stereo *Stereo
	prev   StereoState
}

func NewStereoOffCommand(stereo *Stereo) *StereoOffCommand {
	return &StereoOffCommand{stereo: stereo}
}

func (c *StereoOffCommand) Execute() {
	c.prev = c.stereo.State()
	c.stereo.Off()
}

func (c *StereoOffCommand) Undo() { c.stereo.Restore(c.prev) }

// CeilingFanCommand sets the fan to one speed. The speed found before
// each Execute is what Undo goes back to.
type CeilingFanCommand struct {
	fan       *CeilingFan
	target    Speed
	prevSpeed Speed
}

func NewCeilingFanCommand(fan *CeilingFan, target Speed) *CeilingFanCommand {
	return &CeilingFanCommand{fan: fan, target: target, prevSpeed: SpeedOff}
}

func NewCeilingFanHighCommand(fan *CeilingFan) *CeilingFanCommand {
	return NewCeilingFanCommand(fan, SpeedHigh)
}

func NewCeilingFanMediumCommand(fan *CeilingFan) *CeilingFanCommand {
	return NewCeilingFanCommand(fan, SpeedMedium)
}

func NewCeilingFanLowCommand(fan *CeilingFan) *CeilingFanCommand {
	return NewCeilingFanCommand(fan, SpeedLow)
}

func NewCeilingFanOffCommand(fan *CeilingFan) *CeilingFanCommand {
	return NewCeilingFanCommand(fan, SpeedOff)
}

func (c *CeilingFanCommand) Execute() {
	c.prevSpeed = c.fan.Speed()
	setFanSpeed(c.fan, c.target)
}

func (c *CeilingFanCommand) Undo() {
	setFanSpeed(c.fan, c.prevSpeed)
}

func setFanSpeed(f *CeilingFan, s Speed) {
	switch s {
	case SpeedHigh:
		f.High()
	case SpeedMedium:
		f.Medium()
	case SpeedLow:
		f.Low()
	default:
		f.Off()
	}
}

// MacroCommand runs several commands as one button. Undo walks them
// backwards.
type MacroCommand struct {
	commands []Command
}

func NewMacroCommand(commands ...Command) *MacroCommand {
	return &MacroCommand{commands: commands}
}

func (m *MacroCommand) Execute() {
	for _, c := range m.commands {
		c.Execute()
	}
}

func (m *MacroCommand) Undo() {
	for i := len(m.commands) - 1; i >= 0; i-- {
		m.commands[i].Undo()
	}
}

// FuncCommand adapts a pair of closures; a nil undo does nothing.
type FuncCommand struct {
	Do     func()
	Revert func()
}

func (f FuncCommand) Execute() {
	if f.Do != nil {
		f.Do()
	}
}

func (f FuncCommand) Undo() {
	if f.Revert != nil {
		f.Revert()
	}
}
