package command_mode

import (
	"github.com/gulipalli123/DesignPatterns/util"
)

// Devices are the receivers. They know how to do the work; the commands
// only know which device and which method.

type Light struct {
	room string
	on   bool
	out  util.Sink
}

func NewLight(room string, out util.Sink) *Light {
	return &Light{room: room, out: out}
}

func (l *Light) On() {
	l.on = true
	util.Printf(l.out, "turning on the %s light", l.room)
}

func (l *Light) Off() {
	l.on = false
	util.Printf(l.out, "turning off the %s light", l.room)
}

func (l *Light) IsOn() bool   { return l.on }
func (l *Light) Room() string { return l.room }

type GarageDoor struct {
	open    bool
	lightOn bool
	out     util.Sink
}

func NewGarageDoor(out util.Sink) *GarageDoor {
	return &GarageDoor{out: out}
}

func (g *GarageDoor) Up() {
	g.open = true
	g.out.WriteLine("Garage Door is Open")
}

func (g *GarageDoor) Down() {
	g.open = false
	g.out.WriteLine("Garage Door is Closed")
}

func (g *GarageDoor) Stop() {
	g.out.WriteLine("Garage Door is Stopped")
}

func (g *GarageDoor) LightOn() {
	g.lightOn = true
	g.out.WriteLine("Garage Light is On")
}

func (g *GarageDoor) LightOff() {
	g.lightOn = false
	g.out.WriteLine("Garage Light is Off")
}

func (g *GarageDoor) IsOpen() bool    { return g.open }
func (g *GarageDoor) IsLightOn() bool { return g.lightOn }

type StereoMode int

const (
	ModeNone StereoMode = iota
	ModeCD
	ModeDVD
	ModeRadio
)

func (m StereoMode) String() string {
	switch m {
	case ModeCD:
		return "CD"
	case ModeDVD:
		return "DVD"
	case ModeRadio:
		return "radio"
	}
	return "none"
}

const MaxVolume uint8 = 11

// StereoState is everything a stereo command has to put back on undo.
type StereoState struct {
	On     bool
	Mode   StereoMode
	Volume uint8
}

type Stereo struct {
	state StereoState
	out   util.Sink
}

func NewStereo(out util.Sink) *Stereo {
	return &Stereo{out: out}
}

func (s *Stereo) On() {
	s.state.On = true
	s.out.WriteLine("Turn on the Stereo")
}

func (s *Stereo) Off() {
	s.state.On = false
	s.out.WriteLine("Turn off the Stereo")
}

func (s *Stereo) SetCD() {
	s.state.Mode = ModeCD
	s.out.WriteLine("Playing from CD")
}

func (s *Stereo) SetDVD() {
	s.state.Mode = ModeDVD
	s.out.WriteLine("Playing from DVD")
}

func (s *Stereo) SetRadio() {
	s.state.Mode = ModeRadio
	s.out.WriteLine("Playing from radio")
}

// SetVolume clamps to MaxVolume.
func (s *Stereo) SetVolume(level uint8) {
	if level > MaxVolume {
		level = MaxVolume
	}
	s.state.Volume = level
	util.Printf(s.out, "volume level is set to %d", level)
}

func (s *Stereo) State() StereoState { return s.state }

// Restore puts the stereo back into a previously captured state.
func (s *Stereo) Restore(st StereoState) {
	if !st.On {
		s.Off()
		s.state = st
		return
	}
	s.On()
	switch st.Mode {
	case ModeCD:
		s.SetCD()
	case ModeDVD:
		s.SetDVD()
	case ModeRadio:
		s.SetRadio()
	default:
		s.state.Mode = ModeNone
	}
	s.SetVolume(st.Volume)
}

type Speed int

const (
	SpeedOff Speed = iota
	SpeedLow
	SpeedMedium
	SpeedHigh
)

func (s Speed) String() string {
	switch s {
	case SpeedLow:
		return "low"
	case SpeedMedium:
		return "medium"
	case SpeedHigh:
		return "high"
	}
	return "off"
}

type CeilingFan struct {
	location string
	speed    Speed
	out      util.Sink
}

func NewCeilingFan(location string, out util.Sink) *CeilingFan {
	return &CeilingFan{location: location, out: out}
}

func (f *CeilingFan) High() {
	f.speed = SpeedHigh
	util.Printf(f.out, "%s ceiling fan is on high", f.location)
}

func (f *CeilingFan) Medium() {
	f.speed = SpeedMedium
	util.Printf(f.out, "%s ceiling fan is on medium", f.location)
}

func (f *CeilingFan) Low() {
	f.speed = SpeedLow
	util.Printf(f.out, "%s ceiling fan is on low", f.location)
}

func (f *CeilingFan) Off() {
	f.speed = SpeedOff
	util.Printf(f.out, "%s ceiling fan is off", f.location)
}

func (f *CeilingFan) Speed() Speed { return f.speed }
