package command_mode

import (
	"fmt"
	"os"
	"strings"

	"github.com/gulipalli123/DesignPatterns/util"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Program describes a remote control setup and a sequence of presses:
//
//	slots: 7
//	devices:
//	  - name: kitchen
//	    kind: light
//	    location: kitchen
//	bindings:
//	  - slot: 0
//	    device: kitchen
//	    on: on
//	    off: off
//	  - slot: 6
//	    macro: [0, 1]
//	steps:
//	  - press: on
//	    slot: 0
//	  - press: undo
type Program struct {
	Slots    int           `yaml:"slots"`
	Devices  []DeviceSpec  `yaml:"devices"`
	Bindings []BindingSpec `yaml:"bindings"`
	Steps    []StepSpec    `yaml:"steps"`
}

type DeviceSpec struct {
	Name     string `yaml:"name"`
	Kind     string `yaml:"kind"`
	Location string `yaml:"location"`
	// stereo only
	Volume uint8 `yaml:"volume"`
}

// BindingSpec binds either one device's actions or a macro over the
// commands of other, device-bound slots.
type BindingSpec struct {
	Slot   int    `yaml:"slot"`
	Device string `yaml:"device"`
	On     string `yaml:"on"`
	Off    string `yaml:"off"`
	Macro  []int  `yaml:"macro"`
}

type StepSpec struct {
	Press string `yaml:"press"`
	Slot  int    `yaml:"slot"`
}

const (
	KindLight      = "light"
	KindGarageDoor = "garage-door"
	KindStereo     = "stereo"
	KindCeilingFan = "ceiling-fan"

	PressOn   = "on"
	PressOff  = "off"
	PressUndo = "undo"
)

// actions per device kind
var deviceActions = map[string][]string{
	KindLight:      {"on", "off"},
	KindGarageDoor: {"open", "close"},
	KindStereo:     {"on", "off"},
	KindCeilingFan: {"high", "medium", "low", "off"},
}

// ProgramError reports a program that could not be loaded or built.
type ProgramError struct {
	File    string
	Field   string
	Message string
	Cause   error
}

func (e *ProgramError) Error() string {
	var b strings.Builder
	b.WriteString("program")
	if e.File != "" {
		b.WriteString(" " + e.File)
	}
	if e.Field != "" {
		b.WriteString(": " + e.Field)
	}
	b.WriteString(": " + e.Message)
	if e.Cause != nil {
		b.WriteString(": " + e.Cause.Error())
	}
	return b.String()
}

func (e *ProgramError) Unwrap() error { return e.Cause }

// ParseProgram parses and validates a program from YAML bytes.
func ParseProgram(data []byte) (*Program, error) {
	var p Program
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, &ProgramError{Message: "failed to parse YAML", Cause: err}
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// LoadProgram reads a program file.
func LoadProgram(path string) (*Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ProgramError{File: path, Message: "failed to read file", Cause: err}
	}
	p, err := ParseProgram(data)
	if err != nil {
		if pe, ok := err.(*ProgramError); ok {
			pe.File = path
		}
		return nil, err
	}
	return p, nil
}

func hasAction(kind, action string) bool {
	for _, a := range deviceActions[kind] {
		if a == action {
			return true
		}
	}
	return false
}

// Validate checks names, kinds, actions and step buttons. Slot ranges are
// checked by Build, where the final slot count is known.
func (p *Program) Validate() error {
	if p.Slots < 0 {
		return &ProgramError{Field: "slots", Message: fmt.Sprintf("must not be negative, got %d", p.Slots)}
	}
	kinds := make(map[string]string, len(p.Devices))
	for i, d := range p.Devices {
		field := fmt.Sprintf("devices[%d]", i)
		if d.Name == "" {
			return &ProgramError{Field: field, Message: "name is required"}
		}
		if _, dup := kinds[d.Name]; dup {
			return &ProgramError{Field: field, Message: fmt.Sprintf("duplicate device %q", d.Name)}
		}
		if _, ok := deviceActions[d.Kind]; !ok {
			return &ProgramError{Field: field, Message: fmt.Sprintf("unknown kind %q", d.Kind)}
		}
		kinds[d.Name] = d.Kind
	}

	for i, b := range p.Bindings {
		field := fmt.Sprintf("bindings[%d]", i)
		if len(b.Macro) > 0 {
			if b.Device != "" {
				return &ProgramError{Field: field, Message: "a binding is either a device or a macro"}
			}
			continue
		}
		kind, ok := kinds[b.Device]
		if !ok {
			return &ProgramError{Field: field, Message: fmt.Sprintf("unknown device %q", b.Device)}
		}
		for _, action := range []string{b.On, b.Off} {
			if action != "" && !hasAction(kind, action) {
				return &ProgramError{Field: field, Message: fmt.Sprintf("%s has no action %q", kind, action)}
			}
		}
	}

	for i, s := range p.Steps {
		switch s.Press {
		case PressOn, PressOff, PressUndo:
		default:
			return &ProgramError{Field: fmt.Sprintf("steps[%d]", i), Message: fmt.Sprintf("unknown button %q", s.Press)}
		}
	}
	return nil
}

type device struct {
	light  *Light
	door   *GarageDoor
	stereo *Stereo
	fan    *CeilingFan
	volume uint8
}

func newDevice(spec DeviceSpec, out util.Sink) *device {
	switch spec.Kind {
	case KindLight:
		return &device{light: NewLight(spec.Location, out)}
	case KindGarageDoor:
		return &device{door: NewGarageDoor(out)}
	case KindStereo:
		vol := spec.Volume
		if vol == 0 {
			vol = MaxVolume
		}
		return &device{stereo: NewStereo(out), volume: vol}
	case KindCeilingFan:
		return &device{fan: NewCeilingFan(spec.Location, out)}
	}
	return nil
}

func (d *device) command(action string) Command {
	switch {
	case d.light != nil && action == "on":
		return NewLightOnCommand(d.light)
	case d.light != nil && action == "off":
		return NewLightOffCommand(d.light)
	case d.door != nil && action == "open":
		return NewGarageDoorOpenCommand(d.door)
	case d.door != nil && action == "close":
		return NewGarageDoorCloseCommand(d.door)
	case d.stereo != nil && action == "on":
		return NewStereoOnWithCDCommand(d.stereo, d.volume)
	case d.stereo != nil && action == "off":
		return NewStereoOffCommand(d.stereo)
	case d.fan != nil && action == "high":
		return NewCeilingFanHighCommand(d.fan)
	case d.fan != nil && action == "medium":
		return NewCeilingFanMediumCommand(d.fan)
	case d.fan != nil && action == "low":
		return NewCeilingFanLowCommand(d.fan)
	case d.fan != nil && action == "off":
		return NewCeilingFanOffCommand(d.fan)
	}
	return nil
}

// Build creates the devices and a remote with every binding applied.
// defaultSlots is used when the program does not set slots. Device
// bindings are applied before macros, so a macro may refer to any
// device-bound slot regardless of order.
func (p *Program) Build(out util.Sink, defaultSlots int, log *zap.Logger) (*RemoteControl, error) {
	slots := p.Slots
	if slots == 0 {
		slots = defaultSlots
	}
	rc, err := NewRemoteControl(slots, log)
	if err != nil {
		return nil, &ProgramError{Field: "slots", Message: "cannot build remote", Cause: err}
	}

	devices := make(map[string]*device, len(p.Devices))
	for _, spec := range p.Devices {
		devices[spec.Name] = newDevice(spec, out)
	}

	var macros []int
	for i, b := range p.Bindings {
		if len(b.Macro) > 0 {
			macros = append(macros, i)
			continue
		}
		d := devices[b.Device]
		var on, off Command
		if b.On != "" {
			on = d.command(b.On)
		}
		if b.Off != "" {
			off = d.command(b.Off)
		}
		if err := rc.SetCommand(b.Slot, on, off); err != nil {
			return nil, &ProgramError{Field: fmt.Sprintf("bindings[%d]", i), Message: "cannot bind", Cause: err}
		}
	}

	for _, i := range macros {
		b := p.Bindings[i]
		field := fmt.Sprintf("bindings[%d]", i)
		var ons, offs []Command
		for _, slot := range b.Macro {
			if slot == b.Slot {
				return nil, &ProgramError{Field: field, Message: fmt.Sprintf("macro refers to its own slot %d", slot)}
			}
			on, off := rc.OnCommand(slot), rc.OffCommand(slot)
			if on == nil && off == nil {
				return nil, &ProgramError{Field: field, Message: fmt.Sprintf("macro refers to unbound slot %d", slot)}
			}
			if on != nil {
				ons = append(ons, on)
			}
			if off != nil {
				offs = append(offs, off)
			}
		}
		if err := rc.SetCommand(b.Slot, NewMacroCommand(ons...), NewMacroCommand(offs...)); err != nil {
			return nil, &ProgramError{Field: field, Message: "cannot bind", Cause: err}
		}
	}
	return rc, nil
}

// Run presses the buttons in order and stops at the first failure.
func (p *Program) Run(rc *RemoteControl) error {
	for i, s := range p.Steps {
		var err error
		switch s.Press {
		case PressOn:
			err = rc.OnButtonPressed(s.Slot)
		case PressOff:
			err = rc.OffButtonPressed(s.Slot)
		case PressUndo:
			err = rc.UndoButtonPressed()
		}
		if err != nil {
			return &ProgramError{Field: fmt.Sprintf("steps[%d]", i), Message: "press " + s.Press + " failed", Cause: err}
		}
	}
	return nil
}
