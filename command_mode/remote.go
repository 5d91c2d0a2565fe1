package command_mode

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	ErrSlotOutOfRange = errors.New("slot out of range")
	ErrSlotUnbound    = errors.New("no command bound to slot")
	ErrNothingToUndo  = errors.New("no command has been executed")
	ErrNoSlots        = errors.New("remote control needs at least one slot")
)

// RemoteControl is the invoker. Each slot holds an on and an off command;
// the last command pressed on any slot is the undo target.
type RemoteControl struct {
	onCommands  []Command
	offCommands []Command
	undoCommand Command
	log         *zap.Logger
}

func NewRemoteControl(slots int, log *zap.Logger) (*RemoteControl, error) {
	if slots <= 0 {
		return nil, errors.Wrapf(ErrNoSlots, "got %d", slots)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &RemoteControl{
		onCommands:  make([]Command, slots),
		offCommands: make([]Command, slots),
		log:         log.Named("remote"),
	}, nil
}

func (r *RemoteControl) Slots() int { return len(r.onCommands) }

func (r *RemoteControl) checkSlot(slot int) error {
	if slot < 0 || slot >= len(r.onCommands) {
		return errors.Wrapf(ErrSlotOutOfRange, "slot %d, remote has %d", slot, len(r.onCommands))
	}
	return nil
}

// SetCommand binds a pair to slot, replacing any previous binding. Either
// command may be nil to leave that button unbound.
func (r *RemoteControl) SetCommand(slot int, onCommand, offCommand Command) error {
	if err := r.checkSlot(slot); err != nil {
		return err
	}
	r.onCommands[slot] = onCommand
	r.offCommands[slot] = offCommand
	r.log.Debug("slot bound", zap.Int("slot", slot),
		zap.String("on", commandName(onCommand)), zap.String("off", commandName(offCommand)))
	return nil
}

func (r *RemoteControl) OnButtonPressed(slot int) error {
	return r.press(slot, r.onCommands, "on")
}

func (r *RemoteControl) OffButtonPressed(slot int) error {
	return r.press(slot, r.offCommands, "off")
}

func (r *RemoteControl) press(slot int, commands []Command, button string) error {
	if err := r.checkSlot(slot); err != nil {
		return err
	}
	c := commands[slot]
	if c == nil {
		return errors.Wrapf(ErrSlotUnbound, "%s button of slot %d", button, slot)
	}
	r.log.Debug("button pressed", zap.Int("slot", slot), zap.String("button", button),
		zap.String("command", commandName(c)))
	c.Execute()
	r.undoCommand = c
	return nil
}

// UndoButtonPressed reverts the most recently pressed command. The undo
// target stays in place afterwards.
func (r *RemoteControl) UndoButtonPressed() error {
	if r.undoCommand == nil {
		return ErrNothingToUndo
	}
	r.log.Debug("undo pressed", zap.String("command", commandName(r.undoCommand)))
	r.undoCommand.Undo()
	return nil
}

// OnCommand returns the command bound to the on button of slot, nil if
// unbound or out of range.
func (r *RemoteControl) OnCommand(slot int) Command {
	if r.checkSlot(slot) != nil {
		return nil
	}
	return r.onCommands[slot]
}

func (r *RemoteControl) OffCommand(slot int) Command {
	if r.checkSlot(slot) != nil {
		return nil
	}
	return r.offCommands[slot]
}

func (r *RemoteControl) String() string {
	var b strings.Builder
	b.WriteString("------ Remote Control ------\n")
	for i := range r.onCommands {
		fmt.Fprintf(&b, "[slot %d] %-28s %s\n", i, commandName(r.onCommands[i]), commandName(r.offCommands[i]))
	}
	fmt.Fprintf(&b, "[undo] %s\n", commandName(r.undoCommand))
	return b.String()
}

func commandName(c Command) string {
	if c == nil {
		return "-"
	}
	if s, ok := c.(fmt.Stringer); ok {
		return s.String()
	}
	name := strings.TrimPrefix(fmt.Sprintf("%T", c), "*")
	return strings.TrimPrefix(name, "command_mode.")
}
