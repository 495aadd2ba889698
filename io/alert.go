package io

// TrapEvent is a single trap received from the machine.
type TrapEvent struct {
	User bool
	Code uint8
}

// AlertChannel queues every trap and register dump it receives.
type AlertChannel struct {
	Traps []TrapEvent
	Dumps [][8]uint16
}

var _ Channel = (*AlertChannel)(nil)

func (ac *AlertChannel) Reset() {
	ac.Traps = nil
	ac.Dumps = nil
}

func (ac *AlertChannel) Trap(user bool, code uint8) {
	ac.Traps = append(ac.Traps, TrapEvent{User: user, Code: code})
}

func (ac *AlertChannel) Dump(registers [8]uint16) {
	ac.Dumps = append(ac.Dumps, registers)
}

// GetTrap removes and returns the oldest queued trap.
func (ac *AlertChannel) GetTrap() (event TrapEvent, ok bool) {
	if len(ac.Traps) > 0 {
		ok = true
		event = ac.Traps[0]
		ac.Traps = ac.Traps[1:]
	}

	return
}

// GetDump removes and returns the oldest queued register dump.
func (ac *AlertChannel) GetDump() (registers [8]uint16, ok bool) {
	if len(ac.Dumps) > 0 {
		ok = true
		registers = ac.Dumps[0]
		ac.Dumps = ac.Dumps[1:]
	}

	return
}
