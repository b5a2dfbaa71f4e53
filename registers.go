package as1115

import (
	"errors"
	"fmt"
)

// Register is the address of an AS1115 register.
type Register byte

const (
	// Digit data registers. Digit N lives at Digit0+N.
	Digit0 Register = 0x01
	Digit1 Register = 0x02
	Digit2 Register = 0x03
	Digit3 Register = 0x04
	Digit4 Register = 0x05
	Digit5 Register = 0x06
	Digit6 Register = 0x07
	Digit7 Register = 0x08

	DecodeMode      Register = 0x09
	GlobalIntensity Register = 0x0A
	ScanLimit       Register = 0x0B
	Shutdown        Register = 0x0C
	SelfAddressing  Register = 0x0D
	Feature         Register = 0x0E
	DisplayTest     Register = 0x0F

	// Intensity of two adjacent digits, one nibble each. Digit N is in
	// Digit01Intensity+N/2, low nibble for even N.
	Digit01Intensity Register = 0x10
	Digit23Intensity Register = 0x11
	Digit45Intensity Register = 0x12
	Digit67Intensity Register = 0x13

	// Segment diagnostics. Digit N lives at Digit0Diag+N.
	Digit0Diag Register = 0x14
	Digit1Diag Register = 0x15
	Digit2Diag Register = 0x16
	Digit3Diag Register = 0x17
	Digit4Diag Register = 0x18
	Digit5Diag Register = 0x19
	Digit6Diag Register = 0x1A
	Digit7Diag Register = 0x1B

	// Key scan results.
	KeyA Register = 0x1C
	KeyB Register = 0x1D
)

// Bit indices in the Feature register.
const (
	FeatureExtClock   = 0
	FeatureReset      = 1
	FeatureFont       = 2
	FeatureBlink      = 4
	FeatureBlinkFreq  = 5
	FeatureBlinkSync  = 6
	FeatureBlinkStart = 7
)

// Shutdown register values.
const (
	shutdownRunning        byte = 0x01
	shutdownKeepFeatures   byte = 0x80
	selfAddressingUseStrap byte = 0x01
)

// BroadcastAddr is the address every AS1115 answers to until it has been
// told to adopt its strapped address.
const BroadcastAddr uint16 = 0x00

var registerNames = map[Register]string{
	DecodeMode:       "DecodeMode",
	GlobalIntensity:  "GlobalIntensity",
	ScanLimit:        "ScanLimit",
	Shutdown:         "Shutdown",
	SelfAddressing:   "SelfAddressing",
	Feature:          "Feature",
	DisplayTest:      "DisplayTest",
	Digit01Intensity: "Digit01Intensity",
	Digit23Intensity: "Digit23Intensity",
	Digit45Intensity: "Digit45Intensity",
	Digit67Intensity: "Digit67Intensity",
	KeyA:             "KeyA",
	KeyB:             "KeyB",
}

// String returns the datasheet name of the register.
func (r Register) String() string {
	switch {
	case r >= Digit0 && r <= Digit7:
		return fmt.Sprintf("Digit%d", r-Digit0)
	case r >= Digit0Diag && r <= Digit7Diag:
		return fmt.Sprintf("Digit%dDiag", r-Digit0Diag)
	}
	if name, ok := registerNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Register(0x%02X)", byte(r))
}

// BusError reports a failed I²C transaction with the chip.
type BusError struct {
	Op   string // "read" or "write"
	Addr uint16
	Reg  Register
	Err  error
}

func (e *BusError) Error() string {
	return fmt.Sprintf("as1115: %s %s at 0x%02X: %v", e.Op, e.Reg, e.Addr, e.Err)
}

func (e *BusError) Unwrap() error {
	return e.Err
}

// ReadRegister reads one register.
func (d *Dev) ReadRegister(r Register) (byte, error) {
	if err := d.ready(); err != nil {
		return 0, err
	}
	return d.readReg(r)
}

// WriteRegister writes one register.
func (d *Dev) WriteRegister(r Register, v byte) error {
	if err := d.ready(); err != nil {
		return err
	}
	return d.writeReg(r, v)
}

// readReg selects the register and reads it back in a single combined
// transaction.
func (d *Dev) readReg(r Register) (byte, error) {
	var buf [1]byte
	if err := d.d.Tx([]byte{byte(r)}, buf[:]); err != nil {
		return 0, &BusError{Op: "read", Addr: d.d.Addr, Reg: r, Err: err}
	}
	return buf[0], nil
}

func (d *Dev) writeReg(r Register, v byte) error {
	return d.writeRegAt(d.d.Addr, r, v)
}

// writeRegAt writes a register of the chip at addr, which only differs from
// the handle address while chips are being readdressed.
func (d *Dev) writeRegAt(addr uint16, r Register, v byte) error {
	if err := d.d.Bus.Tx(addr, []byte{byte(r), v}, nil); err != nil {
		return &BusError{Op: "write", Addr: addr, Reg: r, Err: err}
	}
	return nil
}

// updateReg replaces the bits of r selected by mask with the same bits of v.
func (d *Dev) updateReg(r Register, mask, v byte) error {
	cur, err := d.readReg(r)
	if err != nil {
		return err
	}
	return d.writeReg(r, (cur&^mask)|(v&mask))
}

func (d *Dev) writeRegBit(r Register, bit uint, on bool) error {
	if bit > 7 {
		return errors.New("as1115: bit out of range")
	}
	var v byte
	if on {
		v = 0xFF
	}
	return d.updateReg(r, 1<<bit, v)
}

// writeRegNibble replaces the high or low nibble of r with v&0x0F.
func (d *Dev) writeRegNibble(r Register, high bool, v byte) error {
	shift := uint(0)
	if high {
		shift = 4
	}
	return d.updateReg(r, 0x0F<<shift, (v&0x0F)<<shift)
}
