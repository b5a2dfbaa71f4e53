// Package as1115 controls an AS1115 8-digit LED display driver with key scan
// via I²C.
//
// See the examples for how to use this package.
package as1115

import (
	"errors"
	"fmt"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/devices/v3/as1115/font"
)

// Decode selects how the chip interprets one digit register.
type Decode byte

const (
	DecodeRaw  Decode = 0x00 // Segment pattern, bit 0 = segment G .. bit 7 = DP
	DecodeFont Decode = 0x01 // 4-bit code looked up in the active font
)

// DecodeAll is the decode mode of all eight digits at once.
type DecodeAll byte

const (
	DecodeAllRaw  DecodeAll = 0x00
	DecodeAllFont DecodeAll = 0xFF
)

// NumDigits is the number of digits the chip drives.
const NumDigits = 8

var (
	// ErrNotInitialized is returned by operations on a Dev that has not been
	// through Init or New.
	ErrNotInitialized = errors.New("as1115: device not initialized")
	// ErrHalted is returned by operations after Halt, until Begin is called.
	ErrHalted = errors.New("as1115: halted")

	errDigitRange = errors.New("as1115: digit out of range")
	errDecodeMode = errors.New("as1115: invalid decode mode")
	errFont       = errors.New("as1115: invalid font")
)

// sleep is replaced in tests.
var sleep = time.Sleep

// Opts is the configuration for the AS1115.
type Opts struct {
	// Addr is the 7-bit I²C address strapped on the chip (default: 0x00).
	Addr uint16
	// SettleDelay is how long Begin waits for self addressing to take effect
	// (default: 20ms).
	SettleDelay time.Duration
}

// DefaultOpts is used when nil is passed to Init or New.
var DefaultOpts = Opts{
	Addr:        BroadcastAddr,
	SettleDelay: 20 * time.Millisecond,
}

// Dev is the device handle for one AS1115.
//
// The zero value is valid but not usable: it may be declared statically and
// set up later with Init, once the I²C bus is available. Every other method
// returns ErrNotInitialized until then.
//
// Dev does no locking. Callers sharing a bus between goroutines must
// serialize access to it.
type Dev struct {
	d      *i2c.Dev
	settle time.Duration

	// font must match the font bit of the Feature register.
	font   font.Font
	halted bool
}

// New creates a new AS1115 device on bus and runs the Begin sequence.
//
// opts can be nil to use DefaultOpts.
func New(bus i2c.Bus, opts *Opts) (*Dev, error) {
	d := &Dev{}
	if err := d.Init(bus, opts); err != nil {
		return nil, err
	}
	if err := d.Begin(); err != nil {
		return nil, err
	}
	return d, nil
}

// Init binds d to the chip at opts.Addr on bus. It does not talk to the chip;
// call Begin for that.
//
// opts can be nil to use DefaultOpts.
func (d *Dev) Init(bus i2c.Bus, opts *Opts) error {
	if bus == nil {
		return errors.New("as1115: nil bus")
	}
	if opts == nil {
		opts = &DefaultOpts
	}
	if opts.Addr > 0x7F {
		return errors.New("as1115: address must be 7 bits")
	}
	settle := opts.SettleDelay
	if settle <= 0 {
		settle = DefaultOpts.SettleDelay
	}
	*d = Dev{
		d:      &i2c.Dev{Bus: bus, Addr: opts.Addr},
		settle: settle,
		font:   font.CodeB,
	}
	return nil
}

// Begin brings the chip up: every chip still at the broadcast address is
// woken and moved to its strapped address, then the chip at d's address is
// reset and configured to show all 8 digits at full intensity, decoded with
// the Hex font.
func (d *Dev) Begin() error {
	if d.d == nil {
		return ErrNotInitialized
	}
	// Wake chips at the factory address without touching their features,
	// then have them adopt the address set by their KEY pins.
	if err := d.writeRegAt(BroadcastAddr, Shutdown, shutdownRunning|shutdownKeepFeatures); err != nil {
		return err
	}
	if err := d.writeRegAt(BroadcastAddr, SelfAddressing, selfAddressingUseStrap); err != nil {
		return err
	}
	sleep(d.settle)

	// Running, feature register reset to defaults.
	if err := d.writeReg(Shutdown, shutdownRunning); err != nil {
		return err
	}
	d.halted = false
	// The feature reset puts the chip back on Code-B.
	d.font = font.CodeB

	if err := d.writeReg(ScanLimit, NumDigits-1); err != nil {
		return err
	}
	if err := d.SetGlobalIntensity(0xFF); err != nil {
		return err
	}
	if err := d.SetDecode(DecodeAllFont); err != nil {
		return err
	}
	return d.SetFont(font.Hex)
}

// ready returns the error an operation on d must fail with, if any.
func (d *Dev) ready() error {
	if d.d == nil {
		return ErrNotInitialized
	}
	if d.halted {
		return ErrHalted
	}
	return nil
}

func checkDigit(digit int) error {
	if digit < 0 || digit >= NumDigits {
		return errDigitRange
	}
	return nil
}

// WriteDigit writes c to digit (0-7).
//
// In decode mode c is translated through the active font, see package font.
// Characters the font does not know are written as is, which is how raw
// segment patterns reach undecoded digits. dp lights the decimal point.
func (d *Dev) WriteDigit(digit int, c byte, dp bool) error {
	if err := d.ready(); err != nil {
		return err
	}
	if err := checkDigit(digit); err != nil {
		return err
	}
	v := d.font.Encode(c)
	if dp {
		v |= font.DecimalPoint
	} else {
		v &^= font.DecimalPoint
	}
	return d.writeReg(Digit0+Register(digit), v)
}

// WriteString writes s to the digits from the left, digit 0 first.
//
// ASCII digits are converted to their codes, other characters go through
// WriteDigit. A '.' lights the decimal point of the preceding digit rather
// than taking a digit of its own, and is dropped when there is none.
// Characters beyond the 8th digit are ignored; digits past the end of s are
// left untouched.
func (d *Dev) WriteString(s string) error {
	if err := d.ready(); err != nil {
		return err
	}
	type cell struct {
		c  byte
		dp bool
	}
	cells := make([]cell, 0, NumDigits)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '.' {
			if n := len(cells); n > 0 && !cells[n-1].dp {
				cells[n-1].dp = true
			}
			continue
		}
		if len(cells) == NumDigits {
			break
		}
		if c >= '0' && c <= '9' {
			c -= '0'
		}
		cells = append(cells, cell{c: c})
	}
	for i, cl := range cells {
		if err := d.WriteDigit(i, cl.c, cl.dp); err != nil {
			return err
		}
	}
	return nil
}

// Rescale maps an 8-bit intensity (0-255) onto the 16 steps (0-15) of the
// chip, rounding down.
func Rescale(intensity byte) byte {
	return byte(uint(intensity) * 15 / 255)
}

// SetGlobalIntensity sets the intensity of the whole display (0-255).
func (d *Dev) SetGlobalIntensity(intensity byte) error {
	if err := d.ready(); err != nil {
		return err
	}
	return d.writeReg(GlobalIntensity, Rescale(intensity))
}

// SetDigitIntensity sets the intensity of one digit (0-255). The other digit
// sharing its register keeps its intensity.
func (d *Dev) SetDigitIntensity(digit int, intensity byte) error {
	if err := d.ready(); err != nil {
		return err
	}
	if err := checkDigit(digit); err != nil {
		return err
	}
	return d.writeRegNibble(Digit01Intensity+Register(digit/2), digit%2 == 1, Rescale(intensity))
}

// SetDigitDecode sets the decode mode of one digit.
func (d *Dev) SetDigitDecode(digit int, mode Decode) error {
	if err := d.ready(); err != nil {
		return err
	}
	if err := checkDigit(digit); err != nil {
		return err
	}
	if mode != DecodeRaw && mode != DecodeFont {
		return errDecodeMode
	}
	return d.writeRegBit(DecodeMode, uint(digit), mode == DecodeFont)
}

// SetDecode sets the decode mode of all digits.
func (d *Dev) SetDecode(mode DecodeAll) error {
	if err := d.ready(); err != nil {
		return err
	}
	return d.writeReg(DecodeMode, byte(mode))
}

// SetFont selects the font used by decoded digits.
//
// The font WriteDigit translates with only changes once the chip has
// accepted the new setting. On error both keep the previous font.
func (d *Dev) SetFont(f font.Font) error {
	if err := d.ready(); err != nil {
		return err
	}
	if f != font.CodeB && f != font.Hex {
		return errFont
	}
	if err := d.writeRegBit(Feature, FeatureFont, f == font.Hex); err != nil {
		return fmt.Errorf("as1115: set font %s: %w", f, err)
	}
	d.font = f
	return nil
}

// Font returns the font WriteDigit translates with.
func (d *Dev) Font() font.Font {
	return d.font
}

// TestMode turns all segments on at full intensity when on is true, and
// returns to normal operation otherwise.
func (d *Dev) TestMode(on bool) error {
	if err := d.ready(); err != nil {
		return err
	}
	var v byte
	if on {
		v = 0x01
	}
	return d.writeReg(DisplayTest, v)
}

// SetScanLimit sets how many digits (1-8) are multiplexed.
func (d *Dev) SetScanLimit(digits int) error {
	if err := d.ready(); err != nil {
		return err
	}
	if digits < 1 || digits > NumDigits {
		return errors.New("as1115: scan limit out of range")
	}
	return d.writeReg(ScanLimit, byte(digits-1))
}

// SetBlink enables or disables blinking of the whole display. fast selects
// the 1s period, otherwise the period is 2s.
func (d *Dev) SetBlink(on, fast bool) error {
	if err := d.ready(); err != nil {
		return err
	}
	var v byte
	if on {
		v |= 1 << FeatureBlink
	}
	if !fast {
		v |= 1 << FeatureBlinkFreq
	}
	return d.updateReg(Feature, 1<<FeatureBlink|1<<FeatureBlinkFreq, v)
}

// ReadKeys returns a snapshot of the key matrix, KEYA in the high byte and
// KEYB in the low byte. Keys are not debounced.
func (d *Dev) ReadKeys() (uint16, error) {
	if err := d.ready(); err != nil {
		return 0, err
	}
	a, err := d.readReg(KeyA)
	if err != nil {
		return 0, err
	}
	b, err := d.readReg(KeyB)
	if err != nil {
		return 0, err
	}
	return uint16(a)<<8 | uint16(b), nil
}

// ReadDiagnostic returns the segment diagnostic register of digit.
func (d *Dev) ReadDiagnostic(digit int) (byte, error) {
	if err := d.ready(); err != nil {
		return 0, err
	}
	if err := checkDigit(digit); err != nil {
		return 0, err
	}
	return d.readReg(Digit0Diag + Register(digit))
}

// Halt puts the chip in shutdown, keeping its feature register.
// After calling Halt, operations fail with ErrHalted until Begin is called.
func (d *Dev) Halt() error {
	if d.d == nil {
		return ErrNotInitialized
	}
	if err := d.writeReg(Shutdown, shutdownKeepFeatures); err != nil {
		return err
	}
	d.halted = true
	return nil
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	if d.d == nil {
		return "as1115.Dev{uninitialized}"
	}
	return fmt.Sprintf("as1115.Dev{%s@0x%02X}", d.d.Bus, d.d.Addr)
}

var _ conn.Resource = &Dev{}
