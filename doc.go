// Package as1115 controls an AS1115 LED display driver via I²C.
//
// The AS1115 drives up to 8 digits of 7-segment LEDs (or 64 discrete LEDs)
// and scans up to 16 keys. It is register compatible with the MAX7219 for the
// display part, adds per-digit intensity, a hexadecimal font, blinking, LED
// diagnostics and key scanning, and talks I²C instead of SPI.
//
// # Display Characteristics
//
// - 8 digits, each either font-decoded (4-bit code) or raw (8 segments)
// - Code-B and Hex fonts, see package font
// - 16 intensity steps, global and per digit
// - Hardware blinking and display test
// - Two 8-bit key scan registers (KEYA, KEYB)
//
// # Hardware Connection
//
//	AS1115 Pin → System Pin
//	GND        → GND
//	VDD        → 3.3V (2.7V to 5.5V)
//	SCL        → I²C clock
//	SDA        → I²C data
//	IRQ        → Optional: GPIO, asserted on key press
//	KEYA/KEYB  → key matrix, also strap the chip address at power up
//
// # Addressing
//
// A freshly powered AS1115 answers at address 0x00. Begin broadcasts a self
// addressing command to 0x00, after which every chip moves to the address
// selected by the resistors on its KEYA/KEYB pins. Pass that address in
// Opts.Addr.
//
// # Basic Usage
//
//	package main
//
//	import (
//		"log"
//
//		"periph.io/x/conn/v3/i2c/i2creg"
//		"periph.io/x/devices/v3/as1115"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		if _, err := host.Init(); err != nil {
//			log.Fatal(err)
//		}
//		bus, err := i2creg.Open("")
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer bus.Close()
//
//		dev, err := as1115.New(bus, &as1115.Opts{Addr: 0x00})
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer dev.Halt()
//
//		// "C0FFEE" is representable with the Hex font Begin selects.
//		_ = dev.WriteString("C0FFEE")
//	}
//
// # Deferred Initialization
//
// The zero Dev can be declared before the bus exists and bound later:
//
//	var display as1115.Dev
//
//	func setup(bus i2c.Bus) error {
//		if err := display.Init(bus, nil); err != nil {
//			return err
//		}
//		return display.Begin()
//	}
//
// Until Init is called every method returns ErrNotInitialized.
//
// # Fonts
//
// The font Begin selects is Hex. WriteDigit translates characters through the
// font the chip is set to, so always change it with SetFont:
//
//	dev.SetFont(font.CodeB)
//	dev.WriteDigit(0, 'H', false)
//	dev.WriteDigit(1, 'E', false)
//	dev.WriteDigit(2, 'L', false)
//	dev.WriteDigit(3, 'P', true) // decimal point on
//
// For raw segments, switch the digit out of decode mode and write the pattern:
//
//	dev.SetDigitDecode(7, as1115.DecodeRaw)
//	dev.WriteDigit(7, 0x37, false)
//
// # Key Scan
//
//	keys, err := dev.ReadKeys() // KEYA<<8 | KEYB
//
// Keys are not debounced.
//
// # Concurrency
//
// Dev performs no locking. Several Dev on the same bus must not be used from
// concurrent goroutines without external synchronization.
//
// # Datasheet
//
// https://ams.com/documents/20143/36005/AS1115_DS000206_1-00.pdf
package as1115
