//go:build tinygo && bootdebug

package app

import (
	"machine"

	"flipview/hal"
)

// bootStep reports start-up progress on the UART, the USB CDC port and the
// top screen, for boards where nothing else is visible yet.
func bootStep(h hal.HAL, msg string) {
	line := "bootdiag: " + msg
	if l := h.Logger(); l != nil {
		l.WriteLineString(line)
	}
	if usb := machine.USBCDC; usb != nil {
		_, _ = usb.Write([]byte(line + "\r\n"))
	}

	disp := h.Display()
	if disp == nil {
		return
	}
	showLines(disp.Top(), []string{"flipview boot", msg})
}
