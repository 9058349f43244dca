//go:build tinygo

package main

import (
	"flipview/app"
	"flipview/hal"
)

func main() {
	h := hal.New()
	if err := app.Run(h, app.Config{}); err != nil {
		if l := h.Logger(); l != nil {
			l.WriteLineString("flipview: " + err.Error())
		}
		// Leave the error screen up.
		select {}
	}
}
