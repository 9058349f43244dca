//go:build !(tinygo && bootdebug)

package app

import "flipview/hal"

func bootStep(hal.HAL, string) {}
