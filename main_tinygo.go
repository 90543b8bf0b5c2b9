//go:build tinygo

package main

import (
	"cydpanel/app"
	"cydpanel/hal"
)

func main() {
	app.Run(hal.New())
}
