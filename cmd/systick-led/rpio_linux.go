package main

import (
	"github.com/randomizedcoder/systick-led/internal/board"
	"github.com/randomizedcoder/systick-led/internal/bsp"
	"github.com/randomizedcoder/systick-led/internal/gpio"
)

func openRPIO(profile board.Profile) (bsp.Board, gpio.Pin, error) {
	return bsp.RPIO{}, gpio.OpenRPIO(profile.LED.BCM), nil
}
