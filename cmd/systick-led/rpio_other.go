//go:build !linux

package main

import (
	"github.com/pkg/errors"

	"github.com/randomizedcoder/systick-led/internal/board"
	"github.com/randomizedcoder/systick-led/internal/bsp"
	"github.com/randomizedcoder/systick-led/internal/gpio"
)

func openRPIO(board.Profile) (bsp.Board, gpio.Pin, error) {
	return nil, nil, errors.New("rpio backend is only available on linux")
}
