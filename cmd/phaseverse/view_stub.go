//go:build !ebiten

package main

import "errors"

var errNoGUI = errors.New("the view command requires the ebiten build tag; rebuild with `go build -tags ebiten ./cmd/phaseverse`")

func (c *cli) view() error {
	return errNoGUI
}
