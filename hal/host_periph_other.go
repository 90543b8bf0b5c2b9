//go:build !linux && !tinygo

package hal

import "errors"

func openPeriphTouch(dev, irqName string) (Touch, error) {
	return nil, errors.New("spidev touch requires linux")
}
