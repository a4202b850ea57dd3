package system

import (
	"fmt"
	"unicode"

	"github.com/Past9/stm32-api-generator/internal/svd"
)

// Gpio describes one GPIO port. The port letter is taken from the
// peripheral name, so a port peripheral must be named like "GPIOA".
type Gpio struct {
	Name Name
}

func NewGpio(p *svd.Peripheral) (Gpio, error) {
	runes := []rune(p.Name)
	if len(runes) < 5 || !unicode.IsLetter(runes[4]) {
		return Gpio{}, fmt.Errorf(
			"peripheral %q is not named as expected for a GPIO port (i.e. 'GPIOA')", p.Name)
	}
	return Gpio{
		Name: NameOf(fmt.Sprintf("gpio_%c", unicode.ToLower(runes[4]))),
	}, nil
}
