package view

import (
	"errors"
	"fmt"
)

// Tab selects the listing category shown in the grid.
type Tab string

const (
	TabCars       Tab = "cars"
	TabProperties Tab = "properties"

	DefaultTab = TabCars
)

var ErrUnknownTab = errors.New("unknown tab")

// ParseTab maps a query value to a Tab; the empty string selects DefaultTab.
func ParseTab(s string) (Tab, error) {
	switch t := Tab(s); t {
	case "":
		return DefaultTab, nil
	case TabCars, TabProperties:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTab, s)
}

func (t Tab) Valid() bool { return t == TabCars || t == TabProperties }
