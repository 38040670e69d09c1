package viper

import "fmt"

// MissingElementError reports a dataset that lacks a required element table
// (typically "vertex" or "face").
type MissingElementError struct {
	Dataset string
	Element string
}

func (e *MissingElementError) Error() string {
	return fmt.Sprintf("viper: dataset %q has no %q element", e.Dataset, e.Element)
}

// MissingPropertyError reports a mandatory property that is not present on
// an element table.
type MissingPropertyError struct {
	Element  string
	Property string
}

func (e *MissingPropertyError) Error() string {
	return fmt.Sprintf("viper: %s element is missing required property %q", e.Element, e.Property)
}
