package catalog

import (
	"fmt"
)

// MissingParamError is returned when a statement needs a parameter that was not supplied.
type MissingParamError struct {
	Statement string
	Param     string
}

func (e MissingParamError) Error() string {
	return fmt.Sprintf("statement %q requires parameter %q but it is missing or blank", e.Statement, e.Param)
}

// InvalidParamError is returned when a parameter value cannot be placed inside a SQL string literal.
type InvalidParamError struct {
	Param  string
	Reason string
}

func (e InvalidParamError) Error() string {
	return fmt.Sprintf("parameter %q is invalid: %v", e.Param, e.Reason)
}

// OrderError is returned when statements would run before the tables they depend on.
type OrderError struct {
	Kind      Kind
	Statement string
	Reason    string
}

func (e OrderError) Error() string {
	return fmt.Sprintf("%v statement %q is out of order: %v", e.Kind, e.Statement, e.Reason)
}
