package skribi_errors

import (
	"errors"
	"fmt"
	"io"
)

type ErrorHandler interface {
	AddError(err error)
	HasErrors() bool
	Flush()
}

type SkribiErrorHandler struct {
	errors []error
	writer io.Writer
}

func NewErrorHandler(outputWriter io.Writer) ErrorHandler {
	return &SkribiErrorHandler{
		errors: make([]error, 0),
		writer: outputWriter,
	}
}

func (eh *SkribiErrorHandler) AddError(err error) {
	if err == nil {
		return
	}

	eh.errors = append(eh.errors, err)
}

func (eh *SkribiErrorHandler) HasErrors() bool {
	return len(eh.errors) != 0
}

// Flush writes every collected error and forgets them. The session keeps
// running afterwards.
func (eh *SkribiErrorHandler) Flush() {
	for _, err := range eh.errors {
		var diag *Diagnostic
		if errors.As(err, &diag) {
			diag.Render(eh.writer)
			continue
		}

		fmt.Fprintf(eh.writer, "Error %s\n", err)
	}

	eh.errors = eh.errors[:0]
}
