// Copyright The Sitestack Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package progress renders a spinner in the terminal while a deployment is in flight.
package progress

import (
	"fmt"
	"io"
	"time"

	spin "github.com/briandowns/spinner"
)

// Spinner is an indicator that a long operation is taking place.
type Spinner struct {
	internal *spin.Spinner
}

// NewSpinner returns a Spinner that writes to the given writer.
func NewSpinner(w io.Writer) *Spinner {
	s := spin.New(charset, 125*time.Millisecond, spin.WithHiddenCursor(true))
	s.Writer = w
	return &Spinner{
		internal: s,
	}
}

// Start starts the spinner suffixed with a label.
func (s *Spinner) Start(label string) {
	s.internal.Suffix = fmt.Sprintf(" %s", label)
	s.internal.Start()
}

// Stop stops the spinner and replaces it with a label.
func (s *Spinner) Stop(label string) {
	s.internal.FinalMSG = fmt.Sprintf("%s\n", label)
	s.internal.Stop()
}
