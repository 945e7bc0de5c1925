// SPDX-FileCopyrightText: 2026 The lldlink authors
//
// SPDX-License-Identifier: MIT

package lld

import "sync"

// Driver runs a single LLD driver with a complete argument vector,
// including the program name token if the driver needs one. It
// returns the driver's success flag along with the text written to
// its error and output streams. An error is returned only if the
// driver itself is unavailable.
//
// Drivers are not safe for concurrent use. [Invoke] serializes all
// calls with the same flavor.
type Driver func(argv []string) (DriverOutput, error)

// DriverOutput is the raw outcome of one driver run.
type DriverOutput struct {
	Ok      bool
	ErrText string
	OutText string
}

// drivers is populated at startup by the driver implementation built
// into the binary. See driver_cgo.go and driver_stub.go.
var drivers [numFlavors]Driver

// One lock per driver. LLD's drivers are not thread safe, not even
// for unrelated jobs of the same flavor. Different drivers do not
// share state and may run concurrently. The locks live for the whole
// process.
var flavorLocks [numFlavors]sync.Mutex

// Invoke runs the LLD driver selected by flavor with the given
// arguments. Argument zero is the first real linker argument. The
// synthetic program name some drivers require is added internally.
//
// Invoke blocks the calling goroutine for the full duration of the
// link. There is no cancellation; a started link always runs to
// completion.
//
// An unknown flavor yields a failed [Result] without diagnostics,
// without touching any lock or driver.
func Invoke(flavor Flavor, args []string) Result {
	if !flavor.isKnown() {
		return Result{}
	}

	output, err := runDriver(flavor, args)
	if err != nil {
		return Result{Messages: err.Error()}
	}

	return Result{
		Success:  output.Ok,
		Messages: output.combined(),
	}
}

// Link runs the driver like [Invoke] but converts the outcome into an
// error: nil on success, a [*LinkError] carrying the diagnostics on a
// failed link, [ErrUnknownFlavor] for a flavor outside the supported
// set. Informational output of a successful run is discarded; use
// [Invoke] if it matters.
func Link(flavor Flavor, args []string) error {
	if !flavor.isKnown() {
		return ErrUnknownFlavor
	}

	output, err := runDriver(flavor, args)
	if err != nil {
		return err
	}

	if !output.Ok {
		return &LinkError{Flavor: flavor, Messages: output.combined()}
	}

	return nil
}

func runDriver(flavor Flavor, args []string) (DriverOutput, error) {
	argv := flavor.argv(args)

	flavorLocks[flavor].Lock()
	defer flavorLocks[flavor].Unlock()

	return drivers[flavor](argv)
}

// combined merges both diagnostic streams into the single message
// string of the boundary contract. Error stream first, always.
func (o DriverOutput) combined() string {
	return o.ErrText + o.OutText
}
