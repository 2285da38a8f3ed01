// SPDX-License-Identifier: GPL-2.0-or-later

package bsp

import (
	"fmt"
)

// FormatError reports a version tag the loader does not understand.
// Nothing of the file has been interpreted when it is returned.
type FormatError struct {
	Name    string
	Version int32
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s has wrong version number (%d should be %d)",
		e.Name, e.Version, Version)
}

// BoundsError reports a lump whose declared extent is inconsistent,
// either overrunning the file or not holding a whole number of records.
type BoundsError struct {
	Name string
	Lump string
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("MOD_LoadBmodel: funny lump size for %s in %s",
		e.Lump, e.Name)
}

// LimitError reports a record count above a fixed engine maximum.
type LimitError struct {
	Name  string
	What  string
	Count int
	Max   int
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("%s has %d %s, max = %d", e.Name, e.Count, e.What, e.Max)
}
