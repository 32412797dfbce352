// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "fmt"

// CapacityError is returned when no version holds the data.
type CapacityError struct {
	Mode   Mode
	Level  Level
	Length int // characters
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("qr: %d %s characters do not fit any version at level %s",
		e.Length, e.Mode, e.Level)
}

func (e *CapacityError) Unwrap() error { return ErrCapacity }

// Resolve returns the smallest version of t holding n characters of
// mode m at level l, and the width of its character count field.
func Resolve(t Tables, l Level, m Mode, n int) (Version, int, error) {
	if !l.Valid() {
		return 0, 0, ErrLevel
	}
	if getMode(m) == nil {
		return 0, 0, ErrMode
	}
	lo, hi := t.Versions()
	for v := lo; v <= hi; v++ {
		c, ok := t.Capacity(v, l, m)
		if !ok || c < n {
			continue
		}
		w, ok := t.CountBits(v, m)
		if !ok {
			return 0, 0, fmt.Errorf("%w for %s mode in version %s",
				ErrBitWidth, m, v)
		}
		return v, w, nil
	}
	return 0, 0, &CapacityError{m, l, n}
}
