// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package verify

import (
	"time"
)

// SetClock - fix the time seen by a guard, started one window earlier
func (g *Guard) SetClock(now func() time.Time) {
	g.now = now
	g.started = now().Add(-g.window).Unix()
}

// SetStarted - fix the second a guard was created
func (g *Guard) SetStarted(started time.Time) {
	g.started = started.Unix()
}
