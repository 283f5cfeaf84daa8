// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockheight

import (
	"time"

	"github.com/bitmark-inc/logger"
)

// Clock - reads the height and, as a background process, advances it
type Clock struct {
	log      *logger.L
	interval time.Duration
}

// NewClock - a clock producing one block per interval
func NewClock(interval time.Duration) *Clock {
	return &Clock{
		log:      logger.New("clock"),
		interval: interval,
	}
}

// Height - current block height
func (c *Clock) Height() uint64 {
	return Height()
}

// Run - advance the height until shutdown
func (c *Clock) Run(args interface{}, shutdown <-chan struct{}) {
	log := c.log
	log.Infof("starting…  interval: %s", c.interval)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-ticker.C:
			_, err := Advance()
			if nil != err {
				log.Errorf("advance error: %s", err)
			}
		}
	}
	log.Info("stopped")
}
