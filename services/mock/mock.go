// Package mock provides canned sensor readings for tests and demos,
// so nothing in this module needs real hardware. Every generator
// returns a fully populated record stamped with the current wall clock;
// none of them can fail.
package mock

import "sensor-core/utils"

func nowMs() int64 { return utils.NowMillis() }
