package types

import "strconv"

// StatsCounter32 is a 32-bit statistics counter. It wraps to zero when it
// exceeds its maximum.
type StatsCounter32 uint32

func (c StatsCounter32) String() string { return strconv.FormatUint(uint64(c), 10) }

// Add returns the counter advanced by n, wrapping like the CPE does.
func (c StatsCounter32) Add(n uint32) StatsCounter32 { return c + StatsCounter32(n) }

// StatsCounter64 is a 64-bit statistics counter.
type StatsCounter64 uint64

func (c StatsCounter64) String() string { return strconv.FormatUint(uint64(c), 10) }

// Add returns the counter advanced by n.
func (c StatsCounter64) Add(n uint64) StatsCounter64 { return c + StatsCounter64(n) }
