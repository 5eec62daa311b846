package tr143

import (
	"time"

	"github.com/cwmp-go/tr069/pkg/types"
)

// Duration returns the transfer time between BOMTime and EOMTime, or false
// while the test has not completed.
func (d *DownloadDiagnostics) Duration() (time.Duration, bool) {
	return transferTime(d.DiagnosticsState, d.BOMTime, d.EOMTime)
}

// Throughput returns the measured rate in bits per second over
// TestBytesReceived, or false while the test has not completed.
func (d *DownloadDiagnostics) Throughput() (float64, bool) {
	elapsed, ok := d.Duration()
	if !ok {
		return 0, false
	}
	return bitsPerSecond(uint64(d.TestBytesReceived), elapsed), true
}

// Duration returns the transfer time between BOMTime and EOMTime, or false
// while the test has not completed.
func (u *UploadDiagnostics) Duration() (time.Duration, bool) {
	return transferTime(u.DiagnosticsState, u.BOMTime, u.EOMTime)
}

// Throughput returns the measured rate in bits per second over
// TestFileLength, or false while the test has not completed.
func (u *UploadDiagnostics) Throughput() (float64, bool) {
	elapsed, ok := u.Duration()
	if !ok {
		return 0, false
	}
	return bitsPerSecond(uint64(u.TestFileLength), elapsed), true
}

func transferTime(state types.DiagnosticsState, bom, eom types.DateTime) (time.Duration, bool) {
	if state != types.DiagnosticsCompleted || bom.IsUnknown() || eom.IsUnknown() {
		return 0, false
	}
	elapsed := eom.Sub(bom.Time)
	if elapsed <= 0 {
		return 0, false
	}
	return elapsed, true
}

func bitsPerSecond(bytes uint64, elapsed time.Duration) float64 {
	return float64(bytes*8) / elapsed.Seconds()
}
