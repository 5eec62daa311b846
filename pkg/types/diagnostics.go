package types

import "strings"

// DiagnosticsState is the state of a diagnostics test. The ACS writes
// Requested to start a test; the CPE reports Completed or an Error_ value.
type DiagnosticsState string

// Diagnostics states shared by the TR-143 and TR-181 diagnostics objects.
const (
	DiagnosticsNone                    DiagnosticsState = "None"
	DiagnosticsRequested               DiagnosticsState = "Requested"
	DiagnosticsCanceled                DiagnosticsState = "Canceled"
	DiagnosticsCompleted               DiagnosticsState = "Completed"
	DiagnosticsErrorCannotResolveHost  DiagnosticsState = "Error_CannotResolveHostName"
	DiagnosticsErrorNoRouteToHost      DiagnosticsState = "Error_NoRouteToHost"
	DiagnosticsErrorInitConnection     DiagnosticsState = "Error_InitConnectionFailed"
	DiagnosticsErrorNoResponse         DiagnosticsState = "Error_NoResponse"
	DiagnosticsErrorTransferFailed     DiagnosticsState = "Error_TransferFailed"
	DiagnosticsErrorPasswordRequest    DiagnosticsState = "Error_PasswordRequestFailed"
	DiagnosticsErrorLoginFailed        DiagnosticsState = "Error_LoginFailed"
	DiagnosticsErrorNoTransferMode     DiagnosticsState = "Error_NoTransferMode"
	DiagnosticsErrorNoPASV             DiagnosticsState = "Error_NoPASV"
	DiagnosticsErrorIncorrectSize      DiagnosticsState = "Error_IncorrectSize"
	DiagnosticsErrorTimeout            DiagnosticsState = "Error_Timeout"
	DiagnosticsErrorInternal           DiagnosticsState = "Error_Internal"
	DiagnosticsErrorOther              DiagnosticsState = "Error_Other"
	DiagnosticsErrorNoCWD              DiagnosticsState = "Error_NoCWD"
	DiagnosticsErrorNoSTOR             DiagnosticsState = "Error_NoSTOR"
	DiagnosticsErrorNoTransferComplete DiagnosticsState = "Error_NoTransferComplete"
	DiagnosticsErrorNoResponseFromPeer DiagnosticsState = "Error_NoResponseFromPeer"
)

func (s DiagnosticsState) String() string { return string(s) }

// IsError returns true for the Error_ states.
func (s DiagnosticsState) IsError() bool {
	return strings.HasPrefix(string(s), "Error_")
}

// IsFinal returns true once a test has stopped, successfully or not.
func (s DiagnosticsState) IsFinal() bool {
	return s == DiagnosticsCompleted || s == DiagnosticsCanceled || s.IsError()
}
