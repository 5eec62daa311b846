// Package tr143 holds the TR-143 throughput performance test objects
// (InternetGatewayDevice:1.4): the download and upload diagnostics and the
// UDP echo server.
//
// A test is started by the ACS writing Requested to DiagnosticsState. When
// the CPE finishes it sets Completed or one of the Error_ states and fills
// in the timestamps and byte counts, from which Duration and Throughput
// compute the result.
package tr143
