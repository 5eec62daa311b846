// Package tr196 holds the node types of the TR-196 Femto Access Point
// service data model (FAPService:2.1).
package tr196
