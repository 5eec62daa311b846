// Package tr098 holds the node types of the TR-098 Internet Gateway Device
// data model (InternetGatewayDevice:1.4).
//
// The types in the *_gen.go files are generated by tr069-gen from the
// definitions under defs/tr098. Each type mirrors one object path, carries
// its descriptor as <Type>Object and registers with a model.Registry through
// Register.
//
// A route entry is built with the fluent With methods:
//
//	fwd := tr098.NewForwarding().
//		WithEnable(true).
//		WithDestIPAddress("0.0.0.0").
//		WithDestSubnetMask("0.0.0.0")
//
// The WPA key helpers in psk.go derive a PreSharedKey from a passphrase the
// way the CPE does.
package tr098
