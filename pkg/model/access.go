package model

import (
	"fmt"
	"strings"
)

// Access flags for parameters and objects.
//
// For a parameter, AccessWrite means the ACS may set the value. For a
// multi-instance object, AccessWrite means the ACS may add and delete rows.
type Access uint8

const (
	// AccessRead allows reading the value.
	AccessRead Access = 1 << iota

	// AccessWrite allows the ACS to write the value.
	AccessWrite

	// AccessReadOnly is read access only. The CPE alone changes the value.
	AccessReadOnly = AccessRead

	// AccessReadWrite is read and write access.
	AccessReadWrite = AccessRead | AccessWrite
)

// CanRead returns true if reading is allowed.
func (a Access) CanRead() bool { return a&AccessRead != 0 }

// CanWrite returns true if the ACS may write.
func (a Access) CanWrite() bool { return a&AccessWrite != 0 }

// String returns the access mode as used in the data model definitions.
func (a Access) String() string {
	switch {
	case a.CanWrite():
		return "readWrite"
	case a.CanRead():
		return "readOnly"
	default:
		return "-"
	}
}

// ParseAccess parses "readOnly" or "readWrite". An empty string is readOnly.
func ParseAccess(s string) (Access, error) {
	switch strings.TrimSpace(s) {
	case "", "readOnly":
		return AccessReadOnly, nil
	case "readWrite":
		return AccessReadWrite, nil
	default:
		return 0, fmt.Errorf("unknown access %q", s)
	}
}

// Notify is the active notification policy of a parameter.
type Notify uint8

const (
	// NotifyNormal lets the ACS turn active notification on or off.
	NotifyNormal Notify = iota

	// NotifyForceEnabled means active notification is always on.
	NotifyForceEnabled

	// NotifyForceDefaultEnabled means active notification is on by default.
	NotifyForceDefaultEnabled

	// NotifyCanDeny means the CPE may reject a request to enable active
	// notification.
	NotifyCanDeny
)

var notifyNames = []string{"normal", "forceEnabled", "forceDefaultEnabled", "canDeny"}

// String returns the notification policy name.
func (n Notify) String() string {
	if int(n) < len(notifyNames) {
		return notifyNames[n]
	}
	return "unknown"
}

// ParseNotify parses a notification policy name. An empty string is normal.
func ParseNotify(s string) (Notify, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return NotifyNormal, nil
	}
	for i, name := range notifyNames {
		if name == s {
			return Notify(i), nil
		}
	}
	return 0, fmt.Errorf("unknown notify policy %q", s)
}
