package tr181

// IsDefaultRoute reports whether the entry matches every destination, i.e.
// both DestIPAddress and DestSubnetMask are 0.0.0.0. An empty mask counts
// as 0.0.0.0.
func (f *IPv4Forwarding) IsDefaultRoute() bool {
	return f.DestIPAddress.IsUnspecified() && (f.DestSubnetMask == "" || f.DestSubnetMask.IsUnspecified())
}

// DefaultRoute returns the first enabled default route of the router, or
// nil.
func (r *Router) DefaultRoute() *IPv4Forwarding {
	for i := range r.IPv4Forwarding {
		if f := &r.IPv4Forwarding[i]; f.Enable && f.IsDefaultRoute() {
			return f
		}
	}
	return nil
}
