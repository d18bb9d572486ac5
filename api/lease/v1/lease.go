// Package leasev1 defines the resource lease attached to ownership-gated
// requests.
package leasev1

// Lease identifies a client's claim on a robot resource. Sequence numbers
// establish ordering between competing claims within an epoch.
type Lease struct {
	Resource string   `json:"resource,omitempty"`
	Epoch    string   `json:"epoch,omitempty"`
	Sequence []uint32 `json:"sequence,omitempty"`
}

// Clone returns a deep copy of the lease.
func (l *Lease) Clone() *Lease {
	if l == nil {
		return nil
	}
	c := &Lease{Resource: l.Resource, Epoch: l.Epoch}
	if l.Sequence != nil {
		c.Sequence = append([]uint32(nil), l.Sequence...)
	}
	return c
}
