package pool

// Snapshot is a point-in-time view of slot availability. Under concurrent
// activity it is not linearizable — Free is a relaxed scan taken slot by
// slot, so distinct slots may be reflected at different moments — but
// Free+Used always equals Total by construction, since Used is derived
// from Free rather than scanned independently.
type Snapshot struct {
	Total              int
	Free               int
	Used               int
	UtilizationPercent float64
}

// Snapshot scans the slot array and reports current availability. The scan
// is relaxed and eventually consistent: a snapshot taken during heavy
// concurrent allocation/release traffic is a plausible instant, not a
// guaranteed one.
func (p *Pool[T]) Snapshot() Snapshot {
	free := 0
	for i := range p.slots {
		if !p.slots[i].occupied.Load() {
			free++
		}
	}

	total := p.capacity
	used := total - free

	var utilization float64
	if total > 0 {
		utilization = float64(used) / float64(total) * 100
	}

	return Snapshot{
		Total:              total,
		Free:               free,
		Used:               used,
		UtilizationPercent: utilization,
	}
}
