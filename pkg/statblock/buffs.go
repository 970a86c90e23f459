package statblock

import "statcore/pkg/stat"

// ApplyBuff adds a new owned buff source, or replaces the existing one
// with the same BuffID (a reapplication refreshes duration and stacks
// rather than stacking two instances of the same buff), and triggers a
// rebuild.
func (b StatBlock) ApplyBuff(buff stat.Buff) StatBlock {
	buffs := make([]stat.Buff, 0, len(b.BuffSources)+1)
	replaced := false
	for _, existing := range b.BuffSources {
		if existing.BuffID == buff.BuffID {
			buffs = append(buffs, buff)
			replaced = true
			continue
		}
		buffs = append(buffs, existing)
	}
	if !replaced {
		buffs = append(buffs, buff)
	}
	b.BuffSources = buffs
	return b.Rebuild(b.externalSources)
}

// RemoveBuff drops the owned buff with the given id, if present, and
// triggers a rebuild. A miss is a no-op.
func (b StatBlock) RemoveBuff(id string) StatBlock {
	buffs := make([]stat.Buff, 0, len(b.BuffSources))
	found := false
	for _, existing := range b.BuffSources {
		if existing.BuffID == id {
			found = true
			continue
		}
		buffs = append(buffs, existing)
	}
	if !found {
		return b
	}
	b.BuffSources = buffs
	return b.Rebuild(b.externalSources)
}

// TickBuffs drains delta seconds off every owned buff's
// DurationRemaining and drops any that fall inactive, triggering a
// rebuild only if the owned set actually changed -- an unexpired buff's
// contribution to the accumulator never changes between ticks, so a
// rebuild would be wasted work.
func (b StatBlock) TickBuffs(delta float64) StatBlock {
	buffs := make([]stat.Buff, 0, len(b.BuffSources))
	changed := false
	for _, buff := range b.BuffSources {
		buff.DurationRemaining -= delta
		if buff.IsActive() {
			buffs = append(buffs, buff)
		} else {
			changed = true
		}
	}
	b.BuffSources = buffs
	if !changed {
		return b
	}
	return b.Rebuild(b.externalSources)
}
