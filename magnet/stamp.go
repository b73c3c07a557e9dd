// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package magnet

// Stamp rasterizes m through the stamp listener. It is a no-op, returning
// false, when m is nil, has no image yet, or is inside its cooldown.
func (mg *Manager) Stamp(m *Magnet) bool {
	if m == nil || m.Image == nil || m.Stamping {
		return false
	}
	m.Stamping = true
	if mg.opts.onStamp != nil {
		mg.opts.onStamp(m)
	}
	m.Stamped = true
	mg.opts.scheduler.After(StampCooldown, func() {
		m.Stamping = false
	})
	mg.opts.logger.Debug("magnet: stamped", "id", m.ID)
	return true
}
