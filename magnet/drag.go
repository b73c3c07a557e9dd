// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package magnet

// StartDragging picks the magnet under (x, y), marks it dragging and moves
// it to the top of the z-order. It returns nil when nothing was hit.
func (mg *Manager) StartDragging(x, y float64) *Magnet {
	m := mg.At(x, y)
	if m == nil {
		return nil
	}
	if prev := mg.Dragging(); prev != nil && prev != m {
		mg.release(prev)
	}
	m.Dragging = true
	m.offsetX = x - m.X
	m.offsetY = y - m.Y
	mg.promote(m)
	mg.opts.logger.Debug("magnet: drag started", "id", m.ID)
	mg.notifyChange(m)
	return m
}

// MoveDragging moves the dragging magnet to the pointer minus the grab
// offset, clamped into the canvas. It returns the moved magnet or nil.
func (mg *Manager) MoveDragging(x, y float64) *Magnet {
	m := mg.Dragging()
	if m == nil {
		return nil
	}
	m.X = x - m.offsetX
	m.Y = y - m.offsetY
	mg.clamp(m)
	mg.notifyChange(m)
	return m
}

// StopDragging ends the current drag and returns the released magnet, or
// nil if none was dragging.
func (mg *Manager) StopDragging(_, _ float64) *Magnet {
	m := mg.Dragging()
	if m == nil {
		return nil
	}
	mg.release(m)
	mg.opts.logger.Debug("magnet: drag stopped", "id", m.ID)
	mg.notifyChange(m)
	return m
}

func (mg *Manager) release(m *Magnet) {
	m.Dragging = false
	m.offsetX, m.offsetY = 0, 0
}

func (mg *Manager) promote(m *Magnet) {
	for i, cur := range mg.magnets {
		if cur == m {
			mg.magnets = append(mg.magnets[:i], mg.magnets[i+1:]...)
			break
		}
	}
	mg.magnets = append(mg.magnets, m)
}

// clamp keeps the scaled box inside the canvas. A box larger than the
// canvas is centred on that axis.
func (mg *Manager) clamp(m *Magnet) {
	hw, hh := m.HalfExtents()
	if w := mg.opts.width; w > 0 {
		m.X = clampAxis(m.X, hw, w)
	}
	if h := mg.opts.height; h > 0 {
		m.Y = clampAxis(m.Y, hh, h)
	}
}

func clampAxis(v, half, size float64) float64 {
	if 2*half > size {
		return size / 2
	}
	return min(max(v, half), size-half)
}
