// Package camera provides a 2D camera system for viewport control.
package camera

// Camera controls the viewport into the simulation world.
// Supports pan and zoom; the view is clamped to the world bounds.
type Camera struct {
	// Position is the camera center in world coordinates
	X, Y float32

	// Zoom level (1.0 = 1:1, 2.0 = 2x magnification)
	Zoom float32

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float32

	// World dimensions (for clamping)
	WorldW, WorldH float32

	// Zoom constraints
	MinZoom, MaxZoom float32
}

// New creates a camera centered on the world with 1:1 zoom.
func New(viewportW, viewportH, worldW, worldH float32) *Camera {
	// Minimum zoom keeps the visible area inside the world:
	// at zoom Z the visible world area is (viewportW/Z, viewportH/Z).
	minZoom := viewportW / worldW
	if z := viewportH / worldH; z > minZoom {
		minZoom = z
	}

	c := &Camera{
		X:         worldW / 2,
		Y:         worldH / 2,
		Zoom:      1.0,
		ViewportW: viewportW,
		ViewportH: viewportH,
		WorldW:    worldW,
		WorldH:    worldH,
		MinZoom:   minZoom,
		MaxZoom:   4.0,
	}
	if c.Zoom < c.MinZoom {
		c.Zoom = c.MinZoom
	}
	c.clampPosition()
	return c
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	sx = c.ViewportW/2 + (wx-c.X)*c.Zoom
	sy = c.ViewportH/2 + (wy-c.Y)*c.Zoom
	return sx, sy
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	wx = c.X + (sx-c.ViewportW/2)/c.Zoom
	wy = c.Y + (sy-c.ViewportH/2)/c.Zoom
	return wx, wy
}

// IsVisible returns true if a circle at (wx, wy) with the given radius could
// be visible on screen (conservative check for culling).
func (c *Camera) IsVisible(wx, wy, radius float32) bool {
	halfW := c.ViewportW/(2*c.Zoom) + radius
	halfH := c.ViewportH/(2*c.Zoom) + radius
	dx := wx - c.X
	dy := wy - c.Y
	return absf(dx) <= halfW && absf(dy) <= halfH
}

// Pan moves the camera by a screen-space delta.
func (c *Camera) Pan(dxScreen, dyScreen float32) {
	c.X -= dxScreen / c.Zoom
	c.Y -= dyScreen / c.Zoom
	c.clampPosition()
}

// ZoomAt zooms by factor keeping the world point under (sx, sy) fixed.
func (c *Camera) ZoomAt(factor, sx, sy float32) {
	wx, wy := c.ScreenToWorld(sx, sy)

	c.Zoom *= factor
	if c.Zoom < c.MinZoom {
		c.Zoom = c.MinZoom
	}
	if c.Zoom > c.MaxZoom {
		c.Zoom = c.MaxZoom
	}

	// Re-anchor so the zoomed point stays under the cursor.
	nx, ny := c.ScreenToWorld(sx, sy)
	c.X += wx - nx
	c.Y += wy - ny
	c.clampPosition()
}

// Resize updates the viewport dimensions after a window resize.
func (c *Camera) Resize(viewportW, viewportH float32) {
	c.ViewportW = viewportW
	c.ViewportH = viewportH

	minZoom := viewportW / c.WorldW
	if z := viewportH / c.WorldH; z > minZoom {
		minZoom = z
	}
	c.MinZoom = minZoom
	if c.Zoom < c.MinZoom {
		c.Zoom = c.MinZoom
	}
	c.clampPosition()
}

// clampPosition keeps the visible area inside the world bounds.
func (c *Camera) clampPosition() {
	halfW := c.ViewportW / (2 * c.Zoom)
	halfH := c.ViewportH / (2 * c.Zoom)

	c.X = clampf(c.X, halfW, c.WorldW-halfW)
	c.Y = clampf(c.Y, halfH, c.WorldH-halfH)

	// Degenerate case: visible area larger than the world; center it.
	if halfW*2 > c.WorldW {
		c.X = c.WorldW / 2
	}
	if halfH*2 > c.WorldH {
		c.Y = c.WorldH / 2
	}
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func clampf(v, lo, hi float32) float32 {
	if lo > hi {
		return (lo + hi) / 2
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
