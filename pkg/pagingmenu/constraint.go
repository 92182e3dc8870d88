package pagingmenu

// WidthConstraint pins a content's width. A view owns at most one active
// constraint; replacing it deactivates the old one first.
type WidthConstraint struct {
	constant float64
	active   bool
}

func (c *WidthConstraint) Constant() float64 {
	return c.constant
}

func (c *WidthConstraint) IsActive() bool {
	return c != nil && c.active
}

// Deactivate releases the constraint. Calling it twice is harmless.
func (c *WidthConstraint) Deactivate() {
	if c != nil {
		c.active = false
	}
}

// replaceWidthConstraint deactivates old and returns an active constraint
// holding width.
func replaceWidthConstraint(old *WidthConstraint, width float64) *WidthConstraint {
	old.Deactivate()
	return &WidthConstraint{constant: width, active: true}
}
