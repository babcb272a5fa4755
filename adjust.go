package booth

import "strings"

// AdjustmentState is the global photo look. It applies to every photo layer.
type AdjustmentState struct {
	Brightness float64 // percent, [50, 150]
	Contrast   float64 // percent, [50, 150]
	Saturation float64 // percent, [0, 200]
	Blur       float64 // pixels, [0, 10]
	Filter     string  // catalog filter id or raw filter expression; "none" is identity
}

// Adjustment ranges.
const (
	BrightnessMin, BrightnessMax = 50.0, 150.0
	ContrastMin, ContrastMax     = 50.0, 150.0
	SaturationMin, SaturationMax = 0.0, 200.0
	BlurMin, BlurMax             = 0.0, 10.0
)

// FilterNone is the identity named filter.
const FilterNone = "none"

// DefaultAdjustments returns the neutral look.
func DefaultAdjustments() AdjustmentState {
	return AdjustmentState{Brightness: 100, Contrast: 100, Saturation: 100, Filter: FilterNone}
}

func (a AdjustmentState) normalized() AdjustmentState {
	a.Brightness = Clamp(a.Brightness, BrightnessMin, BrightnessMax)
	a.Contrast = Clamp(a.Contrast, ContrastMin, ContrastMax)
	a.Saturation = Clamp(a.Saturation, SaturationMin, SaturationMax)
	a.Blur = Clamp(a.Blur, BlurMin, BlurMax)
	if a.Filter == "" {
		a.Filter = FilterNone
	}
	return a
}

// AdjustmentPatch is a partial update of the adjustment sliders.
type AdjustmentPatch struct {
	Brightness *float64
	Contrast   *float64
	Saturation *float64
	Blur       *float64
}

// Adjustments returns the current look.
func (c *Controller) Adjustments() AdjustmentState { return c.adjust }

// Revision increases on every mutation of layers or adjustments.
func (c *Controller) Revision() uint64 { return c.store.Revision() + c.adjustRev }

// SetAdjustments merges p into the current look, clamping each value.
func (c *Controller) SetAdjustments(p AdjustmentPatch) {
	a := c.adjust
	if p.Brightness != nil {
		a.Brightness = *p.Brightness
	}
	if p.Contrast != nil {
		a.Contrast = *p.Contrast
	}
	if p.Saturation != nil {
		a.Saturation = *p.Saturation
	}
	if p.Blur != nil {
		a.Blur = *p.Blur
	}
	c.adjust = a.normalized()
	c.adjustRev++
}

// ResetAdjustments restores the sliders to neutral. The named filter is kept.
func (c *Controller) ResetAdjustments() {
	filter := c.adjust.Filter
	c.adjust = DefaultAdjustments()
	c.adjust.Filter = filter
	c.adjustRev++
}

// SetFilter selects a catalog filter by id or a raw filter expression such
// as "sepia(100%)". Values that are neither fall back to the identity filter.
func (c *Controller) SetFilter(id string) {
	id = strings.TrimSpace(id)
	if _, ok := ResolveFilter(id); !ok || id == "" {
		if id != "" {
			c.log.WithField("filter", id).Warn("booth: unknown filter")
		}
		id = FilterNone
	}
	c.adjust.Filter = id
	c.adjustRev++
}

// --- Layer edits ---

// SetPhotoScale sets a photo's scale.
func (c *Controller) SetPhotoScale(id string, scale float64) bool {
	return c.updatePhoto("photo scale", id, PhotoPatch{Scale: &scale})
}

// SetPhotoRotation sets a photo's rotation in degrees.
func (c *Controller) SetPhotoRotation(id string, deg float64) bool {
	return c.updatePhoto("photo rotation", id, PhotoPatch{Rotation: &deg})
}

// ResetPhoto moves a photo back to the composition center with the default
// scale, rotation and crop.
func (c *Controller) ResetPhoto(id string) bool {
	return c.updatePhoto("reset photo", id, PhotoResetPatch())
}

// PhotoResetPatch is the patch applied by ResetPhoto.
func PhotoResetPatch() PhotoPatch {
	return PhotoPatch{
		Position: &Vec2{50, 50},
		Scale:    Ptr(1.0),
		Rotation: Ptr(0.0),
		Crop:     Ptr(DefaultCrop),
	}
}

func (c *Controller) updatePhoto(op, id string, p PhotoPatch) bool {
	if !c.store.UpdatePhoto(id, p) {
		c.stale(op, LayerPhoto, id)
		return false
	}
	return true
}

// AddSticker appends a centered sticker and returns its id.
func (c *Controller) AddSticker(content StickerContent) string {
	l := NewStickerLayer(content)
	c.store.AddSticker(l)
	return l.ID
}

// SetStickerScale sets a sticker's scale.
func (c *Controller) SetStickerScale(id string, scale float64) bool {
	return c.updateSticker("sticker scale", id, StickerPatch{Scale: &scale})
}

// SetStickerRotation sets a sticker's rotation in degrees.
func (c *Controller) SetStickerRotation(id string, deg float64) bool {
	return c.updateSticker("sticker rotation", id, StickerPatch{Rotation: &deg})
}

func (c *Controller) updateSticker(op, id string, p StickerPatch) bool {
	if !c.store.UpdateSticker(id, p) {
		c.stale(op, LayerSticker, id)
		return false
	}
	return true
}

// RemoveSticker deletes a sticker and clears it from the selection.
func (c *Controller) RemoveSticker(id string) bool {
	c.abortDragOf(LayerSticker, id)
	if !c.store.RemoveSticker(id) {
		c.stale("remove sticker", LayerSticker, id)
		return false
	}
	if c.selection.Sticker == id {
		c.selection.Sticker = ""
	}
	return true
}

// AddText appends a text layer with the editor defaults, selects it and
// returns its id.
func (c *Controller) AddText() string {
	l := NewTextLayer()
	c.store.AddText(l)
	c.selection.Text = l.ID
	return l.ID
}

// UpdateText merges p into a text layer.
func (c *Controller) UpdateText(id string, p TextPatch) bool {
	if !c.store.UpdateText(id, p) {
		c.stale("update text", LayerText, id)
		return false
	}
	return true
}

// RemoveText deletes a text layer and clears it from the selection.
func (c *Controller) RemoveText(id string) bool {
	c.abortDragOf(LayerText, id)
	if !c.store.RemoveText(id) {
		c.stale("remove text", LayerText, id)
		return false
	}
	if c.selection.Text == id {
		c.selection.Text = ""
	}
	return true
}

// abortDragOf returns to Idle when the dragged layer is being removed.
func (c *Controller) abortDragOf(kind LayerKind, id string) {
	if st, ok := c.state.(Dragging); ok && st.Kind == kind && st.ID == id {
		c.state = Idle{}
	}
}
