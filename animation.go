package booth

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// photoTweenFields is the number of animated photo properties.
const photoTweenFields = 7

// PhotoTween animates a photo layer's position, scale, rotation and crop
// toward a target. Each Update is a normal store update, so every
// intermediate frame is clamped like any other edit. If the photo is gone
// or a gesture is active the tween stops immediately, leaving the photo
// where the last frame put it.
//
// There is no global animation manager; hosts call Update themselves.
type PhotoTween struct {
	ctrl   *Controller
	id     string
	tweens [photoTweenFields]*gween.Tween
	Done   bool
}

// TweenPhoto creates a tween from the photo's current state to target over
// duration seconds. Returns nil if the photo does not exist.
func TweenPhoto(c *Controller, id string, target PhotoLayer, duration float32, fn ease.TweenFunc) *PhotoTween {
	from, ok := c.store.Photo(id)
	if !ok {
		c.stale("tween photo", LayerPhoto, id)
		return nil
	}
	if fn == nil {
		fn = ease.OutCubic
	}
	t := &PhotoTween{ctrl: c, id: id}
	pairs := [photoTweenFields][2]float64{
		{from.Position.X, target.Position.X},
		{from.Position.Y, target.Position.Y},
		{from.Scale, target.Scale},
		{from.Rotation, target.Rotation},
		{from.Crop.Offset.X, target.Crop.Offset.X},
		{from.Crop.Offset.Y, target.Crop.Offset.Y},
		{from.Crop.Scale, target.Crop.Scale},
	}
	for i, p := range pairs {
		t.tweens[i] = gween.New(float32(p[0]), float32(p[1]), duration, fn)
	}
	return t
}

// TweenPhotoReset animates a photo back to the centered default, the
// animated counterpart of Controller.ResetPhoto.
func TweenPhotoReset(c *Controller, id string, duration float32) *PhotoTween {
	return TweenPhoto(c, id, PhotoLayer{
		Position: Vec2{50, 50},
		Scale:    1,
		Crop:     DefaultCrop,
	}, duration, ease.OutCubic)
}

// Update advances the tween by dt seconds and writes the interpolated
// values to the photo.
func (t *PhotoTween) Update(dt float32) {
	if t == nil || t.Done {
		return
	}
	if !t.ctrl.idle() {
		t.ctrl.log.WithField("photo", t.id).Debug("booth: tween interrupted by gesture")
		t.Done = true
		return
	}
	var v [photoTweenFields]float64
	allDone := true
	for i, tw := range t.tweens {
		val, finished := tw.Update(dt)
		v[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	ok := t.ctrl.store.UpdatePhoto(t.id, PhotoPatch{
		Position: &Vec2{v[0], v[1]},
		Scale:    &v[2],
		Rotation: &v[3],
		Crop:     &CropState{Offset: Vec2{v[4], v[5]}, Scale: v[6]},
	})
	if !ok {
		t.ctrl.stale("tween photo", LayerPhoto, t.id)
		t.Done = true
		return
	}
	t.Done = allDone
}
