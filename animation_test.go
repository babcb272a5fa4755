package booth

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenPhotoResetReachesTarget(t *testing.T) {
	c, _ := newTestController(1)
	c.SetPhotoScale("a", 1.8)
	c.SetPhotoRotation("a", 90)

	tw := TweenPhotoReset(c, "a", 1)
	if tw == nil {
		t.Fatal("TweenPhotoReset returned nil")
	}
	tw.Update(0.5)
	if tw.Done {
		t.Fatal("tween finished early")
	}
	mid, _ := c.Store().Photo("a")
	if mid.Position.X <= 27.5 || mid.Position.X >= 50 {
		t.Errorf("midway X = %v, want between 27.5 and 50", mid.Position.X)
	}

	tw.Update(0.6)
	if !tw.Done {
		t.Fatal("tween should be done")
	}
	p, _ := c.Store().Photo("a")
	if p.Position != (Vec2{50, 50}) || p.Scale != 1 || p.Rotation != 0 || p.Crop != DefaultCrop {
		t.Errorf("photo = %+v, want reset", p)
	}
	tw.Update(1) // no-op once done
}

func TestTweenPhotoClampsFrames(t *testing.T) {
	c, _ := newTestController(1)
	tw := TweenPhoto(c, "a", PhotoLayer{Position: Vec2{50, 50}, Scale: 10, Crop: DefaultCrop}, 1, ease.Linear)
	tw.Update(1)
	p, _ := c.Store().Photo("a")
	if p.Scale != PhotoScaleMax {
		t.Errorf("Scale = %v, want %v", p.Scale, PhotoScaleMax)
	}
}

func TestTweenPhotoMissing(t *testing.T) {
	c, _ := newTestController(0)
	if tw := TweenPhoto(c, "nope", PhotoLayer{}, 1, nil); tw != nil {
		t.Error("TweenPhoto on a missing photo should return nil")
	}
	var tw *PhotoTween
	tw.Update(1) // nil tween is safe
}

func TestTweenStopsWhenPhotoRemoved(t *testing.T) {
	s, _ := NewSession(SessionConfig{Captures: captures(1)})
	tw := TweenPhotoReset(s.Controller(), "0", 1)
	s.Store().photos.remove("0")
	tw.Update(0.1)
	if !tw.Done {
		t.Error("tween should stop once its photo is gone")
	}
}

func TestTweenStopsOnDrag(t *testing.T) {
	c, _ := newTestController(1)
	c.SetPhotoScale("a", 1.8)
	tw := TweenPhotoReset(c, "a", 1)
	tw.Update(0.25)
	before, _ := c.Store().Photo("a")

	if !c.PointerDown(LayerPhoto, "a", At(100, 100, testContainer)) {
		t.Fatal("PointerDown did not start a drag")
	}
	tw.Update(0.25)
	if !tw.Done {
		t.Error("tween should stop once a drag starts")
	}
	c.PointerMove(At(100, 100, testContainer))
	tw.Update(0.25)
	p, _ := c.Store().Photo("a")
	if p.Position != before.Position || p.Scale != before.Scale {
		t.Errorf("photo = %+v, want %+v left by the drag", p, before)
	}
}

func TestTweenStopsOnCrop(t *testing.T) {
	c, _ := newTestController(1)
	c.Store().UpdatePhoto("a", PhotoPatch{Crop: &CropState{Offset: Vec2{10, 0}, Scale: 2}})
	tw := TweenPhotoReset(c, "a", 1)
	if err := c.StartCrop("a"); err != nil {
		t.Fatalf("StartCrop: %v", err)
	}
	tw.Update(0.5)
	if !tw.Done {
		t.Error("tween should stop while cropping")
	}
	p, _ := c.Store().Photo("a")
	if want := (CropState{Offset: Vec2{10, 0}, Scale: 2}); p.Crop != want {
		t.Errorf("stored crop = %+v, want %+v", p.Crop, want)
	}
	w, _ := c.CropWorking()
	if w.Working != p.Crop {
		t.Errorf("working crop = %+v, want %+v", w.Working, p.Crop)
	}
}
