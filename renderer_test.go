package arimage

import (
	"errors"
	"testing"
)

func TestFactoryFunc(t *testing.T) {
	wantErr := errors.New("boom")
	var gotModel, gotTexture string
	var gotMaterial Material
	f := FactoryFunc(func(model, texture string, m Material) (Renderer, error) {
		gotModel, gotTexture, gotMaterial = model, texture, m
		return nil, wantErr
	})

	_, err := f.NewRenderer("a.obj", "a.png", DefaultMaterial)
	if !errors.Is(err, wantErr) {
		t.Errorf("NewRenderer() error = %v, want %v", err, wantErr)
	}
	if gotModel != "a.obj" || gotTexture != "a.png" || gotMaterial != DefaultMaterial {
		t.Errorf("FactoryFunc received (%q, %q, %+v)", gotModel, gotTexture, gotMaterial)
	}
}

func TestScaledModel(t *testing.T) {
	p := DrawParams{Model: Translate(1, 0, 0), Scale: 0.4}
	x, y, z := p.ScaledModel().Apply(1, 1, 1)
	if !near(x, 1.4) || !near(y, 0.4) || !near(z, 0.4) {
		t.Errorf("ScaledModel().Apply(1,1,1) = (%v, %v, %v), want (1.4, 0.4, 0.4)", x, y, z)
	}
}

func TestStaticAnchor(t *testing.T) {
	p := TranslationPose(1, 2, 3)
	if got := StaticAnchor(p).Pose(); got != p {
		t.Errorf("StaticAnchor.Pose() = %+v, want %+v", got, p)
	}
}
