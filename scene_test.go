package lightyear

import (
	"bytes"
	"testing"

	"github.com/akmonengine/lightyear/galaxy"
	"github.com/akmonengine/lightyear/pose"
	"github.com/go-gl/mathgl/mgl64"
)

func TestSceneRoundTrip(t *testing.T) {
	entities := []SceneEntity{
		{
			Name:      "station",
			Transform: pose.FromPosition(mgl64.Vec3{1_250_000.5, -300.25, 42}),
		},
		{
			Name:      "far-star",
			Transform: pose.NewWorldTransform(),
			Galaxy: &galaxy.Position{
				Sector: galaxy.Sector{X: 10_000_000_000, Y: 0, Z: -3},
				Local:  mgl64.Vec3{125_000, 0.5, 999_999},
			},
		},
	}

	var buf bytes.Buffer
	if err := EncodeScene(&buf, entities); err != nil {
		t.Fatalf("EncodeScene() error = %v", err)
	}

	decoded, err := DecodeScene(&buf)
	if err != nil {
		t.Fatalf("DecodeScene() error = %v", err)
	}
	if len(decoded) != len(entities) {
		t.Fatalf("len(decoded) = %d, want %d", len(decoded), len(entities))
	}

	// Persisted positions are world-space f64 values and survive exactly
	if decoded[0].Transform.Position != entities[0].Transform.Position {
		t.Errorf("position = %v, want %v", decoded[0].Transform.Position, entities[0].Transform.Position)
	}
	if decoded[0].Galaxy != nil {
		t.Error("flat entity should not gain a galaxy position")
	}

	if decoded[1].Galaxy == nil {
		t.Fatal("sectored entity lost its galaxy position")
	}
	if decoded[1].Galaxy.Sector != entities[1].Galaxy.Sector {
		t.Errorf("sector = %+v, want %+v", decoded[1].Galaxy.Sector, entities[1].Galaxy.Sector)
	}
	if decoded[1].Galaxy.Local != entities[1].Galaxy.Local {
		t.Errorf("local = %v, want %v", decoded[1].Galaxy.Local, entities[1].Galaxy.Local)
	}
}

func TestDecodeScene_Invalid(t *testing.T) {
	if _, err := DecodeScene(bytes.NewBufferString("{not json")); err == nil {
		t.Error("DecodeScene() should fail on malformed input")
	}
}
