package lightyear

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/akmonengine/lightyear/galaxy"
	"github.com/akmonengine/lightyear/pose"
)

// SceneEntity is the persisted form of an entity's position. Positions are
// always double-precision world-space values, never camera-relative, so a
// saved scene stays valid regardless of the runtime origin at save time.
type SceneEntity struct {
	Name      string              `json:"name"`
	Transform pose.WorldTransform `json:"transform"`
	// Galaxy is set only for entities in the sectored tier
	Galaxy *galaxy.Position `json:"galaxy,omitempty"`
}

// EncodeScene writes scene entities as JSON
func EncodeScene(w io.Writer, entities []SceneEntity) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entities); err != nil {
		return fmt.Errorf("encode scene: %w", err)
	}
	return nil
}

// DecodeScene reads scene entities from JSON
func DecodeScene(r io.Reader) ([]SceneEntity, error) {
	var entities []SceneEntity
	if err := json.NewDecoder(r).Decode(&entities); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	return entities, nil
}
