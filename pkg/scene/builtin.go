package scene

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownScene is returned when a scene name matches no built-in scene
var ErrUnknownScene = errors.New("unknown scene")

type builtinScene struct {
	info  SceneInfo
	build func(seed int64) (*Scene, error)
}

var builtinScenes = map[string]builtinScene{
	"default": {
		info: SceneInfo{
			ID:          "default",
			Name:        "Default Scene",
			DisplayName: "Default Scene",
			Description: "Diffuse, hollow glass and metal spheres on a ground sphere",
		},
		build: func(seed int64) (*Scene, error) { return NewDefaultScene() },
	},
	"random": {
		info: SceneInfo{
			ID:          "random",
			Name:        "Random Spheres",
			DisplayName: "Random Spheres",
			Description: "Seeded field of small random spheres around three large ones",
		},
		build: func(seed int64) (*Scene, error) { return NewRandomScene(seed) },
	},
	"mirrors": {
		info: SceneInfo{
			ID:          "mirrors",
			Name:        "Facing Mirrors",
			DisplayName: "Facing Mirrors",
			Description: "Two facing mirrors that exercise the bounce limit",
		},
		build: func(seed int64) (*Scene, error) { return NewMirrorsScene() },
	},
}

// Lookup builds the named built-in scene. Seed only affects scenes with random layouts.
func Lookup(name string, seed int64) (*Scene, error) {
	builtin, ok := builtinScenes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownScene, name, BuiltinSceneIDs())
	}
	return builtin.build(seed)
}

// BuiltinSceneIDs returns the sorted IDs of all built-in scenes
func BuiltinSceneIDs() []string {
	ids := make([]string, 0, len(builtinScenes))
	for id := range builtinScenes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func builtinSceneInfos() []SceneInfo {
	var infos []SceneInfo
	for _, id := range BuiltinSceneIDs() {
		info := builtinScenes[id].info
		info.Group = builtinGroup
		info.Type = "builtin"
		infos = append(infos, info)
	}
	return infos
}
