package icons

import (
	"strings"

	"remi-card/internal/domain/model"
)

var faceFiles = map[model.FaceState]string{
	model.FaceSleepy:    "face_sleepy.png",
	model.FaceAwake:     "face_awake.png",
	model.FaceSemiAwake: "face_semi_awake.png",
	model.FaceSmily:     "face_smily.png",
	model.FaceBlank:     "face_blank.png",
}

type Resolver struct {
	icons map[model.FaceState]model.AssetRef
}

// NewResolver maps every face state to <base>/face/<file>.
func NewResolver(base string) *Resolver {
	base = strings.TrimSuffix(base, "/")
	icons := make(map[model.FaceState]model.AssetRef, len(faceFiles))
	for state, file := range faceFiles {
		ref := "face/" + file
		if base != "" {
			ref = base + "/" + ref
		}
		icons[state] = model.AssetRef(ref)
	}
	return &Resolver{icons: icons}
}

// GetIcon falls back to the blank face for unknown states.
func (r *Resolver) GetIcon(state string) model.AssetRef {
	if ref, ok := r.icons[model.FaceState(state)]; ok {
		return ref
	}
	return r.icons[model.FaceBlank]
}
