package model

type FaceState string

const (
	FaceSleepy    FaceState = "sleepyFace"
	FaceAwake     FaceState = "awakeFace"
	FaceSemiAwake FaceState = "semiAwakeFace"
	FaceSmily     FaceState = "smilyFace"
	FaceBlank     FaceState = "blankFace"
)

// AssetRef points at a face image served by the dashboard.
type AssetRef string

// FaceStates returns every face state the device can display.
func FaceStates() []FaceState {
	return []FaceState{FaceSleepy, FaceAwake, FaceSemiAwake, FaceSmily, FaceBlank}
}

type FaceView struct {
	State FaceState `json:"state"`
	Icon  AssetRef  `json:"icon"`
	Label string    `json:"label"`
}
