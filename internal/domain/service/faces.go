package service

import (
	"remi-card/internal/domain/icons"
	"remi-card/internal/domain/localizer"
	"remi-card/internal/domain/model"
)

type FaceService struct {
	icons     *icons.Resolver
	localizer *localizer.Localizer
}

func NewFaceService(r *icons.Resolver, l *localizer.Localizer) *FaceService {
	return &FaceService{icons: r, localizer: l}
}

func (s *FaceService) Faces(language string) []model.FaceView {
	states := model.FaceStates()
	views := make([]model.FaceView, 0, len(states))
	for _, state := range states {
		views = append(views, s.Face(string(state), language))
	}
	return views
}

// Face never fails; unknown states get the blank icon.
func (s *FaceService) Face(state, language string) model.FaceView {
	return model.FaceView{
		State: model.FaceState(state),
		Icon:  s.icons.GetIcon(state),
		Label: s.localizer.LocalizeFace(state, language),
	}
}
