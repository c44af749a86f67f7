package packets

import "github.com/sakinah-tech/minbar/internal/model"

type CounterResponse struct {
	Session model.TasbihSession `json:"session"`
	State   string              `json:"state"`
	History []model.DhikrEntry  `json:"history"`
	Presets []model.DhikrEntry  `json:"presets"`
}

type SaveResponse struct {
	Log     model.TasbihLog     `json:"log"`
	Session model.TasbihSession `json:"session"`
}
