package json

import "github.com/fwojciec/chatview"

// sessionDTO is the JSON representation of a Session.
type sessionDTO struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Config    configDTO `json:"config"`
	Meta      metaDTO   `json:"meta"`
	CreatedAt int64     `json:"createdAt"`
	UpdatedAt int64     `json:"updatedAt"`
}

type configDTO struct {
	Model              string             `json:"model"`
	Params             map[string]float64 `json:"params"`
	SystemRole         string             `json:"systemRole"`
	Plugins            []string           `json:"plugins,omitempty"`
	EnableHistoryCount bool               `json:"enableHistoryCount,omitempty"`
	HistoryCount       int                `json:"historyCount,omitempty"`
}

func (dto sessionDTO) toSession() chatview.Session {
	sessionType := chatview.SessionType(dto.Type)
	if sessionType == "" {
		sessionType = chatview.SessionTypeAgent
	}
	return chatview.Session{
		ID:   dto.ID,
		Type: sessionType,
		Config: chatview.AgentConfig{
			Model:              dto.Config.Model,
			Params:             dto.Config.Params,
			SystemRole:         dto.Config.SystemRole,
			Plugins:            dto.Config.Plugins,
			EnableHistoryCount: dto.Config.EnableHistoryCount,
			HistoryCount:       dto.Config.HistoryCount,
		},
		Meta:      dto.Meta.toMeta(),
		CreatedAt: millis(dto.CreatedAt),
		UpdatedAt: millis(dto.UpdatedAt),
	}
}

func fromSession(s chatview.Session) sessionDTO {
	return sessionDTO{
		ID:   s.ID,
		Type: string(s.Type),
		Config: configDTO{
			Model:              s.Config.Model,
			Params:             s.Config.Params,
			SystemRole:         s.Config.SystemRole,
			Plugins:            s.Config.Plugins,
			EnableHistoryCount: s.Config.EnableHistoryCount,
			HistoryCount:       s.Config.HistoryCount,
		},
		Meta:      fromMeta(s.Meta),
		CreatedAt: toMillis(s.CreatedAt),
		UpdatedAt: toMillis(s.UpdatedAt),
	}
}
