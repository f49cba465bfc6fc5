package json

import "github.com/fwojciec/chatview"

// messageDTO is the JSON representation of a raw message record.
type messageDTO struct {
	ID        string        `json:"id"`
	SessionID string        `json:"sessionId,omitempty"`
	Role      string        `json:"role"`
	Content   string        `json:"content"`
	ParentID  string        `json:"parentId,omitempty"`
	CreatedAt int64         `json:"createdAt"`
	UpdatedAt int64         `json:"updatedAt"`
	Meta      *metaDTO      `json:"meta,omitempty"`
	Plugin    *pluginDTO    `json:"plugin,omitempty"`
	FromModel string        `json:"fromModel,omitempty"`
	Translate *translateDTO `json:"translate,omitempty"`
	TTS       *ttsDTO       `json:"tts,omitempty"`
}

type metaDTO struct {
	Avatar          string   `json:"avatar,omitempty"`
	BackgroundColor string   `json:"backgroundColor,omitempty"`
	Title           string   `json:"title,omitempty"`
	Description     string   `json:"description,omitempty"`
	Tags            []string `json:"tags,omitempty"`
}

type pluginDTO struct {
	Identifier string `json:"identifier"`
	APIName    string `json:"apiName,omitempty"`
	Type       string `json:"type,omitempty"`
	Arguments  string `json:"arguments"`
}

type translateDTO struct {
	From    string `json:"from,omitempty"`
	To      string `json:"to"`
	Content string `json:"content,omitempty"`
}

type ttsDTO struct {
	ContentMD5 string `json:"contentMd5,omitempty"`
	File       string `json:"file,omitempty"`
	Voice      string `json:"voice,omitempty"`
}

func (dto messageDTO) toMessage() chatview.Message {
	sessionID := dto.SessionID
	if sessionID == "" {
		sessionID = chatview.InboxSessionID
	}
	m := chatview.Message{
		ID:        dto.ID,
		SessionID: sessionID,
		Role:      chatview.Role(dto.Role),
		Content:   dto.Content,
		ParentID:  dto.ParentID,
		CreatedAt: millis(dto.CreatedAt),
		UpdatedAt: millis(dto.UpdatedAt),
		FromModel: dto.FromModel,
	}
	if dto.Meta != nil {
		m.Meta = dto.Meta.toMeta()
	}
	if dto.Plugin != nil {
		pluginType := chatview.PluginType(dto.Plugin.Type)
		if pluginType == "" {
			pluginType = chatview.PluginTypeDefault
		}
		m.Plugin = &chatview.PluginRequest{
			Identifier: dto.Plugin.Identifier,
			APIName:    dto.Plugin.APIName,
			Type:       pluginType,
			Arguments:  dto.Plugin.Arguments,
		}
	}
	if dto.Translate != nil {
		m.Translate = &chatview.Translate{From: dto.Translate.From, To: dto.Translate.To, Content: dto.Translate.Content}
	}
	if dto.TTS != nil {
		m.TTS = &chatview.TTS{ContentMD5: dto.TTS.ContentMD5, File: dto.TTS.File, Voice: dto.TTS.Voice}
	}
	return m
}

func (dto metaDTO) toMeta() chatview.MetaData {
	return chatview.MetaData{
		Avatar:          dto.Avatar,
		BackgroundColor: dto.BackgroundColor,
		Title:           dto.Title,
		Description:     dto.Description,
		Tags:            dto.Tags,
	}
}

func fromMeta(m chatview.MetaData) metaDTO {
	return metaDTO{
		Avatar:          m.Avatar,
		BackgroundColor: m.BackgroundColor,
		Title:           m.Title,
		Description:     m.Description,
		Tags:            m.Tags,
	}
}

func fromPlugin(p *chatview.PluginRequest) *pluginDTO {
	if p == nil {
		return nil
	}
	return &pluginDTO{Identifier: p.Identifier, APIName: p.APIName, Type: string(p.Type), Arguments: p.Arguments}
}

func fromTranslate(t *chatview.Translate) *translateDTO {
	if t == nil {
		return nil
	}
	return &translateDTO{From: t.From, To: t.To, Content: t.Content}
}

func fromTTS(t *chatview.TTS) *ttsDTO {
	if t == nil {
		return nil
	}
	return &ttsDTO{ContentMD5: t.ContentMD5, File: t.File, Voice: t.Voice}
}

func fromMessage(m chatview.Message) messageDTO {
	dto := messageDTO{
		ID:        m.ID,
		SessionID: m.SessionID,
		Role:      string(m.Role),
		Content:   m.Content,
		ParentID:  m.ParentID,
		CreatedAt: toMillis(m.CreatedAt),
		UpdatedAt: toMillis(m.UpdatedAt),
		Plugin:    fromPlugin(m.Plugin),
		FromModel: m.FromModel,
		Translate: fromTranslate(m.Translate),
		TTS:       fromTTS(m.TTS),
	}
	if !m.Meta.IsZero() {
		meta := fromMeta(m.Meta)
		dto.Meta = &meta
	}
	return dto
}
