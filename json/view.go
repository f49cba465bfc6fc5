package json

import (
	"encoding/json"

	"github.com/fwojciec/chatview"
)

// chatMessageDTO is the JSON representation of a display message.
type chatMessageDTO struct {
	messageDTO
	Meta  metaDTO  `json:"meta"`
	Extra extraDTO `json:"extra"`
}

type extraDTO struct {
	FromModel string        `json:"fromModel,omitempty"`
	Translate *translateDTO `json:"translate,omitempty"`
	TTS       *ttsDTO       `json:"tts,omitempty"`
}

// functionPropsDTO is the JSON representation of FunctionMessageProps.
type functionPropsDTO struct {
	Arguments string     `json:"arguments,omitempty"`
	Command   *pluginDTO `json:"command,omitempty"`
	Content   string     `json:"content"`
	ID        string     `json:"id,omitempty"`
	Loading   bool       `json:"loading"`
	Type      string     `json:"type,omitempty"`
}

// MarshalChatMessages encodes display messages. The record-level extras are
// only emitted under "extra".
func MarshalChatMessages(msgs []chatview.ChatMessage) ([]byte, error) {
	out := make([]chatMessageDTO, len(msgs))
	for i, m := range msgs {
		raw := fromMessage(m.Message)
		raw.FromModel, raw.Translate, raw.TTS = "", nil, nil
		out[i] = chatMessageDTO{
			messageDTO: raw,
			Meta:       fromMeta(m.Meta),
			Extra: extraDTO{
				FromModel: m.Extra.FromModel,
				Translate: fromTranslate(m.Extra.Translate),
				TTS:       fromTTS(m.Extra.TTS),
			},
		}
	}
	return json.MarshalIndent(out, "", "  ")
}

// MarshalMessage encodes a raw message, with its plugin call view when it
// is a function message.
func MarshalMessage(m chatview.Message, props *chatview.FunctionMessageProps) ([]byte, error) {
	type messageView struct {
		messageDTO
		Function *functionPropsDTO `json:"function,omitempty"`
	}
	v := messageView{messageDTO: fromMessage(m)}
	if props != nil {
		v.Function = &functionPropsDTO{
			Arguments: props.Arguments,
			Command:   fromPlugin(props.Command),
			Content:   props.Content,
			ID:        props.ID,
			Loading:   props.Loading,
			Type:      string(props.Type),
		}
	}
	return json.MarshalIndent(v, "", "  ")
}

// MarshalSession encodes a session.
func MarshalSession(s chatview.Session) ([]byte, error) {
	return json.MarshalIndent(fromSession(s), "", "  ")
}

// MarshalMeta encodes session metadata. Empty metadata encodes as {}.
func MarshalMeta(m chatview.MetaData) ([]byte, error) {
	return json.MarshalIndent(fromMeta(m), "", "  ")
}
