package mock

import "github.com/fwojciec/chatview"

// Interface compliance checks.
var (
	_ chatview.Slicer     = (*Slicer)(nil)
	_ chatview.Translator = (*Translator)(nil)
)

// Slicer is a test double for chatview.Slicer.
// Set SliceFn before calling Slice.
type Slicer struct {
	SliceFn func(messages []chatview.ChatMessage, config chatview.AgentConfig) []chatview.ChatMessage
}

// Slice delegates to SliceFn.
func (s *Slicer) Slice(messages []chatview.ChatMessage, config chatview.AgentConfig) []chatview.ChatMessage {
	return s.SliceFn(messages, config)
}

// Translator is a test double for chatview.Translator.
// Set TranslateFn before calling Translate.
type Translator struct {
	TranslateFn func(key string, params map[string]string, ns string) string
}

// Translate delegates to TranslateFn.
func (t *Translator) Translate(key string, params map[string]string, ns string) string {
	return t.TranslateFn(key, params, ns)
}
