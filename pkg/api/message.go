package api

// Action действие, которое виджет запрашивает у платформы
type Action string

const (
	ActionLoad Action = "load" // прочитать содержимое слота
	ActionSave Action = "save" // записать содержимое слота
)

// MessageType тип сообщения, которое платформа присылает виджету
type MessageType string

const (
	TypeSaveContent MessageType = "save_content" // ответ на load
	TypeSaved       MessageType = "saved"        // подтверждение save
)

// Сообщения об ошибках, которые платформа кладёт в поле message
const (
	// MessageNoAccount пользователь не вошёл в аккаунт платформы
	MessageNoAccount = "no_account"
	// MessageEmptySlot в слоте ещё нет сохранения
	MessageEmptySlot = "empty_slot"
	// MessageInvalidRequest запрос не удалось разобрать
	MessageInvalidRequest = "invalid_request"
	// MessageServerError внутренняя ошибка хранилища платформы
	MessageServerError = "server_error"
)

// DefaultSlot единственный используемый слот
const DefaultSlot = 0

// DefaultLabel подпись облачного сохранения
const DefaultLabel = "Cloud Save"

// OutboundMessage is a request posted by the widget to the platform host.
// Label and Data are only set for ActionSave.
type OutboundMessage struct {
	Action Action `json:"action"`
	Label  string `json:"label,omitempty"`
	Data   string `json:"data,omitempty"`
	Slot   int    `json:"slot"`
}

// InboundMessage is a message posted by the platform host to the widget.
// Content is nil when the slot has no data or Error is set.
type InboundMessage struct {
	Content *string     `json:"content"`
	Type    MessageType `json:"type"`
	Message string      `json:"message,omitempty"`
	Error   bool        `json:"error"`
}

// IsBenignError reports whether an error message means "nothing stored"
// rather than a failure of the host.
func IsBenignError(message string) bool {
	return message == MessageNoAccount || message == MessageEmptySlot
}
