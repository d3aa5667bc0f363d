package models

import "strings"

// SaveBlob представляет сериализованное сохранение игры:
// упорядоченный список числовых полей через запятую ("1,2,3").
// Пустая строка означает отсутствие сохранения.
type SaveBlob string

// FieldSeparator разделитель полей внутри SaveBlob
const FieldSeparator = ","

// IsEmpty reports whether the blob carries no save at all
func (b SaveBlob) IsEmpty() bool {
	return strings.TrimSpace(string(b)) == ""
}

// Fields splits the blob into its positional fields.
// An empty blob has no fields.
func (b SaveBlob) Fields() []string {
	if b == "" {
		return nil
	}
	return strings.Split(string(b), FieldSeparator)
}

// String returns the raw blob text
func (b SaveBlob) String() string {
	return string(b)
}

// JoinFields builds a blob from positional fields
func JoinFields(fields []string) SaveBlob {
	return SaveBlob(strings.Join(fields, FieldSeparator))
}

// ConflictDecision результат запроса к пользователю во время одного прохода
// согласования. Нигде не сохраняется.
type ConflictDecision int

const (
	DecisionUseRemote ConflictDecision = iota // загрузить сохранение из облака
	DecisionUseLocal                          // оставить локальное сохранение
	DecisionRetry                             // повторить запрос к облаку
	DecisionAbort                             // отказаться от повтора
)

// String returns a human-readable representation of the decision.
func (d ConflictDecision) String() string {
	switch d {
	case DecisionUseRemote:
		return "use_remote"
	case DecisionUseLocal:
		return "use_local"
	case DecisionRetry:
		return "retry"
	case DecisionAbort:
		return "abort"
	default:
		return "unknown"
	}
}

// SaveSource указывает, какая копия сохранения была применена к виджету.
type SaveSource string

const (
	SourceNone   SaveSource = "none"   // ничего не применено, виджет в исходном состоянии
	SourceLocal  SaveSource = "local"  // локальный кеш
	SourceRemote SaveSource = "remote" // облачный слот
)
