package models

import "time"

// Account представляет аккаунт платформы, которому принадлежат облачные слоты
type Account struct {
	CreatedAt time.Time `json:"created_at"` // время создания
	ID        string    `json:"id"`         // UUID аккаунта
	Name      string    `json:"name"`       // уникальное имя
}

// SaveSlot облачное сохранение аккаунта в конкретном слоте
type SaveSlot struct {
	UpdatedAt time.Time `json:"updated_at"` // время последней записи
	AccountID string    `json:"account_id"` // владелец слота
	Label     string    `json:"label"`      // подпись, переданная виджетом
	Data      SaveBlob  `json:"data"`       // содержимое сохранения
	Slot      int       `json:"slot"`       // номер слота
}
