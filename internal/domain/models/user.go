package models

import "time"

type User struct {
	ID        int64
	CreatedAt time.Time
}

// UserLocation — привязка пользователя к участку с расписанием уведомлений.
// NotifyTime хранится строкой вида "HH:00", NotifyOffset: 0 — в день вывоза,
// 1 — накануне.
type UserLocation struct {
	ID           int64
	UserID       int64
	LocationCode string
	Alias        string
	NotifyTime   string
	NotifyOffset int
}

// DisplayLabel возвращает алиас участка, а при его отсутствии — код.
func (l *UserLocation) DisplayLabel() string {
	if l.Alias != "" {
		return l.Alias
	}

	return l.LocationCode
}
