package models

import "time"

// PickupEvent — день вывоза из календаря: одна дата, несколько категорий.
type PickupEvent struct {
	Date       time.Time
	WasteTypes []WasteType
}

// PickupRecord — сохранённое событие вывоза, одна строка на категорию.
type PickupRecord struct {
	ID           int64
	LocationCode string
	Date         time.Time
	WasteType    WasteType
}

// NotificationTask — одно уведомление, подлежащее отправке в текущем слоте.
type NotificationTask struct {
	ChatID        int64
	WasteType     WasteType
	LocationLabel string
	LocationCode  string
	NotifyOffset  int
}
