package models

type CommandType string

const (
	CommandStart       CommandType = "/start"
	CommandHelp        CommandType = "/help"
	CommandAddLocation CommandType = "/addlocation"
	CommandLocations   CommandType = "/locations"
	CommandSubscribe   CommandType = "/subscribe"
	CommandUnsubscribe CommandType = "/unsubscribe"
	CommandSetTime     CommandType = "/settime"
	CommandSetOffset   CommandType = "/setoffset"
	CommandStop        CommandType = "/stop"
	CommandUnknown     CommandType = "unknown"
)

type Command struct {
	Type     CommandType
	ChatID   int64
	UserID   int64
	Text     string
	Username string
}

// ChatState — состояние диалога добавления участка. Хранится только в памяти
// процесса: при рестарте незавершённый диалог начинается заново.
type ChatState int

const (
	StateIdle ChatState = iota
	StateAwaitingLocationCode
	StateAwaitingAlias
)
