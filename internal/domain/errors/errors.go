package errors

import (
	"fmt"
)

type ErrInvalidCalendar struct{}

func (e *ErrInvalidCalendar) Error() string {
	return "некорректный документ календаря: отсутствует маркер BEGIN:VCALENDAR"
}

func (e *ErrInvalidCalendar) Is(target error) bool {
	_, ok := target.(*ErrInvalidCalendar)
	return ok
}

type ErrMissingDate struct{}

func (e *ErrMissingDate) Error() string {
	return "в событии календаря отсутствует дата начала"
}

func (e *ErrMissingDate) Is(target error) bool {
	_, ok := target.(*ErrMissingDate)
	return ok
}

type ErrInvalidDate struct {
	Value string
}

func (e *ErrInvalidDate) Error() string {
	return "некорректная дата начала события: " + e.Value
}

func (e *ErrInvalidDate) Is(target error) bool {
	_, ok := target.(*ErrInvalidDate)
	return ok
}

type ErrMissingSummary struct{}

func (e *ErrMissingSummary) Error() string {
	return "в событии календаря отсутствует поле SUMMARY"
}

func (e *ErrMissingSummary) Is(target error) bool {
	_, ok := target.(*ErrMissingSummary)
	return ok
}

type ErrUserNotFound struct {
	ChatID int64
}

func (e *ErrUserNotFound) Error() string {
	return fmt.Sprintf("пользователь не найден: %d", e.ChatID)
}

func (e *ErrUserNotFound) Is(target error) bool {
	_, ok := target.(*ErrUserNotFound)
	return ok
}

type ErrLocationNotFound struct {
	Key string
}

func (e *ErrLocationNotFound) Error() string {
	return "участок не найден: " + e.Key
}

func (e *ErrLocationNotFound) Is(target error) bool {
	_, ok := target.(*ErrLocationNotFound)
	return ok
}

type ErrInvalidLocationCode struct {
	Code string
}

func (e *ErrInvalidLocationCode) Error() string {
	return "некорректный идентификатор участка: " + e.Code
}

func (e *ErrInvalidLocationCode) Is(target error) bool {
	_, ok := target.(*ErrInvalidLocationCode)
	return ok
}

type ErrInvalidNotifyTime struct {
	Value string
}

func (e *ErrInvalidNotifyTime) Error() string {
	return "некорректное время уведомления: " + e.Value
}

func (e *ErrInvalidNotifyTime) Is(target error) bool {
	_, ok := target.(*ErrInvalidNotifyTime)
	return ok
}

type ErrInvalidNotifyOffset struct {
	Value string
}

func (e *ErrInvalidNotifyOffset) Error() string {
	return "некорректный режим уведомления: " + e.Value
}

func (e *ErrInvalidNotifyOffset) Is(target error) bool {
	_, ok := target.(*ErrInvalidNotifyOffset)
	return ok
}

// ErrRecipientGone — постоянная ошибка доставки: бот заблокирован или
// аккаунт получателя деактивирован. Повторять отправку бессмысленно.
type ErrRecipientGone struct {
	ChatID int64
	Cause  error
}

func (e *ErrRecipientGone) Error() string {
	return fmt.Sprintf("получатель недоступен: %d: %v", e.ChatID, e.Cause)
}

func (e *ErrRecipientGone) Is(target error) bool {
	_, ok := target.(*ErrRecipientGone)
	return ok
}

func (e *ErrRecipientGone) Unwrap() error {
	return e.Cause
}

type HTTPError struct {
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP ошибка: статус %d", e.StatusCode)
}

type ErrFeedStatus struct {
	LocationCode string
	StatusCode   int
}

func (e *ErrFeedStatus) Error() string {
	return fmt.Sprintf("источник календаря вернул статус %d для участка %s", e.StatusCode, e.LocationCode)
}

func (e *ErrFeedStatus) Is(target error) bool {
	_, ok := target.(*ErrFeedStatus)
	return ok
}

type ErrBuildSQLQuery struct {
	Operation string
	Cause     error
}

func (e *ErrBuildSQLQuery) Error() string {
	return fmt.Sprintf("ошибка при построении SQL запроса для %s: %v", e.Operation, e.Cause)
}

func (e *ErrBuildSQLQuery) Unwrap() error {
	return e.Cause
}

type ErrSQLExecution struct {
	Operation string
	Cause     error
}

func (e *ErrSQLExecution) Error() string {
	return fmt.Sprintf("ошибка при выполнении SQL запроса для %s: %v", e.Operation, e.Cause)
}

func (e *ErrSQLExecution) Unwrap() error {
	return e.Cause
}

type ErrSQLScan struct {
	Operation string
	Cause     error
}

func (e *ErrSQLScan) Error() string {
	return fmt.Sprintf("ошибка при чтении результата SQL запроса для %s: %v", e.Operation, e.Cause)
}

func (e *ErrSQLScan) Unwrap() error {
	return e.Cause
}
