package calendar

import (
	"strings"
	"time"

	customerrors "github.com/central-university-dev/go-waste-bot/internal/domain/errors"
	"github.com/central-university-dev/go-waste-bot/internal/domain/models"
)

const dateLayout = "20060102"

// Validate проверяет, что документ вообще является календарём.
func Validate(content string) error {
	if !strings.Contains(content, "BEGIN:VCALENDAR") {
		return &customerrors.ErrInvalidCalendar{}
	}

	return nil
}

// ParseCalendar разбирает iCal-документ в список дней вывоза.
// Каждый VEVENT даёт одну запись: дата из DTSTART (компактная форма
// YYYYMMDD, часть после 'T' отбрасывается) и категории из SUMMARY,
// разделённые запятыми. Документ без событий — корректный пустой результат.
func ParseCalendar(content string) ([]models.PickupEvent, error) {
	var (
		events         []models.PickupEvent
		inEvent        bool
		date           time.Time
		dateSet        bool
		summary        string
		summaryPresent bool
	)

	for _, rawLine := range strings.Split(content, "\n") {
		line := strings.TrimRight(rawLine, "\r")

		switch {
		case line == "BEGIN:VEVENT":
			inEvent = true
			dateSet = false
			summary = ""
			summaryPresent = false
		case line == "END:VEVENT":
			if !inEvent {
				continue
			}

			inEvent = false

			if !dateSet {
				return nil, &customerrors.ErrMissingDate{}
			}

			if !summaryPresent {
				return nil, &customerrors.ErrMissingSummary{}
			}

			events = append(events, models.PickupEvent{
				Date:       date,
				WasteTypes: models.NormalizeWasteTypes(summary),
			})
		case inEvent:
			name, value, found := cutProperty(line)
			if !found {
				continue
			}

			switch name {
			case "DTSTART":
				parsed, err := parseCompactDate(value)
				if err != nil {
					return nil, err
				}

				date = parsed
				dateSet = true
			case "SUMMARY":
				summary = value
				summaryPresent = true
			}
		}
	}

	return events, nil
}

// cutProperty разбирает строку вида "NAME;PARAM=...:VALUE".
func cutProperty(line string) (name, value string, found bool) {
	name, value, found = strings.Cut(line, ":")
	if !found {
		return "", "", false
	}

	if i := strings.Index(name, ";"); i >= 0 {
		name = name[:i]
	}

	return name, value, true
}

func parseCompactDate(value string) (time.Time, error) {
	datePart := value
	if i := strings.Index(datePart, "T"); i >= 0 {
		datePart = datePart[:i]
	}

	parsed, err := time.Parse(dateLayout, datePart)
	if err != nil {
		return time.Time{}, &customerrors.ErrInvalidDate{Value: value}
	}

	return parsed, nil
}
