package models

import "strings"

type WasteKind string

const (
	WasteBio            WasteKind = "Bio"
	WasteRest           WasteKind = "Rest"
	WastePapier         WasteKind = "Papier"
	WasteGelb           WasteKind = "Gelb"
	WasteWeihnachtsbaum WasteKind = "Weihnachtsbaum"
	WasteOther          WasteKind = "Other"
)

// WasteType — категория отходов. Для WasteOther сохраняется исходная метка.
type WasteType struct {
	Kind  WasteKind
	Label string
}

func (w WasteType) String() string {
	if w.Kind == WasteOther {
		return w.Label
	}

	return string(w.Kind)
}

// ParseWasteType всегда возвращает результат: неизвестные метки
// сворачиваются в WasteOther с исходным текстом.
func ParseWasteType(label string) WasteType {
	trimmed := strings.TrimSpace(label)

	switch trimmed {
	case "Bio", "Biotonne":
		return WasteType{Kind: WasteBio}
	case "Rest", "Restmüll", "Restabfall":
		return WasteType{Kind: WasteRest}
	case "Papier", "Pappe", "Blaue Tonne":
		return WasteType{Kind: WastePapier}
	case "Gelb", "Gelbe Tonne", "Gelber Sack":
		return WasteType{Kind: WasteGelb}
	case "Weihnachtsbaum", "Weihnachtsbäume":
		return WasteType{Kind: WasteWeihnachtsbaum}
	default:
		return WasteType{Kind: WasteOther, Label: trimmed}
	}
}

// NormalizeWasteTypes разбирает строку SUMMARY события календаря:
// категории разделены запятыми, пустые фрагменты отбрасываются.
func NormalizeWasteTypes(summary string) []WasteType {
	parts := strings.Split(summary, ",")
	types := make([]WasteType, 0, len(parts))

	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}

		types = append(types, ParseWasteType(trimmed))
	}

	return types
}

// DefaultSubscriptions — типы, на которые участок подписывается при регистрации.
func DefaultSubscriptions() []WasteType {
	return []WasteType{
		{Kind: WasteBio},
		{Kind: WasteRest},
		{Kind: WastePapier},
		{Kind: WasteGelb},
	}
}
