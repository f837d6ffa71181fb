// Package theme содержит таблицу цветов маркеров по категориям.
// Статические данные для слоя отображения, проектор их не читает.
package theme

import "elite-scanner/backend/internal/scanner"

// Theme неизменяемое отображение категория -> цвет дисплея
type Theme struct {
	colors   map[scanner.Category]string
	selected string
	fallback string
}

// Default классическая палитра сканера: враждебные красным,
// дружественные зеленым, станции синим
func Default() *Theme {
	return &Theme{
		colors: map[scanner.Category]string{
			scanner.CategoryHostile:  "#ff3333",
			scanner.CategoryFriendly: "#33ff66",
			scanner.CategoryNeutral:  "#ffcc33",
			scanner.CategoryStation:  "#3399ff",
			scanner.CategoryMissile:  "#ff33ff",
		},
		selected: "#ffffff",
		fallback: "#999999",
	}
}

// Color возвращает цвет для категории, для неизвестной - запасной серый
func (t *Theme) Color(c scanner.Category) string {
	if color, ok := t.colors[c]; ok {
		return color
	}
	return t.fallback
}

// SelectedColor цвет подсветки выделенного контакта
func (t *Theme) SelectedColor() string {
	return t.selected
}

// Palette снимок всей палитры для передачи клиенту при подключении
func (t *Theme) Palette() map[string]string {
	palette := make(map[string]string, len(t.colors)+1)
	for category, color := range t.colors {
		palette[string(category)] = color
	}
	palette["selected"] = t.selected
	return palette
}
