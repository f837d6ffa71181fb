package ws

import (
	"math"
	"time"

	"elite-scanner/backend/internal/scanner"
	"elite-scanner/backend/internal/theme"
)

// FrameSerializer переводит результаты проекции в проводной формат кадра
type FrameSerializer struct {
	theme *theme.Theme
}

// NewFrameSerializer создает сериализатор с заданной палитрой
func NewFrameSerializer(th *theme.Theme) *FrameSerializer {
	return &FrameSerializer{theme: th}
}

// Вспомогательная функция для проверки и замены NaN/Inf
func safeFloat64(val, defaultVal float64) float64 {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return defaultVal
	}
	return val
}

// BuildHello собирает приветственное сообщение с конфигурацией и палитрой
func (fs *FrameSerializer) BuildHello(cfg scanner.Config) *HelloMessage {
	return &HelloMessage{
		Type:                MessageTypeHello,
		MaxRange:            cfg.MaxRange,
		DisplayRadius:       cfg.DisplayRadius,
		OrientationRelative: cfg.OrientationRelative,
		HeightScale:         cfg.HeightScale,
		Palette:             fs.theme.Palette(),
		ServerTime:          GetCurrentServerTime(),
	}
}

// BuildFrame собирает кадр из спроецированных контактов и состояния анимации
func (fs *FrameSerializer) BuildFrame(contacts []scanner.ProjectedContact, sweep *scanner.Sweep, now time.Time) *FrameMessage {
	wire := make([]ContactWire, 0, len(contacts))
	for _, c := range contacts {
		color := fs.theme.Color(c.Category)
		if c.Selected {
			color = fs.theme.SelectedColor()
		}
		wire = append(wire, ContactWire{
			ID:       c.ID,
			Category: string(c.Category),
			Color:    color,
			Selected: c.Selected,
			X:        safeFloat64(c.DisplayPosition.X(), 0),
			Y:        safeFloat64(c.DisplayPosition.Y(), 0),
			Z:        safeFloat64(c.DisplayPosition.Z(), 0),
			BaseX:    safeFloat64(c.BasePosition.X(), 0),
			BaseZ:    safeFloat64(c.BasePosition.Z(), 0),
			Distance: safeFloat64(c.NormalizedDistance, 0),
			Above:    c.IsAbove,
		})
	}

	return &FrameMessage{
		Type:         MessageTypeFrame,
		SweepAngle:   sweep.Angle(now),
		DisplayAngle: sweep.DisplayAngle(now),
		Pulse:        sweep.Pulse(now),
		Contacts:     wire,
		ServerTime:   GetCurrentServerTime(),
	}
}
