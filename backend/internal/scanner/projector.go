package scanner

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Система координат как в three.js: Y вверх, плоскость сканера XZ,
// вперед -Z. Азимут считается вокруг Y через atan2(x, z).

// Project проецирует один объект на полусферу дисплея.
//
// Если observer == nil, позиция объекта считается уже относительной
// (наблюдатель в начале координат, без поворота). Объект ровно в точке
// наблюдателя проецируется в центр: atan2(0,0) == 0 по соглашению
// стандартной библиотеки.
func Project(obj TrackedObject, observer *Observer, cfg Config) (ProjectedContact, error) {
	if err := cfg.Validate(); err != nil {
		return ProjectedContact{}, err
	}

	rel := obj.Position
	if observer != nil {
		rel = obj.Position.Sub(observer.Position)
		if cfg.OrientationRelative {
			// Переводим в локальную систему наблюдателя
			rel = observer.Orientation.Inverse().Rotate(rel)
		}
	}

	if !isFiniteVec(rel) {
		return ProjectedContact{}, fmt.Errorf("%w: object %q at (%v, %v, %v)",
			ErrNonFinitePosition, obj.ID, rel.X(), rel.Y(), rel.Z())
	}

	distance := rel.Len()
	horizontal := math.Hypot(rel.X(), rel.Z())

	theta := math.Atan2(rel.X(), rel.Z())
	phi := math.Atan2(rel.Y(), horizontal)

	// Единственный clamp в системе: все, что дальше MaxRange,
	// прижимается к краю дисплея
	normalized := math.Min(distance/cfg.MaxRange, 1)

	// Сферическое отображение: горизонтальная составляющая сжимается
	// косинусом возвышения, контакт строго над головой проецируется
	// в центр с максимальной "ножкой"
	radarDist := normalized * cfg.DisplayRadius
	display := mgl64.Vec3{
		radarDist * math.Cos(phi) * math.Sin(theta),
		normalized * math.Sin(phi) * cfg.DisplayRadius * cfg.HeightScale,
		radarDist * math.Cos(phi) * math.Cos(theta),
	}

	return ProjectedContact{
		ID:                 obj.ID,
		Category:           obj.Category,
		Selected:           obj.Selected,
		DisplayPosition:    display,
		BasePosition:       mgl64.Vec3{display.X(), 0, display.Z()},
		NormalizedDistance: normalized,
		IsAbove:            rel.Y() > 0,
	}, nil
}

// ProjectAll проецирует список объектов независимо друг от друга.
// Некорректная конфигурация прерывает весь вызов; объект с NaN/Inf
// координатами пропускается, счетчик пропущенных возвращается вторым
// значением. Порядок результатов соответствует порядку входа.
func ProjectAll(objs []TrackedObject, observer *Observer, cfg Config) ([]ProjectedContact, int, error) {
	if err := cfg.Validate(); err != nil {
		return nil, 0, err
	}

	contacts := make([]ProjectedContact, 0, len(objs))
	skipped := 0
	for _, obj := range objs {
		contact, err := Project(obj, observer, cfg)
		if err != nil {
			skipped++
			continue
		}
		contacts = append(contacts, contact)
	}
	return contacts, skipped, nil
}
