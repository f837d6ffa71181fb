package scanner

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Category классификация контакта, влияет только на отображение
type Category string

const (
	CategoryHostile  Category = "hostile"
	CategoryFriendly Category = "friendly"
	CategoryNeutral  Category = "neutral"
	CategoryStation  Category = "station"
	CategoryMissile  Category = "missile"
)

// Categories список всех известных категорий
var Categories = []Category{
	CategoryHostile,
	CategoryFriendly,
	CategoryNeutral,
	CategoryStation,
	CategoryMissile,
}

// TrackedObject отслеживаемый объект в мировых координатах
type TrackedObject struct {
	ID       string
	Position mgl64.Vec3
	Category Category
	Selected bool
}

// Observer наблюдатель (корабль), относительно которого строится проекция
type Observer struct {
	Position    mgl64.Vec3
	Orientation mgl64.Quat
}

// Config конфигурация проекции сканера
type Config struct {
	// MaxRange - дистанция в мире, отображаемая на край дисплея.
	// Контакты дальше MaxRange прижаты к краю по своему азимуту,
	// а не скрыты: несколько очень далеких контактов визуально
	// сливаются на краю, это ожидаемое поведение.
	MaxRange float64

	// DisplayRadius - радиус выходного пространства дисплея
	DisplayRadius float64

	// OrientationRelative - поворачивать ли позиции в локальную
	// систему координат наблюдателя перед проекцией
	OrientationRelative bool

	// HeightScale - коэффициент сжатия вертикальной составляющей
	// в [0,1], дает полусферу вместо полной сферы
	HeightScale float64
}

// ErrInvalidConfig возвращается при некорректной конфигурации сканера
var ErrInvalidConfig = errors.New("invalid scanner config")

// ErrNonFinitePosition возвращается для объекта с NaN/Inf координатами
var ErrNonFinitePosition = errors.New("non-finite position")

// Validate проверяет конфигурацию перед проекцией
func (c Config) Validate() error {
	if !isFinite(c.MaxRange) || c.MaxRange <= 0 {
		return fmt.Errorf("%w: max_range must be positive, got %v", ErrInvalidConfig, c.MaxRange)
	}
	if !isFinite(c.DisplayRadius) || c.DisplayRadius <= 0 {
		return fmt.Errorf("%w: display_radius must be positive, got %v", ErrInvalidConfig, c.DisplayRadius)
	}
	if !isFinite(c.HeightScale) || c.HeightScale < 0 || c.HeightScale > 1 {
		return fmt.Errorf("%w: height_scale must be in [0,1], got %v", ErrInvalidConfig, c.HeightScale)
	}
	return nil
}

// ProjectedContact результат проекции одного контакта.
// Пересчитывается заново на каждом кадре, состояния не имеет.
type ProjectedContact struct {
	ID       string
	Category Category
	Selected bool

	// DisplayPosition - позиция маркера на полусфере дисплея
	DisplayPosition mgl64.Vec3

	// BasePosition - DisplayPosition с нулевой вертикалью,
	// точка основания "ножки" маркера на плоскости сканера
	BasePosition mgl64.Vec3

	// NormalizedDistance - дистанция, нормированная на MaxRange
	// и ограниченная единицей
	NormalizedDistance float64

	// IsAbove - находится ли объект выше плоскости наблюдателя
	IsAbove bool
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func isFiniteVec(v mgl64.Vec3) bool {
	return isFinite(v.X()) && isFinite(v.Y()) && isFinite(v.Z())
}
