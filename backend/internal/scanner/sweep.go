package scanner

import (
	"math"
	"time"
)

// Анимационное состояние дисплея: линия развертки, медленное вращение
// группы и пульсация выделенного маркера. Чистая функция времени,
// состояние контактов не читает - презентационный слой снимает
// снапшоты ProjectedContact отдельно.

const (
	// DefaultSweepRPM обороты линии развертки в минуту
	DefaultSweepRPM = 12.0

	// DefaultDisplayRPM медленное авто-вращение всей группы дисплея
	DefaultDisplayRPM = 0.5

	// DefaultPulseHz частота пульсации выделенного контакта
	DefaultPulseHz = 1.5
)

// Sweep управляет углами анимации дисплея
type Sweep struct {
	sweepRPM   float64
	displayRPM float64
	pulseHz    float64
	start      time.Time
}

// NewSweep создает развертку с отсчетом от текущего момента
func NewSweep(sweepRPM, displayRPM float64) *Sweep {
	if sweepRPM <= 0 {
		sweepRPM = DefaultSweepRPM
	}
	if displayRPM < 0 {
		displayRPM = DefaultDisplayRPM
	}
	return &Sweep{
		sweepRPM:   sweepRPM,
		displayRPM: displayRPM,
		pulseHz:    DefaultPulseHz,
		start:      time.Now(),
	}
}

// Angle текущий угол линии развертки в радианах [0, 2π)
func (s *Sweep) Angle(now time.Time) float64 {
	elapsed := now.Sub(s.start).Seconds()
	rps := s.sweepRPM / 60.0
	return math.Mod(elapsed*rps*2*math.Pi, 2*math.Pi)
}

// DisplayAngle текущий угол авто-вращения группы дисплея [0, 2π)
func (s *Sweep) DisplayAngle(now time.Time) float64 {
	elapsed := now.Sub(s.start).Seconds()
	rps := s.displayRPM / 60.0
	return math.Mod(elapsed*rps*2*math.Pi, 2*math.Pi)
}

// Pulse интенсивность подсветки выделенного маркера в [0,1]
func (s *Sweep) Pulse(now time.Time) float64 {
	elapsed := now.Sub(s.start).Seconds()
	return 0.5 + 0.5*math.Sin(elapsed*s.pulseHz*2*math.Pi)
}
