package world

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"elite-scanner/backend/internal/scanner"
)

// Simulator наполняет реестр демонстрационными контактами и
// периодически смещает их случайным блужданием, как демо-сцена
// оригинального сканера
type Simulator struct {
	manager  *Manager
	rng      *rand.Rand
	maxRange float64
	jitter   float64
}

// SimulatorSettings параметры демо-симуляции
type SimulatorSettings struct {
	ContactCount int
	Seed         uint64
	// Jitter - амплитуда случайного смещения за тик, в мировых единицах
	Jitter float64
}

// Веса категорий при спавне: враждебных больше всего, станций мало
var spawnWeights = []struct {
	category scanner.Category
	weight   int
}{
	{scanner.CategoryHostile, 4},
	{scanner.CategoryFriendly, 3},
	{scanner.CategoryNeutral, 3},
	{scanner.CategoryStation, 1},
	{scanner.CategoryMissile, 2},
}

// NewSimulator создает симулятор поверх реестра контактов
func NewSimulator(manager *Manager, maxRange float64, settings SimulatorSettings) *Simulator {
	jitter := settings.Jitter
	if jitter <= 0 {
		jitter = maxRange * 0.01
	}
	return &Simulator{
		manager:  manager,
		rng:      rand.New(rand.NewPCG(settings.Seed, settings.Seed^0x9e3779b9)),
		maxRange: maxRange,
		jitter:   jitter,
	}
}

// Spawn создает count контактов внутри сферы радиусом maxRange*1.2:
// часть окажется за пределами дальности и проверит прижатие к краю
func (s *Simulator) Spawn(count int) {
	for i := 0; i < count; i++ {
		category := s.pickCategory()
		contact := scanner.TrackedObject{
			ID:       fmt.Sprintf("%s_%d", category, i),
			Position: s.randomInSphere(s.maxRange * 1.2),
			Category: category,
		}
		s.manager.AddContact(contact)
	}
	log.Printf("[World] Создано %d демо-контактов", count)
}

// Run запускает цикл случайного блуждания до отмены контекста
func (s *Simulator) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Printf("[World] Симулятор запущен, интервал %v", interval)
	for {
		select {
		case <-ctx.Done():
			log.Printf("[World] Симулятор остановлен")
			return
		case <-ticker.C:
			s.Tick()
		}
	}
}

// Tick один шаг случайного блуждания всех контактов
func (s *Simulator) Tick() {
	limit := s.maxRange * 1.5
	for _, c := range s.manager.AllContacts() {
		pos := c.Position.Add(mgl64.Vec3{
			(s.rng.Float64()*2 - 1) * s.jitter,
			(s.rng.Float64()*2 - 1) * s.jitter,
			(s.rng.Float64()*2 - 1) * s.jitter,
		})
		// Не даем контактам разбредаться бесконечно
		for i := 0; i < 3; i++ {
			if pos[i] > limit {
				pos[i] = limit
			}
			if pos[i] < -limit {
				pos[i] = -limit
			}
		}
		s.manager.UpdatePosition(c.ID, pos)
	}
}

func (s *Simulator) pickCategory() scanner.Category {
	total := 0
	for _, w := range spawnWeights {
		total += w.weight
	}
	n := s.rng.IntN(total)
	for _, w := range spawnWeights {
		n -= w.weight
		if n < 0 {
			return w.category
		}
	}
	return scanner.CategoryNeutral
}

// randomInSphere равномерная точка внутри сферы заданного радиуса
func (s *Simulator) randomInSphere(radius float64) mgl64.Vec3 {
	for {
		v := mgl64.Vec3{
			s.rng.Float64()*2 - 1,
			s.rng.Float64()*2 - 1,
			s.rng.Float64()*2 - 1,
		}
		if v.Len() <= 1 {
			return v.Mul(radius)
		}
	}
}
