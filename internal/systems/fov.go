package systems

import (
	"roguecore/internal/domain"
	"roguecore/internal/engine"
	"roguecore/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Мультипликаторы для трансформации координат в 8 октантов
var multipliers = [4][8]int{
	{1, 0, 0, -1, -1, 0, 0, 1},
	{0, 1, -1, 0, 0, -1, 1, 0},
	{0, 1, 1, 0, 0, -1, -1, 0},
	{1, 0, 0, 1, -1, 0, 0, -1},
}

// ComputeVisibleTiles возвращает множество видимых клеток {точка: true}.
// Карту не меняет.
func ComputeVisibleTiles(m *engine.Map, origin domain.Point, radius int, observer engine.Creature) map[domain.Point]bool {
	fovLogger := logger.Log.WithFields(logrus.Fields{
		"component":    "fov_system",
		"map":          m.Name(),
		"observer_pos": origin,
	})

	visible := make(map[domain.Point]bool)
	if radius <= 0 {
		fovLogger.Warn("FOV calculation skipped for blind observer (radius <= 0).")
		return visible // Слепой
	}

	fovLogger.WithField("radius", radius).Debug("Starting FOV calculation.")

	// Центр всегда виден
	visible[origin] = true

	// Рекурсивный Shadowcasting для 8 октантов
	for i := 0; i < 8; i++ {
		castLight(m, observer, origin.X, origin.Y, 1, 1.0, 0.0, radius,
			multipliers[0][i], multipliers[1][i],
			multipliers[2][i], multipliers[3][i], visible)
	}

	fovLogger.WithField("visible_tiles", len(visible)).Debug("FOV calculation complete.")
	return visible
}

// UpdateFOV darkens the map, then lights every cell the observer sees from where it
// stands. Lit cells refresh the map's memory. Returns the number of lit cells.
func UpdateFOV(m *engine.Map, observer engine.Creature, radius int) int {
	m.ClearSeen()
	visible := ComputeVisibleTiles(m, observer.Base().Pos().Point(), radius, observer)
	for p := range visible {
		m.SetSeen(p, domain.Lit)
	}
	return len(visible)
}

func castLight(m *engine.Map, observer engine.Creature, cx, cy, row int, start, end float64, radius, xx, xy, yx, yy int, visible map[domain.Point]bool) {
	if start < end {
		return
	}

	radiusSq := float64(radius * radius)

	for j := row; j <= radius; j++ {
		dx, dy := -j-1, -j
		blocked := false
		newStart := start

		for {
			dx++
			if dx > 0 {
				break
			}
			dy = -j

			// Расчет наклонов (Slopes)
			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			// Трансформация координат в глобальные
			p := domain.Pt(cx+dx*xx+dy*xy, cy+dx*yx+dy*yy)

			// Проверка границ и радиуса
			if m.Contains(p) && float64(dx*dx+dy*dy) < radiusSq {
				visible[p] = true
			}

			// Логика теней
			if blocked {
				// Мы идем вдоль стены...
				if m.BlocksVision(p, observer) {
					newStart = rSlope
					continue
				}
				// Стена кончилась, началась пустота
				blocked = false
				start = newStart
			} else if m.BlocksVision(p, observer) && j < radius {
				// Мы шли по пустоте и наткнулись на стену
				blocked = true
				// Рекурсивно запускаем сканирование следующего ряда
				castLight(m, observer, cx, cy, j+1, start, lSlope, radius, xx, xy, yx, yy, visible)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}
