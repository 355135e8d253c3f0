package report

import "github.com/frontdesk/ingresos-api/internal/domain/entity"

// Groups resultado de una agrupación estable: las llaves conservan el orden
// de primera aparición y cada grupo el orden de inserción. Iterar dos veces
// sobre la misma entrada produce exactamente el mismo recorrido.
type Groups[K comparable, V any] struct {
	keys  []K
	items map[K][]V
}

// GroupBy particiona items según keyFn preservando el orden de encuentro.
func GroupBy[V any, K comparable](items []V, keyFn func(V) K) *Groups[K, V] {
	g := &Groups[K, V]{items: make(map[K][]V)}
	for _, it := range items {
		k := keyFn(it)
		if _, seen := g.items[k]; !seen {
			g.keys = append(g.keys, k)
		}
		g.items[k] = append(g.items[k], it)
	}
	return g
}

// Keys llaves en orden de primera aparición.
func (g *Groups[K, V]) Keys() []K { return g.keys }

// Get elementos del grupo k en orden de inserción.
func (g *Groups[K, V]) Get(k K) []V { return g.items[k] }

// Len número de grupos.
func (g *Groups[K, V]) Len() int { return len(g.keys) }

// GroupByOTA agrupa movimientos por canal de reserva; los movimientos sin
// OTA caen en el grupo centinela "Sin OTA", nunca se descartan.
func GroupByOTA(movs []entity.Movement) *Groups[entity.OTA, entity.Movement] {
	return GroupBy(movs, func(m entity.Movement) entity.OTA { return m.OTAOrDefault() })
}

// Filter devuelve los movimientos que cumplen el predicado, en su orden
// original.
func Filter(movs []entity.Movement, pred func(entity.Movement) bool) []entity.Movement {
	var out []entity.Movement
	for _, m := range movs {
		if pred(m) {
			out = append(out, m)
		}
	}
	return out
}
