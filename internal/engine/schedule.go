package engine

import (
	"container/heap"
	"fmt"

	"roguecore/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Schedule is the per-map turn order: a binary heap plus an actor->item index, so
// insert, remove and reschedule are all O(log n).
type Schedule struct {
	queue TurnQueue
	items map[Actor]*TurnItem
	seq   uint64
}

func NewSchedule() *Schedule {
	return &Schedule{
		queue: make(TurnQueue, 0),
		items: make(map[Actor]*TurnItem),
	}
}

func (s *Schedule) nextSeq() uint64 {
	s.seq++
	return s.seq
}

// Add registers an actor at its current turn. Adding twice panics.
func (s *Schedule) Add(a Actor) {
	if _, ok := s.items[a]; ok {
		panic(fmt.Sprintf("engine: actor %T is already scheduled", a))
	}

	item := &TurnItem{
		Value:    a,
		Priority: a.Base().turn,
		Seq:      s.nextSeq(),
	}
	heap.Push(&s.queue, item)
	s.items[a] = item

	logger.Log.WithFields(logrus.Fields{
		"actor": describeActor(a),
		"turn":  item.Priority,
	}).Debug("Actor added to schedule")
}

// Remove drops the actor. Returns false if it was not scheduled.
func (s *Schedule) Remove(a Actor) bool {
	item, ok := s.items[a]
	if !ok {
		return false
	}
	heap.Remove(&s.queue, item.Index)
	delete(s.items, a)
	return true
}

// Peek returns the actor with the lowest turn without removing it.
func (s *Schedule) Peek() (Actor, bool) {
	if s.queue.Len() == 0 {
		return nil, false
	}
	return s.queue[0].Value, true
}

// Reschedule advances the actor's turn by cost ticks. A zero cost keeps its place in
// line; a positive cost puts it behind actors already waiting on the same turn.
func (s *Schedule) Reschedule(a Actor, cost int) {
	if cost < 0 {
		panic(fmt.Sprintf("engine: negative action cost %d", cost))
	}
	item, ok := s.items[a]
	if !ok {
		panic(fmt.Sprintf("engine: reschedule of unscheduled actor %T", a))
	}
	if cost == 0 {
		return
	}
	b := a.Base()
	b.turn += cost
	s.queue.Update(item, b.turn, s.nextSeq())
}

// Contains reports whether the actor is scheduled here.
func (s *Schedule) Contains(a Actor) bool {
	_, ok := s.items[a]
	return ok
}

func (s *Schedule) Len() int {
	return s.queue.Len()
}

// DebugDump возвращает снимок очереди для отладки
func (s *Schedule) DebugDump() []map[string]interface{} {
	// Инициализируем как пустой слайс, а не nil. Тогда в JSON это будет "[]", а не "null"
	result := make([]map[string]interface{}, 0, len(s.queue))

	for _, item := range s.queue {
		result = append(result, map[string]interface{}{
			"actor":    describeActor(item.Value),
			"priority": item.Priority,
			"seq":      item.Seq,
			"index":    item.Index,
		})
	}
	return result
}

func describeActor(a Actor) string {
	if c, ok := a.(Creature); ok {
		return c.Name()
	}
	if s, ok := a.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", a)
}
