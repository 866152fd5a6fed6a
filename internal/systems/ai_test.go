package systems

import (
	"testing"

	"roguecore/internal/domain"
)

func TestComputeNPCAction(t *testing.T) {
	setup := func(rows ...string) (*dummy, *dummy) {
		if len(rows) == 0 {
			rows = []string{
				"..........",
				"..........",
				"..........",
				"..........",
				"..........",
				"..........",
				"..........",
				"..........",
				"..........",
				"..........",
			}
		}
		m := createTestMap(rows...)
		npc, player := newDummy("goblin"), newDummy("player")
		m.AddCreature(domain.Pt(1, 1), npc)
		m.AddCreature(domain.Pt(5, 5), player)
		return npc, player
	}

	t.Run("No target should Wait", func(t *testing.T) {
		npc, _ := setup()
		if act := ComputeNPCAction(npc, nil, 8); act.Action != domain.ActionWait {
			t.Errorf("NPC without target should WAIT, got %v", act.Action)
		}
	})

	t.Run("Target Too Far", func(t *testing.T) {
		npc, player := setup()
		m := npc.Pos().Map()
		m.MoveCreature(domain.Pt(0, 0), npc)
		m.MoveCreature(domain.Pt(9, 9), player)

		if act := ComputeNPCAction(npc, player, 8); act.Action != domain.ActionWait {
			t.Errorf("NPC too far should WAIT, got %v", act.Action)
		}
	})

	t.Run("Target Adjacent", func(t *testing.T) {
		npc, player := setup()
		npc.Pos().Map().MoveCreature(domain.Pt(5, 4), npc)

		act := ComputeNPCAction(npc, player, 8)
		if act.Action != domain.ActionWait || act.Reason != "adjacent" {
			t.Errorf("NPC next to target should hold, got %v (%s)", act.Action, act.Reason)
		}
	})

	t.Run("Target In Pursuit Range", func(t *testing.T) {
		npc, player := setup()
		npc.Pos().Map().MoveCreature(domain.Pt(5, 3), npc)

		act := ComputeNPCAction(npc, player, 8)
		if act.Action != domain.ActionMove {
			t.Errorf("NPC in aggro range should MOVE, got %v", act.Action)
		}
		// Move towards (5,5) from (5,3) => dy=+1
		if act.Dx != 0 || act.Dy != 1 {
			t.Errorf("Expected move (0,1), got (%d,%d)", act.Dx, act.Dy)
		}
	})

	t.Run("Target Behind Wall", func(t *testing.T) {
		npc, player := setup(
			"..........",
			"..........",
			"..........",
			"...#######",
			"..........",
			"..........",
		)
		m := npc.Pos().Map()
		m.MoveCreature(domain.Pt(6, 1), npc)
		m.MoveCreature(domain.Pt(6, 5), player)

		if act := ComputeNPCAction(npc, player, 8); act.Action != domain.ActionWait {
			t.Errorf("NPC without line of sight should WAIT, got %v", act.Action)
		}
	})

	t.Run("Different maps", func(t *testing.T) {
		npc, _ := setup()
		_, stranger := setup()
		if act := ComputeNPCAction(npc, stranger, 8); act.Action != domain.ActionWait {
			t.Errorf("Target on another map should not be chased, got %v", act.Action)
		}
	})
}
