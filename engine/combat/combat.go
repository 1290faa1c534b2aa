// Package combat resolves monster spawns, monster attacks, and the player's
// (or a following pet's) attacks against monsters.
//
// A monster is Dormant (not present), Present (health = remaining hits), or
// Defeated; defeat immediately resets it to Dormant at full health so it can
// spawn again on a later turn.
package combat

import (
	"strconv"
	"strings"

	"github.com/nathoo/multiquest/engine/messages"
	"github.com/nathoo/multiquest/engine/scoring"
	"github.com/nathoo/multiquest/engine/state"
	"github.com/nathoo/multiquest/engine/turn"
	"github.com/nathoo/multiquest/types"
)

// Attack handles an explicit "attack <target>" command.
func Attack(t *turn.Turn) {
	s := t.Session
	if !state.Alive(s.Player) {
		t.Fail(messages.DeadAttack, "")
		return
	}

	m := state.FindMonster(s, t.Intent.Modifier)
	if m == nil {
		t.Fail(messages.NoTarget, t.Intent.Modifier)
		return
	}

	switch {
	case m.Weapon != "" && state.Carries(s, m.Weapon):
		wound(t, m, false)
	case state.FollowingPet(s) != nil:
		petAttack(t, m)
	case m.Weapon == "":
		t.Fail(messages.PetOnly, m.Name)
	default:
		t.Fail(messages.NoWeapon, m.Weapon)
	}
}

// Strike resolves a weapon item's use against a present monster in the
// player's room that is vulnerable to it. It reports whether a target was
// found.
func Strike(t *turn.Turn, weapon string) bool {
	for _, m := range state.MonstersHere(t.Session) {
		if strings.EqualFold(m.Weapon, weapon) {
			wound(t, m, false)
			return true
		}
	}
	return false
}

// MonsterPhase runs every monster homed in the player's room: dormant ones
// may appear, present ones attack.
func MonsterPhase(t *turn.Turn) {
	s := t.Session
	for i := range s.Monsters {
		if !state.Alive(s.Player) {
			return
		}
		m := &s.Monsters[i]
		if m.Room != s.Player.Room || t.Defeated[m.Key] {
			continue
		}

		if !m.Present {
			if t.RNG.Chance(m.AppearChance) {
				m.Present = true
				m.Health = m.AttacksToKill
				t.Say(messages.MonsterAppears, m.Name)
				t.Print(m.Description)
			}
			continue
		}

		if t.RNG.Chance(m.HitChance) {
			s.Player.Health -= m.Damage
			t.Say(messages.MonsterHit, m.Name)
		} else {
			t.Say(messages.MonsterMiss, m.Name)
		}
	}
}

func petAttack(t *turn.Turn, m *types.Monster) {
	if !t.RNG.Chance(m.PetChance) {
		t.Say(messages.PetMiss, m.Name)
		return
	}
	wound(t, m, true)
}

// wound applies one point of damage and handles defeat.
func wound(t *turn.Turn, m *types.Monster, byPet bool) {
	if m.Health > 0 {
		m.Health--
	}
	if m.Health > 0 {
		if byPet {
			t.Say(messages.PetAttack, m.Name)
		} else {
			t.Say(messages.MonsterHurt, m.Name)
		}
		return
	}

	tag, key := messages.MonsterDefeated, scoring.DefeatedPrefix+m.Name
	if byPet {
		tag, key = messages.PetDefeated, scoring.PetDefeatedPrefix+m.Name
	}
	t.Say(tag, m.Name)
	if pts := scoring.Award(t.Session, key); pts > 0 {
		t.Say(messages.Points, strconv.Itoa(pts))
	}

	m.Present = false
	m.Health = m.AttacksToKill
	t.Defeated[m.Key] = true
	t.Log.Debug("monster defeated", "monster", m.Key, "pet", byPet)
}
