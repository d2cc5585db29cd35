package detector

import (
	"testing"
	"time"

	"github.com/dueloapp/duelo/internal/chat"
)

func TestPride_RefusedApologyAndColdResponses(t *testing.T) {
	ts := t0
	next := func(sender, content string) chat.Message {
		m := mk(ts, sender, content)
		ts = ts.Add(time.Minute)
		return m
	}

	messages := []chat.Message{
		next("Bruno", "cansei de você"),
		next("Ana", "ok"),
		next("Bruno", "me desculpa, amor"),
		next("Ana", "tá"),
		next("Bruno", "vamos esquecer isso e sair para jantar hoje?"),
		next("Ana", "pode ser, vamos sim, escolhe o restaurante"),
		next("Bruno", "fechado então, reservo a mesa para as oito"),
	}

	m := Pride(messages, "Ana", "Bruno", time.Time{}, DefaultLexicon)

	if m.ShortResponsesAfterFight != 2 {
		t.Errorf("short responses = %d, want 2", m.ShortResponsesAfterFight)
	}
	if m.ColdResponses != 2 {
		t.Errorf("cold responses = %d, want 2", m.ColdResponses)
	}
	if m.RefusedApologies != 1 {
		t.Errorf("refused apologies = %d, want 1", m.RefusedApologies)
	}
	// Bruno apologised inside the window, Ana never did.
	if m.LastToApologize != 1 {
		t.Errorf("last to apologize = %d, want 1", m.LastToApologize)
	}

	// 2*10 + 1*20 + 2*8 + 1*30
	if m.TotalPrideScore != 86 {
		t.Errorf("score = %d, want 86", m.TotalPrideScore)
	}
}

func TestPride_SilentTreatment(t *testing.T) {
	messages := []chat.Message{
		mk(t0, "Bruno", "chega, não dá mais assim"),
		mk(t0.Add(time.Hour), "Bruno", "responde por favor"),
		mk(t0.Add(9*time.Hour), "Ana", "hm"),
	}

	m := Pride(messages, "Ana", "Bruno", time.Time{}, DefaultLexicon)

	if m.SilentTreatmentHours != 8 {
		t.Errorf("silent hours = %d, want 8", m.SilentTreatmentHours)
	}
	if m.ShortResponsesAfterFight != 1 {
		t.Errorf("short responses = %d, want 1", m.ShortResponsesAfterFight)
	}
	if m.ColdResponses != 1 {
		t.Errorf("cold responses = %d, want 1", m.ColdResponses)
	}

	// 1*10 + 8*5 + 1*8
	if m.TotalPrideScore != 58 {
		t.Errorf("score = %d, want 58", m.TotalPrideScore)
	}
}

func TestPride_AffectionateShortReplyIsNotCold(t *testing.T) {
	messages := []chat.Message{
		mk(t0, "Bruno", "cansei de brigar"),
		mk(t0.Add(time.Minute), "Ana", "eu sei ❤"),
	}

	m := Pride(messages, "Ana", "Bruno", time.Time{}, DefaultLexicon)
	if m.ColdResponses != 0 {
		t.Errorf("cold responses = %d, want 0 with affection marker", m.ColdResponses)
	}
}

func TestPride_CutoffExcludesOldConflicts(t *testing.T) {
	messages := []chat.Message{
		mk(t0, "Bruno", "cansei de você"),
		mk(t0.Add(time.Minute), "Ana", "ok"),
	}

	m := Pride(messages, "Ana", "Bruno", t0.Add(time.Hour), DefaultLexicon)
	if m.TotalPrideScore != 0 {
		t.Errorf("score = %d, want 0 outside the window", m.TotalPrideScore)
	}
}

func TestPride_NoConflictNoScore(t *testing.T) {
	messages := []chat.Message{
		mk(t0, "Bruno", "bom dia, dormiu bem?"),
		mk(t0.Add(time.Minute), "Ana", "sim"),
	}

	m := Pride(messages, "Ana", "Bruno", time.Time{}, DefaultLexicon)
	if m.TotalPrideScore != 0 {
		t.Errorf("score = %d, want 0 without a conflict window", m.TotalPrideScore)
	}
}
