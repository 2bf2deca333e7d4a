package conversation

import (
	"context"
	"testing"
	"time"

	"github.com/BaSui01/clarity/agent"
	"github.com/BaSui01/clarity/session"
	"github.com/BaSui01/clarity/testutil/mocks"
	"github.com/BaSui01/clarity/types"
	"pgregory.net/rapid"
)

// Panel invariants under arbitrary message sequences: the question count
// never passes the cap, the index cycles 1,2,0,1,... while questions
// remain, and capped sessions emit exactly one message per input.
func TestJury_PanelInvariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		provider := mocks.NewMockProvider().WithResponse("[curious] and why is that?")
		o := NewJuryOrchestrator(0, nil)
		o.sleep = func(context.Context, time.Duration) error { return nil }
		sess := session.New("prop", types.ModeJury, "", provider, agent.DefaultOptions(), session.DefaultLimits(), nil)

		n := rapid.IntRange(0, 12).Draw(t, "messages")
		panelSize := len(sess.Personas)
		maxQ := sess.Limits.MaxQuestions

		for i := 0; i < n; i++ {
			text := rapid.SampledFrom([]string{"sure", "I think so", "here is my answer", "maybe"}).Draw(t, "text")
			rec := &eventRecorder{}
			if err := o.HandleUserMessage(context.Background(), sess, text, "Alice", rec.emit); err != nil {
				t.Fatalf("turn %d: %v", i, err)
			}

			if sess.QuestionsAsked > maxQ {
				t.Fatalf("questions asked %d exceeds cap %d", sess.QuestionsAsked, maxQ)
			}
			if got, want := sess.JuryIndex, sess.QuestionsAsked%panelSize; got != want {
				t.Fatalf("jury index %d, want %d after %d questions", got, want, sess.QuestionsAsked)
			}
			if sess.QuestionsAsked == maxQ && i >= maxQ {
				// Past the cap: exactly one closing message, no errors.
				if len(rec.events) != 1 {
					t.Fatalf("capped turn emitted %d events, want 1", len(rec.events))
				}
				if len(rec.errorEvents()) != 0 {
					t.Fatalf("capped turn emitted an error event")
				}
			}
		}

		want := n
		if want > maxQ {
			want = maxQ
		}
		if sess.QuestionsAsked != want {
			t.Fatalf("questions asked = %d, want %d after %d messages", sess.QuestionsAsked, want, n)
		}
	})
}
