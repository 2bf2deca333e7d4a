// Package conversation implements the per-mode turn orchestrators: the
// jury panel's fixed question/acknowledgment cycle and the environment
// group-chat burst policy. Orchestrators hold the session lock for the
// whole turn, so concurrent messages on one session serialize instead
// of interleaving.
package conversation

import (
	"context"
	"strings"
	"time"

	"github.com/BaSui01/clarity/persona"
	"github.com/BaSui01/clarity/session"
	"go.uber.org/zap"
)

// SleepFunc paces event delivery. Returns early with the context error
// when the context is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// DefaultJuryAckDelay paces the gap between an acknowledgment and the
// next question. Delivery pacing only, not a correctness requirement.
const DefaultJuryAckDelay = 2 * time.Second

// JuryOrchestrator drives presentation-jury sessions: one panel member
// asks per user message, the previous asker acknowledges first, and a
// closing message ends the panel once the question cap is reached.
type JuryOrchestrator struct {
	ackDelay time.Duration
	sleep    SleepFunc
	logger   *zap.Logger
}

// NewJuryOrchestrator creates a jury orchestrator. A zero ackDelay uses
// DefaultJuryAckDelay.
func NewJuryOrchestrator(ackDelay time.Duration, logger *zap.Logger) *JuryOrchestrator {
	if ackDelay <= 0 {
		ackDelay = DefaultJuryAckDelay
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JuryOrchestrator{
		ackDelay: ackDelay,
		sleep:    sleepContext,
		logger:   logger,
	}
}

// HandleUserMessage runs one jury turn. Provider failures surface as a
// single error event and leave the question counters untouched; the
// returned error is reserved for delivery failures (emit or context),
// which abort the turn outright.
func (o *JuryOrchestrator) HandleUserMessage(ctx context.Context, sess *session.Session, text, userName string, emit EmitFunc) error {
	sess.Lock()
	defer sess.Unlock()

	sess.AppendUser(userName, text)

	if sess.QuestionsAsked >= sess.Limits.MaxQuestions {
		return o.emitClosing(ctx, sess, text, userName, emit)
	}

	// The previous asker thanks the user before the panel moves on.
	if sess.LastAgentWhoAsked != "" && strings.TrimSpace(text) != "" {
		if a, ok := sess.AgentByName(sess.LastAgentWhoAsked); ok {
			reply, err := a.Run(ctx, acknowledgmentTask(text, userName))
			if err != nil {
				o.logger.Warn("jury acknowledgment failed",
					zap.String("session_id", sess.ID),
					zap.String("agent", sess.LastAgentWhoAsked),
					zap.Error(err))
				return emit(newErrorEvent(userFacingMessage(err)))
			}
			if err := emit(newAgentMessage(a.Persona, reply)); err != nil {
				return err
			}
			if err := o.sleep(ctx, o.ackDelay); err != nil {
				return err
			}
		}
	}

	// Advance before use: the first question comes from index 1. The
	// index is not rolled back on provider failure, so a retried message
	// lands on the next panel member.
	sess.JuryIndex = (sess.JuryIndex + 1) % len(sess.Agents)
	asker := sess.Agents[sess.JuryIndex]

	var task string
	if sess.QuestionsAsked == 0 {
		task = openingQuestionTask(text, asker.Persona.Tag)
	} else {
		task = followUpQuestionTask(sess.Context(), text, asker.Persona.Tag)
	}

	reply, err := asker.Run(ctx, task)
	if err != nil {
		o.logger.Warn("jury question failed",
			zap.String("session_id", sess.ID),
			zap.String("agent", asker.Persona.Name),
			zap.Error(err))
		return emit(newErrorEvent(userFacingMessage(err)))
	}

	sess.AppendAgent(asker.Persona.Name, reply)
	sess.QuestionsAsked++
	sess.LastAgentWhoAsked = asker.Persona.Name

	o.logger.Info("jury question asked",
		zap.String("session_id", sess.ID),
		zap.String("agent", asker.Persona.Name),
		zap.Int("questions_asked", sess.QuestionsAsked))

	return emit(newAgentMessage(asker.Persona, reply))
}

// emitClosing produces the terminal thank-you message. Generated once
// and cached on the session; every later message replays the cached
// text without touching the counters.
func (o *JuryOrchestrator) emitClosing(ctx context.Context, sess *session.Session, text, userName string, emit EmitFunc) error {
	closer := o.closingPersona(sess)

	if sess.Closing != "" {
		return emit(newAgentMessage(closer, sess.Closing))
	}

	if sess.LastAgentWhoAsked != "" {
		if a, ok := sess.AgentByName(sess.LastAgentWhoAsked); ok {
			reply, err := a.Run(ctx, closingTask(text, userName))
			if err != nil {
				o.logger.Warn("jury closing failed",
					zap.String("session_id", sess.ID),
					zap.Error(err))
				return emit(newErrorEvent(userFacingMessage(err)))
			}
			sess.Closing = reply
			return emit(newAgentMessage(a.Persona, reply))
		}
	}

	sess.Closing = fallbackClosing(userName)
	return emit(newAgentMessage(closer, sess.Closing))
}

func (o *JuryOrchestrator) closingPersona(sess *session.Session) persona.Persona {
	if sess.LastAgentWhoAsked != "" {
		if p, ok := sess.PersonaByName(sess.LastAgentWhoAsked); ok {
			return p
		}
	}
	return sess.Personas[0]
}
