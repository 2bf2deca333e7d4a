package conversation

import (
	"context"
	"strings"
	"time"

	"github.com/BaSui01/clarity/agent"
	"github.com/BaSui01/clarity/session"
	"go.uber.org/zap"
)

// DefaultEnvironmentReplyDelay paces the gap between accepted replies
// within one environment turn.
const DefaultEnvironmentReplyDelay = 2500 * time.Millisecond

// EnvironmentOrchestrator drives free-form environment sessions: each
// user message runs one fresh round-robin group chat and forwards a
// small burst of filtered agent replies.
type EnvironmentOrchestrator struct {
	replyDelay time.Duration
	sleep      SleepFunc
	logger     *zap.Logger
}

// NewEnvironmentOrchestrator creates an environment orchestrator. A zero
// replyDelay uses DefaultEnvironmentReplyDelay.
func NewEnvironmentOrchestrator(replyDelay time.Duration, logger *zap.Logger) *EnvironmentOrchestrator {
	if replyDelay <= 0 {
		replyDelay = DefaultEnvironmentReplyDelay
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnvironmentOrchestrator{
		replyDelay: replyDelay,
		sleep:      sleepContext,
		logger:     logger,
	}
}

// HandleUserMessage runs one environment turn. A session past its turn
// limit records the message and emits nothing. A fresh group chat is
// built per turn so a failed stream never poisons the next one.
func (o *EnvironmentOrchestrator) HandleUserMessage(ctx context.Context, sess *session.Session, text, userName string, emit EmitFunc) error {
	sess.Lock()
	defer sess.Unlock()

	sess.AppendUser(userName, text)

	if sess.ConversationTurns >= sess.Limits.MaxConversationTurns {
		o.logger.Info("environment turn limit reached",
			zap.String("session_id", sess.ID),
			zap.Int("turns", sess.ConversationTurns))
		return nil
	}
	sess.ConversationTurns++

	// Burst size grows once the conversation has some depth.
	maxReplies := 2
	if sess.HistoryLen() > 5 {
		maxReplies = 3
	}

	task := agent.Task{
		Content: environmentTask(sess.Context(), text),
		Source:  userName,
	}

	chat := agent.NewRoundRobinGroupChat(sess.Agents, o.logger)
	streamCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	userEcho := strings.TrimSpace(text)
	userEchoLower := strings.ToLower(userEcho)
	responded := make(map[string]bool, len(sess.Agents))
	accepted := 0

	for reply := range chat.RunStream(streamCtx, task) {
		if reply.Err != nil {
			o.logger.Warn("environment group chat failed",
				zap.String("session_id", sess.ID),
				zap.Error(reply.Err))
			return emit(newErrorEvent(userFacingMessage(reply.Err)))
		}

		content := strings.TrimSpace(reply.Content)
		if content == "" {
			continue
		}
		// The stream mirrors the task back and models sometimes parrot
		// it; none of that is a real agent reply.
		if content == userEcho || strings.ToLower(content) == userEchoLower {
			continue
		}
		if reply.Source == userName || reply.Source == "User" {
			continue
		}
		if !sess.IsKnownAgent(reply.Source) {
			continue
		}
		if responded[reply.Source] {
			continue
		}
		if strings.Contains(reply.Content, contextMarker) || strings.Contains(reply.Content, userSaidMarker) {
			continue
		}

		responded[reply.Source] = true
		displayName := sess.DisplayName(reply.Source)
		sess.AppendAgent(displayName, reply.Content)

		p, ok := sess.PersonaByKey(reply.Source)
		if !ok {
			continue
		}
		if err := emit(newAgentMessage(p, reply.Content)); err != nil {
			return err
		}
		accepted++

		if err := o.sleep(ctx, o.replyDelay); err != nil {
			return err
		}
		if accepted >= maxReplies {
			break
		}
	}

	o.logger.Info("environment turn complete",
		zap.String("session_id", sess.ID),
		zap.Int("turn", sess.ConversationTurns),
		zap.Int("replies", accepted))
	return nil
}
