package agent

import (
	"context"

	"go.uber.org/zap"
)

// Task is the single unit of work handed to a group chat: the enriched
// instruction plus the label of whoever initiated it.
type Task struct {
	Content string
	Source  string
}

// Reply is one labeled message from the group chat stream. Err is set
// on provider failure; the stream terminates after an errored reply.
type Reply struct {
	Source  string
	Content string
	Err     error
}

// RoundRobinGroupChat solicits replies from an ordered participant list,
// strictly cycling in registration order. A fresh instance is created
// per conversation turn so no run state leaks between turns.
type RoundRobinGroupChat struct {
	participants []*ChatAgent
	logger       *zap.Logger
}

// NewRoundRobinGroupChat creates a group chat over the given participants.
func NewRoundRobinGroupChat(participants []*ChatAgent, logger *zap.Logger) *RoundRobinGroupChat {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RoundRobinGroupChat{
		participants: participants,
		logger:       logger.With(zap.String("component", "round_robin_group_chat")),
	}
}

// RunStream runs the task and streams labeled replies. The task itself
// is emitted first, labeled with its source, before any participant
// speaks; consumers that only want agent output must filter it out.
// Participants then reply one at a time in registration order, each
// seeing the task plus everything said before their turn. The stream
// ends after one full round or when ctx is cancelled; consumers stop
// early by cancelling ctx. A provider error is emitted as a Reply with
// Err set and ends the stream.
func (g *RoundRobinGroupChat) RunStream(ctx context.Context, task Task) <-chan Reply {
	out := make(chan Reply)

	go func() {
		defer close(out)

		// Mirror the task back first, as AutoGen's run_stream does.
		if !send(ctx, out, Reply{Source: task.Source, Content: task.Content}) {
			return
		}

		transcript := task.Source + ": " + task.Content

		for _, participant := range g.participants {
			if ctx.Err() != nil {
				return
			}

			text, err := participant.Run(ctx, transcript)
			if err != nil {
				g.logger.Warn("participant failed",
					zap.String("agent", participant.Key),
					zap.Error(err),
				)
				send(ctx, out, Reply{Source: participant.Key, Err: err})
				return
			}
			if !send(ctx, out, Reply{Source: participant.Key, Content: text}) {
				return
			}
			transcript += "\n" + participant.Persona.Name + ": " + text
		}
	}()

	return out
}

// send delivers a reply unless ctx is done; reports delivery.
func send(ctx context.Context, out chan<- Reply, r Reply) bool {
	select {
	case out <- r:
		return true
	case <-ctx.Done():
		return false
	}
}
