package conversation

import "fmt"

// Task templates handed to agents. Each wraps the user's utterance and
// whatever conversation state the turn needs; the persona's own voice
// comes from its system prompt, not from these.

func openingQuestionTask(userMessage, personaTag string) string {
	return fmt.Sprintf(`This is the start of a presentation evaluation.

The user said: %q

Ask your first question as %s focused on your expertise. Ask one clear, engaging question.`, userMessage, personaTag)
}

func followUpQuestionTask(context, userMessage, personaTag string) string {
	return fmt.Sprintf(`Previous conversation:
%s

The user just responded: %q

Now ask your question as %s focused on your area of expertise. Ask one clear, engaging question that builds on the conversation.`, context, userMessage, personaTag)
}

func acknowledgmentTask(userMessage, userName string) string {
	return fmt.Sprintf(`The user just responded to your question: %q

Acknowledge their response with a brief, natural thank you. Examples:
- "[happy] Thank you for sharing that, %s!"
- "[thoughtful] Thanks, that's really helpful to know."
- "[curious] Great, thank you for explaining that!"

Be brief and natural - just 1-2 sentences maximum.`, userMessage, userName)
}

func closingTask(userMessage, userName string) string {
	return fmt.Sprintf(`The user just responded to your question: %q

Thank them for their response and conclude that the evaluation is complete. Example:
"[thoughtful] Thank you %s! [pause] I think we are done with the questions. [confident] You've shared some really valuable insights about your presentation. [happy] We appreciate you taking the time to practice with us!"

Be natural and appreciative.`, userMessage, userName)
}

func fallbackClosing(userName string) string {
	return fmt.Sprintf("[thoughtful] Thank you %s! [pause] I think we are done with the questions. [confident] You've shared some really valuable insights. [happy] We appreciate your time!", userName)
}

// Markers the environment filter uses to catch instruction text leaking
// back out of the model as an agent reply.
const (
	contextMarker  = "Previous conversation context:"
	userSaidMarker = "User just said:"
)

func environmentTask(context, userMessage string) string {
	return fmt.Sprintf(`
%s
%s

%s %q

As an agent in this conversation, respond naturally based on:
1. What the user just said
2. The conversation history above
3. Your personality and role
4. Build on what others have said
5. Ask follow-up questions to keep the conversation engaging

Respond naturally and conversationally. Reference previous topics when relevant.
`, contextMarker, context, userSaidMarker, userMessage)
}
