package conversation

import (
	"errors"
	"strings"
	"testing"

	"github.com/BaSui01/clarity/llm"
	"github.com/stretchr/testify/assert"
)

func TestUserFacingMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "rate limited maps to quota text",
			err:  &llm.Error{Code: llm.ErrRateLimited, Message: "429 too many requests"},
			want: quotaErrorMessage,
		},
		{
			name: "quota exceeded maps to quota text",
			err:  &llm.Error{Code: llm.ErrQuotaExceeded, Message: "insufficient_quota"},
			want: quotaErrorMessage,
		},
		{
			name: "unauthorized maps to auth text",
			err:  &llm.Error{Code: llm.ErrUnauthorized, Message: "invalid api key"},
			want: authErrorMessage,
		},
		{
			name: "forbidden maps to auth text",
			err:  &llm.Error{Code: llm.ErrForbidden, Message: "blocked"},
			want: authErrorMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, userFacingMessage(tt.err))
		})
	}
}

func TestUserFacingMessage_GenericTruncation(t *testing.T) {
	t.Parallel()

	got := userFacingMessage(errors.New("boom"))
	assert.Equal(t, "Sorry, there was an unexpected error: boom...", got)

	long := errors.New(strings.Repeat("x", 300))
	got = userFacingMessage(long)
	assert.Equal(t, "Sorry, there was an unexpected error: "+strings.Repeat("x", 100)+"...", got)

	// Other provider codes fall through to the generic shape too.
	got = userFacingMessage(&llm.Error{Code: llm.ErrUpstreamTimeout, Message: "gateway timeout"})
	assert.True(t, strings.HasPrefix(got, "Sorry, there was an unexpected error:"))
}
