package llm

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCompleter struct {
	responses []string
	errs      []error
	calls     int
	lastModel string
}

func (f *fakeCompleter) New(_ context.Context, params openai.ChatCompletionNewParams, _ ...option.RequestOption) (*openai.ChatCompletion, error) {
	i := f.calls
	f.calls++
	f.lastModel = params.Model

	if i < len(f.errs) && f.errs[i] != nil {
		return nil, f.errs[i]
	}
	content := ""
	if i < len(f.responses) {
		content = f.responses[i]
	}
	return &openai.ChatCompletion{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: content}},
		},
	}, nil
}

func TestClient_ChatText(t *testing.T) {
	fake := &fakeCompleter{responses: []string{"a short script"}}
	client := NewClientWithCompleter(fake, "gpt-4o", time.Second, 2, slog.Default())

	out, err := client.ChatText(context.Background(), "you are a writer", "write something")
	require.NoError(t, err)
	assert.Equal(t, "a short script", out)
	assert.Equal(t, 1, fake.calls)
	assert.Equal(t, "gpt-4o", fake.lastModel)
}

func TestClient_RetriesTransientErrors(t *testing.T) {
	fake := &fakeCompleter{
		errs:      []error{errors.New("503"), errors.New("timeout"), nil},
		responses: []string{"", "", "recovered"},
	}
	client := NewClientWithCompleter(fake, "gpt-4o", time.Second, 3, slog.Default())

	out, err := client.ChatText(context.Background(), "", "hello")
	require.NoError(t, err)
	assert.Equal(t, "recovered", out)
	assert.Equal(t, 3, fake.calls)
}

func TestClient_EmptyCompletionIsPermanent(t *testing.T) {
	fake := &fakeCompleter{responses: []string{""}}
	client := NewClientWithCompleter(fake, "gpt-4o", time.Second, 3, slog.Default())

	_, err := client.ChatText(context.Background(), "", "hello")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyCompletion)
	// No retries after a permanent error.
	assert.Equal(t, 1, fake.calls)
}

func TestClient_ExhaustsRetries(t *testing.T) {
	fake := &fakeCompleter{
		errs: []error{errors.New("down"), errors.New("down"), errors.New("down")},
	}
	client := NewClientWithCompleter(fake, "gpt-4o", time.Second, 2, slog.Default())

	_, err := client.ChatText(context.Background(), "", "hello")
	require.Error(t, err)
	assert.Equal(t, 3, fake.calls)
}
