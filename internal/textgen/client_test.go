package textgen

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Generate(t *testing.T) {
	tests := []struct {
		name       string
		apiKey     string
		status     int
		body       string
		want       string
		wantErr    error
		wantStatus int
		wantMsg    string
	}{
		{
			name:   "output_text field",
			apiKey: "sk-test",
			status: http.StatusOK,
			body:   `{"output_text":"{\"ok\":true}"}`,
			want:   `{"ok":true}`,
		},
		{
			name:   "output items",
			apiKey: "sk-test",
			status: http.StatusOK,
			body:   `{"output":[{"type":"reasoning"},{"type":"message","role":"assistant","content":[{"type":"output_text","text":"[1,"},{"type":"output_text","text":"2]"}]}]}`,
			want:   `[1,2]`,
		},
		{
			name:       "upstream error message kept verbatim",
			apiKey:     "sk-test",
			status:     http.StatusTooManyRequests,
			body:       `{"error":{"message":"Rate limit reached"}}`,
			wantStatus: http.StatusTooManyRequests,
			wantMsg:    "Rate limit reached",
		},
		{
			name:       "upstream error without body",
			apiKey:     "sk-test",
			status:     http.StatusBadGateway,
			body:       `<html>bad gateway</html>`,
			wantStatus: http.StatusBadGateway,
			wantMsg:    "OpenAI request failed",
		},
		{
			name:    "missing api key",
			apiKey:  "",
			wantErr: ErrMissingAPIKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got responsesRequest
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v1/responses", r.URL.Path)
				assert.Equal(t, "Bearer "+tt.apiKey, r.Header.Get("Authorization"))
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewClient(Config{APIKey: tt.apiKey, BaseURL: srv.URL + "/", Model: "gpt-test", Timeout: time.Second}, nil)
			text, err := c.Generate(context.Background(), "be terse", "say hi")

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, "OPENAI_API_KEY is not set.", err.Error())
			case tt.wantStatus != 0:
				var upstream *UpstreamError
				require.True(t, errors.As(err, &upstream))
				assert.Equal(t, tt.wantStatus, upstream.StatusCode)
				assert.Equal(t, tt.wantMsg, upstream.Error())
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, text)
				assert.Equal(t, responsesRequest{Model: "gpt-test", Instructions: "be terse", Input: "say hi"}, got)
			}
		})
	}
}

func TestClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "sk", BaseURL: srv.URL, Timeout: 20 * time.Millisecond}, nil)
	_, err := c.Generate(context.Background(), "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "openai request")
}

func TestWithModel(t *testing.T) {
	c := NewClient(Config{APIKey: "sk", Model: "gpt-5.2"}, nil)
	jobs := c.WithModel("gpt-4o")

	assert.Equal(t, "gpt-5.2", c.Model())
	assert.Equal(t, "gpt-4o", jobs.Model())
}

func TestPrompts(t *testing.T) {
	in := ResearchInput(ResearchParams{Niche: "fitness"})
	assert.Contains(t, in, "niche fitness, audience general, market global, tone educational")

	job := ContentJobInput(ContentParams{Platform: "TikTok", Topic: "AI", Tone: "bold", IncludeAB: true})
	assert.Contains(t, job, "- Include A/B variation: yes")
	assert.Contains(t, job, `"abVariation": "alternative caption text here"`)

	noAB := ContentJobInput(ContentParams{Platform: "X"})
	assert.Contains(t, noAB, `"abVariation": null`)
}
