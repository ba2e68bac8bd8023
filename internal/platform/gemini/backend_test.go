package gemini

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YUKIMIKAMI/diary-app/internal/config"
	"github.com/YUKIMIKAMI/diary-app/internal/domain"
	"github.com/YUKIMIKAMI/diary-app/internal/generation"
	"github.com/YUKIMIKAMI/diary-app/internal/platform/logger"
)

const testAPIKey = "test-gemini-key"

type recordedRequest struct {
	Path   string
	APIKey string
	Body   map[string]any
}

type fakeGemini struct {
	mu       sync.Mutex
	requests []recordedRequest
	status   int
	body     string
}

func (f *fakeGemini) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)
	var body map[string]any
	_ = json.Unmarshal(raw, &body)

	f.mu.Lock()
	f.requests = append(f.requests, recordedRequest{
		Path:   r.URL.Path,
		APIKey: r.Header.Get("x-goog-api-key"),
		Body:   body,
	})
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(f.status)
	_, _ = io.WriteString(w, f.body)
}

func (f *fakeGemini) lastRequest(t *testing.T) recordedRequest {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.requests, "expected at least one request")
	return f.requests[len(f.requests)-1]
}

func (f *fakeGemini) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func textResponse(text string) string {
	resp := map[string]any{
		"candidates": []any{
			map[string]any{
				"content": map[string]any{
					"role":  "model",
					"parts": []any{map[string]any{"text": text}},
				},
				"finishReason": "STOP",
			},
		},
	}
	b, _ := json.Marshal(resp)
	return string(b)
}

func testConfig() config.LLMConfig {
	return config.LLMConfig{
		Provider:        config.ProviderGemini,
		GeminiAPIKey:    testAPIKey,
		ModelName:       "gemini-1.5-flash",
		VisionModelName: "gemini-1.5-flash",
	}
}

func newTestBackend(t *testing.T, fake *fakeGemini) *Backend {
	t.Helper()
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	log, _ := logger.GetTestLogger(t)
	b, err := NewBackend(context.Background(), log, testConfig(), generation.DefaultSettings(), WithBaseURL(srv.URL))
	require.NoError(t, err)
	return b
}

func TestNewBackend_Validation(t *testing.T) {
	t.Parallel()

	log, _ := logger.GetTestLogger(t)

	tests := []struct {
		name      string
		cfg       config.LLMConfig
		wantErrIs []error
	}{
		{
			name: "missing_api_key",
			cfg: config.LLMConfig{
				Provider:  config.ProviderGemini,
				ModelName: "gemini-1.5-flash",
			},
			wantErrIs: []error{generation.ErrInvalidConfig, generation.ErrMissingCredential},
		},
		{
			name: "missing_model_name",
			cfg: config.LLMConfig{
				Provider:     config.ProviderGemini,
				GeminiAPIKey: testAPIKey,
			},
			wantErrIs: []error{generation.ErrInvalidConfig},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b, err := NewBackend(context.Background(), log, tt.cfg, generation.DefaultSettings())
			require.Error(t, err)
			assert.Nil(t, b)
			for _, target := range tt.wantErrIs {
				assert.ErrorIs(t, err, target)
			}
		})
	}
}

func TestNewBackend_NilLogger(t *testing.T) {
	t.Parallel()

	_, err := NewBackend(context.Background(), nil, testConfig(), generation.DefaultSettings())
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)
}

func TestNewBackend_VisionModelDefaultsToTextModel(t *testing.T) {
	t.Parallel()

	log, _ := logger.GetTestLogger(t)
	cfg := testConfig()
	cfg.VisionModelName = ""

	b, err := NewBackend(context.Background(), log, cfg, generation.DefaultSettings())
	require.NoError(t, err)
	assert.Equal(t, "gemini-1.5-flash", b.model)
	assert.Equal(t, "gemini-1.5-flash", b.VisionModel())
}

func TestGenerate_Success(t *testing.T) {
	t.Parallel()

	fake := &fakeGemini{status: http.StatusOK, body: textResponse(`{"keywords":["散歩"]}`)}
	b := newTestBackend(t, fake)

	got, err := b.Generate(context.Background(), "キーワードを抽出してください")
	require.NoError(t, err)
	assert.Equal(t, `{"keywords":["散歩"]}`, got)

	req := fake.lastRequest(t)
	assert.True(t, strings.HasSuffix(req.Path, "gemini-1.5-flash:generateContent"), "path %s", req.Path)
	assert.Equal(t, testAPIKey, req.APIKey)

	contents, ok := req.Body["contents"].([]any)
	require.True(t, ok)
	require.Len(t, contents, 1)
	first := contents[0].(map[string]any)
	assert.Equal(t, "user", first["role"])
	parts := first["parts"].([]any)
	assert.Equal(t, "キーワードを抽出してください", parts[0].(map[string]any)["text"])
}

func TestGenerate_SendsFixedSettings(t *testing.T) {
	t.Parallel()

	fake := &fakeGemini{status: http.StatusOK, body: textResponse("ok")}
	b := newTestBackend(t, fake)

	_, err := b.Generate(context.Background(), "prompt")
	require.NoError(t, err)

	req := fake.lastRequest(t)
	genCfg, ok := req.Body["generationConfig"].(map[string]any)
	require.True(t, ok, "generationConfig missing from request: %v", req.Body)
	assert.InDelta(t, 0.7, genCfg["temperature"], 0.0001)
	assert.InDelta(t, 0.95, genCfg["topP"], 0.0001)
	assert.InDelta(t, 40, genCfg["topK"], 0.0001)
	assert.InDelta(t, 2048, genCfg["maxOutputTokens"], 0.0001)

	safety, ok := req.Body["safetySettings"].([]any)
	require.True(t, ok, "safetySettings missing from request: %v", req.Body)
	require.Len(t, safety, 4)

	wantCategories := []string{
		"HARM_CATEGORY_HARASSMENT",
		"HARM_CATEGORY_HATE_SPEECH",
		"HARM_CATEGORY_SEXUALLY_EXPLICIT",
		"HARM_CATEGORY_DANGEROUS_CONTENT",
	}
	for i, s := range safety {
		setting := s.(map[string]any)
		assert.Equal(t, wantCategories[i], setting["category"])
		assert.Equal(t, "BLOCK_MEDIUM_AND_ABOVE", setting["threshold"])
	}
}

func TestGenerate_ResponseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{
			name:    "prompt_blocked",
			status:  http.StatusOK,
			body:    `{"promptFeedback":{"blockReason":"SAFETY"}}`,
			wantErr: generation.ErrContentBlocked,
		},
		{
			name:    "safety_finish_reason",
			status:  http.StatusOK,
			body:    `{"candidates":[{"finishReason":"SAFETY"}]}`,
			wantErr: generation.ErrContentBlocked,
		},
		{
			name:    "no_candidates",
			status:  http.StatusOK,
			body:    `{}`,
			wantErr: generation.ErrEmptyResponse,
		},
		{
			name:    "empty_text",
			status:  http.StatusOK,
			body:    `{"candidates":[{"content":{"role":"model","parts":[]},"finishReason":"STOP"}]}`,
			wantErr: generation.ErrEmptyResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := newTestBackend(t, &fakeGemini{status: tt.status, body: tt.body})

			got, err := b.Generate(context.Background(), "prompt")
			assert.Empty(t, got)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGenerate_ServerError(t *testing.T) {
	t.Parallel()

	fake := &fakeGemini{status: http.StatusInternalServerError, body: `{"error":{"code":500,"message":"boom"}}`}
	b := newTestBackend(t, fake)

	got, err := b.Generate(context.Background(), "prompt")
	require.Error(t, err)
	assert.Empty(t, got)
	assert.Contains(t, err.Error(), "gemini generate")
	assert.Equal(t, 1, fake.count(), "failed calls must not be retried")
}

func TestGenerate_EmptyPrompt(t *testing.T) {
	t.Parallel()

	fake := &fakeGemini{status: http.StatusOK, body: textResponse("unused")}
	b := newTestBackend(t, fake)

	_, err := b.Generate(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyPrompt)
	assert.Zero(t, fake.count())
}

func TestChat_ReplaysHistoryInOrder(t *testing.T) {
	t.Parallel()

	fake := &fakeGemini{status: http.StatusOK, body: textResponse("それは大変でしたね。")}
	b := newTestBackend(t, fake)

	history := []domain.ConversationTurn{
		{Role: domain.RoleUser, Content: "今日は疲れた"},
		{Role: domain.RoleAssistant, Content: "お疲れさまでした"},
	}

	got, err := b.Chat(context.Background(), history, "仕事が忙しくて")
	require.NoError(t, err)
	assert.Equal(t, "それは大変でしたね。", got)

	req := fake.lastRequest(t)
	contents, ok := req.Body["contents"].([]any)
	require.True(t, ok)
	require.Len(t, contents, 3)

	wantRoles := []string{"user", "model", "user"}
	wantTexts := []string{"今日は疲れた", "お疲れさまでした", "仕事が忙しくて"}
	for i, c := range contents {
		content := c.(map[string]any)
		assert.Equal(t, wantRoles[i], content["role"], "turn %d role", i)
		parts := content["parts"].([]any)
		assert.Equal(t, wantTexts[i], parts[0].(map[string]any)["text"], "turn %d text", i)
	}
}

func TestChat_EmptyHistory(t *testing.T) {
	t.Parallel()

	fake := &fakeGemini{status: http.StatusOK, body: textResponse("こんにちは")}
	b := newTestBackend(t, fake)

	got, err := b.Chat(context.Background(), nil, "こんにちは")
	require.NoError(t, err)
	assert.Equal(t, "こんにちは", got)

	contents := fake.lastRequest(t).Body["contents"].([]any)
	assert.Len(t, contents, 1)
}

func TestChat_Blocked(t *testing.T) {
	t.Parallel()

	fake := &fakeGemini{status: http.StatusOK, body: `{"promptFeedback":{"blockReason":"OTHER"}}`}
	b := newTestBackend(t, fake)

	_, err := b.Chat(context.Background(), nil, "message")
	assert.ErrorIs(t, err, generation.ErrContentBlocked)
}

func TestToHistory_RoleMapping(t *testing.T) {
	t.Parallel()

	turns := []domain.ConversationTurn{
		{Role: domain.RoleUser, Content: "a"},
		{Role: domain.RoleAssistant, Content: "b"},
		{Role: domain.Role("system"), Content: "c"},
	}

	history := toHistory(turns)
	require.Len(t, history, 3)
	assert.Equal(t, "user", history[0].Role)
	assert.Equal(t, "model", history[1].Role)
	assert.Equal(t, "model", history[2].Role)
	assert.Equal(t, "c", history[2].Parts[0].Text)
}

func TestToGenerateContentConfig_SkipsUnsetCategories(t *testing.T) {
	t.Parallel()

	settings := generation.DefaultSettings()
	delete(settings.Safety, generation.HarmCategoryHateSpeech)
	settings.Safety[generation.HarmCategoryHarassment] = generation.BlockNone

	cfg := toGenerateContentConfig(settings)
	require.Len(t, cfg.SafetySettings, 3)
	assert.Equal(t, "BLOCK_NONE", string(cfg.SafetySettings[0].Threshold))
	assert.Equal(t, int32(2048), cfg.MaxOutputTokens)
	require.NotNil(t, cfg.TopK)
	assert.Equal(t, float32(40), *cfg.TopK)
}
