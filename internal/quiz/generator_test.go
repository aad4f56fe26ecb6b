package quiz_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hmnguyen/vietlearn/internal/inference"
	mock_inference "github.com/hmnguyen/vietlearn/internal/mocks/inference"
	"github.com/hmnguyen/vietlearn/internal/quiz"
	"github.com/hmnguyen/vietlearn/internal/vocabulary"
)

func strPtr(s string) *string {
	return &s
}

func TestGenerator_Generate(t *testing.T) {
	words := []vocabulary.Word{
		{ID: 1, VietnameseWord: "chào", EnglishDefinition: "hello/goodbye"},
		{ID: 2, VietnameseWord: "tên", EnglishDefinition: "name"},
	}
	grammar := []vocabulary.Grammar{
		{
			ID:                 1,
			GrammarPoint:       "Ở đâu",
			EnglishExplanation: "Question word for location meaning 'where'",
			ExampleSentence:    strPtr("Nhà vệ sinh ở đâu? (Where is the bathroom?)"),
		},
		{
			ID:                 2,
			GrammarPoint:       "Không sao",
			EnglishExplanation: "Expression meaning 'no problem' or 'it's okay'",
		},
	}

	tests := []struct {
		name            string
		request         quiz.GenerateRequest
		responseContent string
		responseError   error

		wantQuestions   []quiz.Question
		wantError       bool
		wantErrorString string
	}{
		{
			name: "bare array response",
			request: quiz.GenerateRequest{
				Words:        words,
				Grammar:      grammar,
				NumQuestions: 1,
			},
			responseContent: `[{"question_type": 1, "question": "What does xin chào mean?", "answers": ["hello","goodbye","thank you"], "correct_idx": 0}]`,
			wantQuestions: []quiz.Question{
				{
					QuestionType: 1,
					Question:     "What does xin chào mean?",
					Answers:      []string{"hello", "goodbye", "thank you"},
					CorrectIdx:   0,
				},
			},
		},
		{
			name: "object response with questions key is unwrapped",
			request: quiz.GenerateRequest{
				Words:        words,
				NumQuestions: 2,
			},
			responseContent: `{"questions": [
				{"question_type": 1, "question": "What does 'tên' mean?", "answers": ["name", "age"], "correct_idx": 0},
				{"question_type": 2, "question": "Translate 'hello'", "answers": ["chào", "tên"], "correct_idx": 0}
			]}`,
			wantQuestions: []quiz.Question{
				{QuestionType: 1, Question: "What does 'tên' mean?", Answers: []string{"name", "age"}, CorrectIdx: 0},
				{QuestionType: 2, Question: "Translate 'hello'", Answers: []string{"chào", "tên"}, CorrectIdx: 0},
			},
		},
		{
			name: "non-JSON response fails",
			request: quiz.GenerateRequest{
				Words:        words,
				NumQuestions: 1,
			},
			responseContent: "Sorry, I can't help with that.",
			wantError:       true,
			wantErrorString: "json.Unmarshal",
		},
		{
			name: "object without questions key fails",
			request: quiz.GenerateRequest{
				Words:        words,
				NumQuestions: 1,
			},
			responseContent: `{"items": []}`,
			wantError:       true,
			wantErrorString: "without a questions key",
		},
		{
			name: "too few answers fails the whole call",
			request: quiz.GenerateRequest{
				Words:        words,
				NumQuestions: 2,
			},
			responseContent: `[
				{"question_type": 1, "question": "ok", "answers": ["a", "b"], "correct_idx": 0},
				{"question_type": 1, "question": "bad", "answers": ["only one"], "correct_idx": 0}
			]`,
			wantError:       true,
			wantErrorString: "invalid question at index 1",
		},
		{
			name: "too many answers fails",
			request: quiz.GenerateRequest{
				Words:        words,
				NumQuestions: 1,
			},
			responseContent: `[{"question_type": 1, "question": "bad", "answers": ["a","b","c","d","e","f","g"], "correct_idx": 0}]`,
			wantError:       true,
			wantErrorString: "invalid question at index 0",
		},
		{
			name: "missing question text fails",
			request: quiz.GenerateRequest{
				Words:        words,
				NumQuestions: 1,
			},
			responseContent: `[{"question_type": 1, "answers": ["a", "b"], "correct_idx": 0}]`,
			wantError:       true,
			wantErrorString: "invalid question at index 0",
		},
		{
			name: "wrong field type fails",
			request: quiz.GenerateRequest{
				Words:        words,
				NumQuestions: 1,
			},
			responseContent: `[{"question_type": "one", "question": "ok", "answers": ["a", "b"], "correct_idx": 0}]`,
			wantError:       true,
			wantErrorString: "json.Unmarshal",
		},
		{
			name: "provider error propagates",
			request: quiz.GenerateRequest{
				Words:        words,
				NumQuestions: 1,
			},
			responseError:   errors.New("response error 500"),
			wantError:       true,
			wantErrorString: "client.Complete()",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockClient := mock_inference.NewMockClient(ctrl)
			mockClient.EXPECT().
				Complete(gomock.Any(), gomock.Any()).
				Return(inference.CompletionResponse{Content: tt.responseContent}, tt.responseError)

			generator := quiz.NewGenerator(mockClient)
			got, err := generator.Generate(context.Background(), tt.request)
			if tt.wantError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrorString)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantQuestions, got)
		})
	}
}

func TestGenerator_Generate_Prompt(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockClient := mock_inference.NewMockClient(ctrl)

	var captured inference.CompletionRequest
	mockClient.EXPECT().
		Complete(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params inference.CompletionRequest) (inference.CompletionResponse, error) {
			captured = params
			return inference.CompletionResponse{
				Content: `[{"question_type": 1, "question": "q", "answers": ["a", "b"], "correct_idx": 0}]`,
			}, nil
		})

	generator := quiz.NewGenerator(mockClient)
	_, err := generator.Generate(context.Background(), quiz.GenerateRequest{
		Words: []vocabulary.Word{
			{VietnameseWord: "chào", EnglishDefinition: "hello/goodbye"},
		},
		Grammar: []vocabulary.Grammar{
			{
				GrammarPoint:       "Ở đâu",
				EnglishExplanation: "Question word for location meaning 'where'",
				ExampleSentence:    strPtr("Nhà vệ sinh ở đâu?"),
			},
			{
				GrammarPoint:       "Không sao",
				EnglishExplanation: "Expression meaning 'no problem'",
			},
		},
		NumQuestions: 3,
		Difficulty:   quiz.DifficultyHard,
	})
	require.NoError(t, err)

	assert.Equal(t, "You are a helpful Vietnamese language teacher. You always respond with valid JSON.", captured.SystemPrompt)

	prompt := captured.UserPrompt
	assert.Contains(t, prompt, "- chào: hello/goodbye")
	assert.Contains(t, prompt, "- Ở đâu: Question word for location meaning 'where' (Example: Nhà vệ sinh ở đâu?)")
	assert.Contains(t, prompt, "- Không sao: Expression meaning 'no problem'")
	assert.NotContains(t, prompt, "Expression meaning 'no problem' (Example:")
	assert.Contains(t, prompt, "Difficulty level: hard")
	assert.Contains(t, prompt, "Create 3 multiple-choice questions")
	assert.Contains(t, prompt, "Return ONLY valid JSON in this exact format:")
}

func TestGenerator_Generate_NoDifficultyNote(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockClient := mock_inference.NewMockClient(ctrl)

	var captured inference.CompletionRequest
	mockClient.EXPECT().
		Complete(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params inference.CompletionRequest) (inference.CompletionResponse, error) {
			captured = params
			return inference.CompletionResponse{
				Content: `[{"question_type": 1, "question": "q", "answers": ["a", "b"], "correct_idx": 0}]`,
			}, nil
		})

	generator := quiz.NewGenerator(mockClient)
	_, err := generator.Generate(context.Background(), quiz.GenerateRequest{
		Words:        []vocabulary.Word{{VietnameseWord: "chào", EnglishDefinition: "hello"}},
		NumQuestions: 5,
	})
	require.NoError(t, err)
	assert.NotContains(t, captured.UserPrompt, "Difficulty level:")
}
