package ollama

import (
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name          string
		ollamaURL     string
		model         string
		expectError   bool
		expectedModel string
	}{
		{
			name:          "default values",
			ollamaURL:     "",
			model:         "",
			expectError:   false,
			expectedModel: DefaultModel,
		},
		{
			name:          "custom URL and model",
			ollamaURL:     "http://custom-ollama:11434",
			model:         "llama3.2",
			expectError:   false,
			expectedModel: "llama3.2",
		},
		{
			name:          "custom URL, default model",
			ollamaURL:     "http://localhost:11434",
			model:         "",
			expectError:   false,
			expectedModel: DefaultModel,
		},
		{
			name:        "invalid URL",
			ollamaURL:   "://invalid-url",
			model:       "test",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := New(tt.ollamaURL, tt.model)

			if tt.expectError {
				if err == nil {
					t.Error("Expected error but got none")
				}
			} else {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
				if client == nil {
					t.Fatal("Expected client but got nil")
				}
				if client.model != tt.expectedModel {
					t.Errorf("Expected model %s, got %s", tt.expectedModel, client.model)
				}
				if client.timeout != DefaultTimeout {
					t.Errorf("Expected timeout %v, got %v", DefaultTimeout, client.timeout)
				}
			}
		})
	}
}
