// Package analyzer sends extracted document text plus a user instruction to a
// managed text-generation endpoint and returns the model's response.
package analyzer

import (
	"context"
	"fmt"

	"github.com/docuinsight/document-insight-api/internal/models"
)

// SystemPrompt frames every generation call regardless of backend.
const SystemPrompt = "You are a helpful assistant that analyzes text from scanned documents"

type Analyzer interface {
	// Generate produces an insight for the extracted text. The text may be
	// empty; the model is then asked to comment on the absence of content
	// rather than the call being skipped.
	Generate(ctx context.Context, instruction, extractedText string, params models.InferenceParams) (string, error)

	// Model names the configured model for result reporting.
	Model() string
}

// BuildUserMessage combines the user instruction with the extracted text into
// the single prompt sent to the model.
func BuildUserMessage(instruction, extractedText string) string {
	return fmt.Sprintf("%s:\n\n%s\n\n", instruction, extractedText)
}
