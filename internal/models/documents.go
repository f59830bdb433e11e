package models

// DocumentSubmission is one uploaded file for one analysis run. It lives in
// memory for the duration of the request; the raw bytes are also written to
// object storage under ObjectKey so the extraction service can reference them.
type DocumentSubmission struct {
	ID          string
	Filename    string
	ContentType string
	ObjectKey   string
	Size        int64
	Data        []byte
}

// InferenceParams are the generation knobs forwarded to the model endpoint.
type InferenceParams struct {
	MaxNewTokens int     `json:"max_new_tokens"`
	Temperature  float64 `json:"temperature"`
	TopP         float64 `json:"top_p"`
	TopK         int     `json:"top_k"`
}

// AnalysisResult is the combined output of one run. The latency fields cover
// only the respective external call, not request parsing or rendering.
type AnalysisResult struct {
	ID                string  `json:"id"`
	ObjectKey         string  `json:"object_key"`
	Filename          string  `json:"filename"`
	ContentType       string  `json:"content_type"`
	Prompt            string  `json:"prompt"`
	ExtractedText     string  `json:"extracted_text"`
	Insight           string  `json:"insight"`
	ExtractionSeconds float64 `json:"extraction_seconds"`
	GenerationSeconds float64 `json:"generation_seconds"`
	TotalSeconds      float64 `json:"total_seconds"`
	Provider          string  `json:"provider"`
	Model             string  `json:"model"`
}

type PreviewResponse struct {
	Filename  string `json:"filename"`
	PageCount int    `json:"page_count"`
	Text      string `json:"text"`
}
