package types

// EmotionScore is a single label with its activated probability.
type EmotionScore struct {
	// Label name drawn from the model's label vocabulary.
	// example: excitement
	Label string `json:"label" example:"excitement"`
	// Activated probability in [0,1]. Independent per label (multi-label).
	// example: 0.87
	Score float64 `json:"score" example:"0.87"`
}

// Prediction is the outcome of scoring one text against all labels.
// Emotions is sorted descending by score; every entry cleared the threshold.
type Prediction struct {
	Emotions     []EmotionScore `json:"emotions"`
	TextAnalyzed string         `json:"text_analyzed"`
}
