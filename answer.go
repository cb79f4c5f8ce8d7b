package progadvisor

// AnswerOutcome classifies the result of a question. Empty-result and
// off-topic cases are ordinary values, not errors, so every call site sees
// the fallback path explicitly.
type AnswerOutcome string

const (
	// AnswerMatched means relevant chunks were found above the threshold.
	AnswerMatched AnswerOutcome = "matched"

	// AnswerOffTopic means the best similarity fell below the relevance
	// threshold; Score still carries the near-miss value.
	AnswerOffTopic AnswerOutcome = "off_topic"

	// AnswerNoData means the program restriction left no candidate chunks.
	AnswerNoData AnswerOutcome = "no_data"
)

// Answer is the result of asking the similarity index a question. Text is
// always displayable, whatever the outcome.
type Answer struct {
	Text    string
	Score   float64
	Outcome AnswerOutcome
}

// Answerer answers free-text questions about the ingested programs.
type Answerer interface {
	// Ask answers a question by lexical similarity over the indexed
	// chunks. When onlyPrograms is non-empty, only chunks belonging to
	// those program keys are considered. Ask never fails: empty and
	// off-topic results are reported through the Answer outcome.
	Ask(question string, onlyPrograms []string) Answer
}
