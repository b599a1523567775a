package quiz

// Category is a trivia topic as listed by the category directory.
type Category struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// QuestionRecord is a single question as received from the provider.
// Text fields are HTML-entity encoded.
type QuestionRecord struct {
	Prompt           string
	CorrectAnswer    string
	IncorrectAnswers []string

	// Provider metadata, informational only.
	Category   string
	Difficulty string
	Type       string
}

// AnswerOption is one selectable, decoded answer.
type AnswerOption struct {
	Value   string
	Correct bool
}

// Phase is the lifecycle stage of a session.
type Phase int

const (
	PhaseIdle       Phase = iota // Never loaded
	PhaseLoading                 // Waiting on the provider
	PhaseReady                   // Question present, accepting input
	PhaseNoQuestion              // Provider returned no question
	PhaseError                   // Fetch failed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseNoQuestion:
		return "no-question"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

// FeedbackKind classifies a feedback message.
type FeedbackKind int

const (
	FeedbackPrompt FeedbackKind = iota
	FeedbackCorrect
	FeedbackIncorrect
)

func (k FeedbackKind) String() string {
	switch k {
	case FeedbackCorrect:
		return "correct"
	case FeedbackIncorrect:
		return "incorrect"
	default:
		return "prompt"
	}
}

// Feedback is a short user-facing message.
type Feedback struct {
	Message string
	Kind    FeedbackKind
}

// Feedback messages shown to the player.
const (
	MsgNoQuestion  = "No question found."
	MsgFetchFailed = "Error fetching the questions."
	MsgNoSelection = "Please select an answer."
	MsgCorrect     = "Correct! Well done!"
	MsgIncorrect   = "Incorrect. Try again!"
)

// State is a read-only snapshot of a session.
type State struct {
	Phase      Phase
	CategoryID int

	// Question is nil unless Phase is PhaseReady.
	Question *QuestionRecord

	// Answers is derived once per fetched question.
	Answers []AnswerOption

	Selected     string
	HasSelection bool
	Submitted    bool

	// Feedback is nil until something needs saying.
	Feedback *Feedback
}

// Prompt returns the decoded question text, or "" when no question is loaded.
func (s State) Prompt() string {
	if s.Question == nil {
		return ""
	}
	return decode(s.Question.Prompt)
}

// AcceptsInput reports whether select/submit events are meaningful.
func (s State) AcceptsInput() bool {
	return s.Phase == PhaseReady && !s.Submitted
}
