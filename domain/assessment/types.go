package assessment

// QuestionKind identifies the answer shape a question accepts
type QuestionKind string

const (
	KindSelect      QuestionKind = "select"      // single string from a fixed option set
	KindMultiSelect QuestionKind = "multiselect" // ordered list of strings, no duplicates
	KindScale       QuestionKind = "scale"       // integer in [1,5]
	KindRank        QuestionKind = "rank"        // ordered subset of a fixed option set
)

// Question describes one assessment question. An empty Options set means
// the question accepts free-form values (skill tags, interest tags).
type Question struct {
	ID      string       `json:"id"`
	Kind    QuestionKind `json:"kind"`
	Prompt  string       `json:"prompt"`
	Options []string     `json:"options,omitempty"`
}

// Question IDs consumed by the compatibility scorer
const (
	QuestionTechnicalSkills = "technical_skills"
	QuestionWorkAreas       = "work_areas"
	QuestionWorkValues      = "work_values"
	QuestionWorkStyle       = "work_style"
	QuestionHalalImportance = "halal_importance"
	QuestionCareerPriority  = "career_priority"
)

// Answer is the tagged union over the four question kinds
type Answer interface {
	Kind() QuestionKind
}

// SelectAnswer is a single choice from a fixed option set
type SelectAnswer struct {
	Value string `json:"value"`
}

// MultiSelectAnswer is an ordered, duplicate-free list of choices
type MultiSelectAnswer struct {
	Values []string `json:"values"`
}

// ScaleAnswer is a 1-5 rating
type ScaleAnswer struct {
	Value int `json:"value"`
}

// RankAnswer is an ordered preference list over a fixed option set
type RankAnswer struct {
	Values []string `json:"values"`
}

func (SelectAnswer) Kind() QuestionKind      { return KindSelect }
func (MultiSelectAnswer) Kind() QuestionKind { return KindMultiSelect }
func (ScaleAnswer) Kind() QuestionKind       { return KindScale }
func (RankAnswer) Kind() QuestionKind        { return KindRank }

// Answers maps question ID to its typed answer. Absent keys and
// wrong-shaped values behave identically: the accessor reports no answer.
type Answers map[string]Answer

// Select returns the single-choice answer for id, if present and well-typed
func (a Answers) Select(id string) (string, bool) {
	ans, ok := a[id].(SelectAnswer)
	if !ok || ans.Value == "" {
		return "", false
	}
	return ans.Value, true
}

// MultiSelect returns the multi-choice values for id, or nil when absent
func (a Answers) MultiSelect(id string) []string {
	ans, ok := a[id].(MultiSelectAnswer)
	if !ok {
		return nil
	}
	return ans.Values
}

// Scale returns the 1-5 rating for id, if present and in range
func (a Answers) Scale(id string) (int, bool) {
	ans, ok := a[id].(ScaleAnswer)
	if !ok || ans.Value < 1 || ans.Value > 5 {
		return 0, false
	}
	return ans.Value, true
}

// Rank returns the ordered preference list for id, or nil when absent
func (a Answers) Rank(id string) []string {
	ans, ok := a[id].(RankAnswer)
	if !ok {
		return nil
	}
	return ans.Values
}

// DefaultQuestions is the built-in self-assessment questionnaire. The
// scorer only depends on the IDs above; the rest feed the UI flow.
func DefaultQuestions() []Question {
	return []Question{
		{
			ID:     QuestionTechnicalSkills,
			Kind:   KindMultiSelect,
			Prompt: "Which technical skills do you have or enjoy using?",
		},
		{
			ID:     QuestionWorkAreas,
			Kind:   KindMultiSelect,
			Prompt: "Which industries or work areas interest you most?",
		},
		{
			ID:     QuestionWorkValues,
			Kind:   KindMultiSelect,
			Prompt: "Which values matter most to you in your work?",
		},
		{
			ID:      QuestionWorkStyle,
			Kind:    KindSelect,
			Prompt:  "How do you prefer to work?",
			Options: []string{"independent", "collaborative", "structured", "flexible"},
		},
		{
			ID:     QuestionHalalImportance,
			Kind:   KindScale,
			Prompt: "How important is it that your work aligns with Islamic values?",
		},
		{
			ID:     QuestionCareerPriority,
			Kind:   KindRank,
			Prompt: "Rank what matters most in your next career move",
			Options: []string{
				"salary", "growth", "stability", "impact", "flexibility",
			},
		},
	}
}
