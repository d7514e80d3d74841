package mood

// Mood pairs a label with its lexical triggers and semantic profile.
type Mood struct {
	// Label is the lowercase tag attached to episodes.
	Label string
	// Keywords are substring triggers; any hit selects the label outright.
	Keywords []string
	// Profile is the descriptive blob compared against episode text when no
	// keyword fires.
	Profile string
}

// DefaultLabel is assigned when neither keyword nor semantic classification
// produces a label.
const DefaultLabel = "workplace"

var vocabulary = []Mood{
	{
		Label:    "romantic",
		Keywords: []string{"date", "love", "wedding", "valentine", "proposal", "kiss", "couple", "boyfriend", "girlfriend", "seeks comfort", "breakup", "break up", "marriage", "crush"},
		Profile:  "romance relationship couple dating date kiss proposal wedding boyfriend girlfriend valentine",
	},
	{
		Label:    "christmas",
		Keywords: []string{"christmas", "xmas", "santa", "snow"},
		Profile:  "christmas xmas santa christmas party snow",
	},
	{
		Label:    "chaos",
		Keywords: []string{"fire", "panic", "fight", "disaster", "stress", "accident", "injury", "police"},
		Profile:  "chaos panic disaster accident fire fight crisis stress",
	},
	{
		Label:    "cringe",
		Keywords: []string{"awkward", "embarrass", "inappropriate", "humiliate", "uncomfortable"},
		Profile:  "awkward embarrassing inappropriate uncomfortable humiliation",
	},
	{
		Label:    "workplace",
		Keywords: []string{"office", "meeting", "sales", "manager", "branch", "boss", "employee", "hr"},
		Profile:  "office meeting boss manager hr sales branch employee",
	},
	{
		Label:    "comfort",
		Keywords: []string{"party", "friend", "family", "support", "together", "fun", "celebrate"},
		Profile:  "comfort cozy fun supportive friends party lighthearted",
	},
	{
		Label:    "wholesome",
		Keywords: []string{"kind", "care", "support", "together", "help", "thank"},
		Profile:  "wholesome kind caring supportive gratitude help together",
	},
}

// Vocabulary returns the fixed mood set in definition order. Callers must not
// mutate the returned slice.
func Vocabulary() []Mood {
	return vocabulary
}

// Labels returns every mood label in definition order.
func Labels() []string {
	labels := make([]string, len(vocabulary))
	for i, m := range vocabulary {
		labels[i] = m.Label
	}
	return labels
}

// Lookup returns the mood for the given label.
func Lookup(label string) (Mood, bool) {
	for _, m := range vocabulary {
		if m.Label == label {
			return m, true
		}
	}
	return Mood{}, false
}
