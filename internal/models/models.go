package models

// Entity categories assigned by the linguistic analyzer
const (
	CategoryPerson = "PERSON"
	CategoryOrg    = "ORG"
	CategoryGPE    = "GPE"
	CategoryDate   = "DATE"
	CategoryOther  = "OTHER"
)

// Question types
const (
	TypeMultipleChoice = "multiple_choice"
	TypeTrueFalse      = "true_false"
)

// Entity is a named span of text with a semantic category
type Entity struct {
	Text     string `json:"text"`
	Category string `json:"category"`
}

// Token is a single word with a coarse part-of-speech tag
type Token struct {
	Text string `json:"text"`
	Tag  string `json:"tag"` // NOUN, PROPN, or OTHER
	Stop bool   `json:"stop"`
}

// Sentence is one segmented sentence with its entities and tokens
type Sentence struct {
	Text       string   `json:"text"`
	Start      int      `json:"start"`
	End        int      `json:"end"`
	Entities   []Entity `json:"entities"`
	Tokens     []Token  `json:"tokens"`
	NounChunks []string `json:"noun_chunks"`
}

// Document is the immutable result of linguistic analysis
type Document struct {
	Sentences []Sentence `json:"sentences"`
}

// Entities returns every entity in the document in sentence order
func (d *Document) Entities() []Entity {
	var entities []Entity
	for _, s := range d.Sentences {
		entities = append(entities, s.Entities...)
	}
	return entities
}

// Question represents a single generated quiz question
type Question struct {
	Question      string   `json:"question"`
	Type          string   `json:"type"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation,omitempty"`
}

// Quiz is the full generated quiz payload
type Quiz struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions"`
	Tags        []string   `json:"tags"`
}

// QuizRequest is the request contract for quiz generation
type QuizRequest struct {
	Text          string   `json:"text"`
	NumQuestions  int      `json:"num_questions"`
	Difficulty    string   `json:"difficulty"`
	QuestionTypes []string `json:"question_types"`
}

// Flashcard is a single term/definition pair
type Flashcard struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

// FlashcardSet is the generated flashcard payload
type FlashcardSet struct {
	Title string      `json:"title"`
	Cards []Flashcard `json:"cards"`
}

// FlashcardRequest is the request contract for flashcard generation
type FlashcardRequest struct {
	Text  string `json:"text"`
	Count int    `json:"count"`
}

// SummaryRequest is the request contract for summarization
type SummaryRequest struct {
	Text   string `json:"text"`
	Length string `json:"length"`
}

// Summary is the generated summary payload; lengths are word counts
type Summary struct {
	Summary        string   `json:"summary"`
	Keywords       []string `json:"keywords"`
	OriginalLength int      `json:"original_length"`
	SummaryLength  int      `json:"summary_length"`
}
