package dto

import "time"

type SettingsOutput struct {
	Subject           string
	Difficulties      []string
	DefaultDifficulty string
	DefaultQuestions  int
	MinQuestions      int
	MaxQuestions      int
}

type StartInput struct {
	Subject    string
	Difficulty string
	Total      int
}

type OptionOutput struct {
	Label string
	Text  string
}

type QuestionOutput struct {
	Number  int
	Prompt  string
	Options []OptionOutput
}

// StatusOutput is a snapshot of the flow for rendering.
type StatusOutput struct {
	Phase         string
	SessionID     string
	Subject       string
	Difficulty    string
	Total         int
	Answered      int
	Score         int
	TimeLimit     int
	Remaining     int
	TimerActive   bool
	Question      QuestionOutput
	LastOutcome   string
	LastChoice    string
	CorrectAnswer string
	CorrectLabel  string
}

type AnswerInput struct {
	Choice string
}

type AnswerOutput struct {
	Outcome       string
	Choice        string
	CorrectAnswer string
	CorrectLabel  string
	Answered      int
	Total         int
	Score         int
	Finished      bool
}

type TickOutput struct {
	Question  int
	Remaining int
	Expired   bool
	// Stale is set when the tick targeted a question that is no longer on
	// screen.
	Stale  bool
	Answer AnswerOutput
}

type ResultOutput struct {
	SessionID  string
	Subject    string
	Difficulty string
	Score      int
	Total      int
	Percent    float64
	Grade      string
	StartedAt  time.Time
	EndedAt    time.Time
	Duration   time.Duration
}
