package dto

type GenerateInput struct {
	Subject    string
	Difficulty string
}

type OptionOutput struct {
	Label string
	Text  string
}

type QuestionOutput struct {
	Subject      string
	Difficulty   string
	Prompt       string
	Options      []OptionOutput
	Correct      string
	CorrectLabel string
}

type CatalogOutput struct {
	Subjects     []string
	Difficulties []string
}
