package session

import "github.com/AlecAivazis/survey/v2"

// Prompter abstracts interactive input for testability.
type Prompter interface {
	ReadLine(label string) (string, error)
	Input(label, def string) (string, error)
	Confirm(label string, def bool) (bool, error)
}

// SurveyPrompter reads from the terminal.
type SurveyPrompter struct{}

func (SurveyPrompter) ReadLine(label string) (string, error) {
	var answer string

	err := survey.AskOne(&survey.Input{Message: label}, &answer)

	return answer, err
}

func (SurveyPrompter) Input(label, def string) (string, error) {
	var answer string

	err := survey.AskOne(&survey.Input{Message: label, Default: def}, &answer)

	return answer, err
}

func (SurveyPrompter) Confirm(label string, def bool) (bool, error) {
	answer := def

	err := survey.AskOne(&survey.Confirm{Message: label, Default: def}, &answer)

	return answer, err
}
