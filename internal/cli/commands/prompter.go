package commands

import (
	"github.com/AlecAivazis/survey/v2"
)

// SurveyPrompter asks questions on the terminal
type SurveyPrompter struct{}

// NewSurveyPrompter creates a terminal prompter
func NewSurveyPrompter() *SurveyPrompter {
	return &SurveyPrompter{}
}

// Input asks a free-text question. An empty answer is returned as "".
func (p *SurveyPrompter) Input(message string) (string, error) {
	var answer string
	prompt := &survey.Input{
		Message: message + ":",
	}
	if err := survey.AskOne(prompt, &answer); err != nil {
		return "", err
	}
	return answer, nil
}

// Select asks the operator to pick one of options
func (p *SurveyPrompter) Select(message string, options []string) (string, error) {
	var answer string
	prompt := &survey.Select{
		Message: message + ":",
		Options: options,
	}
	if err := survey.AskOne(prompt, &answer); err != nil {
		return "", err
	}
	return answer, nil
}
