package cli

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"

	"github.com/tacogips/cppnew/internal/project"
)

// PromptProjectName interactively prompts for a project name when none
// was given on the command line.
func PromptProjectName() (string, error) {
	prompt := &survey.Input{
		Message: "Project name",
		Help:    "Alphanumeric characters, underscores, and hyphens only",
	}

	var name string
	err := survey.AskOne(prompt, &name, survey.WithValidator(survey.ComposeValidators(
		survey.Required,
		projectNameValidator,
	)))
	if err != nil {
		return "", fmt.Errorf("failed to prompt for project name: %w", err)
	}

	return name, nil
}

// projectNameValidator adapts project.ValidateName to a survey validator.
func projectNameValidator(val interface{}) error {
	str, ok := val.(string)
	if !ok {
		return fmt.Errorf("expected string, got %T", val)
	}
	return project.ValidateName(str)
}
