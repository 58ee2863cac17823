package cli

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"

	"github.com/doeshing/cfai-go/internal/domain"
	"github.com/doeshing/cfai-go/internal/ports"
)

// Prompter implements the confirmation gate with interactive terminal
// prompts. A prompt error (closed stdin, interrupt) propagates; the executor
// treats it as fatal rather than as a decline.
type Prompter struct{}

// NewPrompter constructs an interactive prompter.
func NewPrompter() *Prompter {
	return &Prompter{}
}

// ConfirmBatch lists the proposed actions and asks once for the whole plan.
func (p *Prompter) ConfirmBatch(actions []domain.Action) (bool, error) {
	fmt.Fprintln(os.Stdout, "\nProposed actions:")
	for i, action := range actions {
		fmt.Fprintf(os.Stdout, "  %d. %s %s [risk: %s]\n", i+1, action.Risk.Icon(), action.Description, action.Risk)
	}
	return ask("Apply these actions?", false)
}

// ConfirmHighRisk asks for one specific high-risk action.
func (p *Prompter) ConfirmHighRisk(action domain.Action) (bool, error) {
	return ask(fmt.Sprintf("🔴 High-risk action: %s. Proceed?", action.Description), false)
}

// ConfirmContinue asks whether to keep going after a failure.
func (p *Prompter) ConfirmContinue(failedIndex int, failed domain.Action) (bool, error) {
	fmt.Fprintf(os.Stdout, "Action %d failed: %s\n", failedIndex+1, failed.Description)
	return ask("Continue with the remaining actions?", true)
}

func ask(message string, defaultAnswer bool) (bool, error) {
	answer := defaultAnswer
	prompt := &survey.Confirm{Message: message, Default: defaultAnswer}
	if err := survey.AskOne(prompt, &answer); err != nil {
		return false, fmt.Errorf("confirmation prompt: %w", err)
	}
	return answer, nil
}

// AutoApprover answers yes to every confirmation. Used by --yes and the
// auto_approve preference for non-interactive runs.
type AutoApprover struct{}

func (AutoApprover) ConfirmBatch([]domain.Action) (bool, error)       { return true, nil }
func (AutoApprover) ConfirmHighRisk(domain.Action) (bool, error)      { return true, nil }
func (AutoApprover) ConfirmContinue(int, domain.Action) (bool, error) { return true, nil }

var (
	_ ports.ConfirmationPrompter = (*Prompter)(nil)
	_ ports.ConfirmationPrompter = AutoApprover{}
)
