package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/jules-cli/jules42/internal/jerrors"
	"github.com/jules-cli/jules42/internal/profile"
	"github.com/jules-cli/jules42/internal/render"
)

// SelectProfileParams contains parameters for the SelectProfile command
type SelectProfileParams struct {
	ProfilePath string
	In          io.Reader
	Out         io.Writer
}

// SelectProfile sets a profile as the default by selecting it from a
// numbered list
func SelectProfile(params SelectProfileParams) error {
	out := stdout(params.Out)
	in := params.In
	if in == nil {
		in = os.Stdin
	}

	store, err := profile.Load(params.ProfilePath)
	if err != nil {
		return err
	}

	names := store.Names()
	if len(names) == 0 {
		return jerrors.NewProfileError("", fmt.Sprintf("no profiles configured; create %s", store.Path()), nil)
	}

	prompt := &render.ChoicePrompt{Choices: names}
	prompt.PrintChoices(out)

	name, err := prompt.Ask(in, out, "Input the number of the profile you wish to use")
	if err != nil {
		return err
	}

	if err := store.SetDefault(name); err != nil {
		return err
	}

	fmt.Fprintf(out, "Default profile set to %q.\n", name)
	return nil
}
