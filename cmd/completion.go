package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// completionCmd represents the completion command
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish]",
	Short: "Generate a shell completion for updatewatch",
	Long: `To load completions:

Bash:

$ source <(updatewatch completion bash)

# To load completions for each session, execute once:
Linux:
  $ updatewatch completion bash > /etc/bash_completion.d/updatewatch
MacOS:
  $ updatewatch completion bash > /usr/local/etc/bash_completion.d/updatewatch

Zsh:

# If shell completion is not already enabled in your environment you will need
# to enable it.  You can execute the following once:

$ echo "autoload -U compinit; compinit" >> ~/.zshrc

# To load completions for each session, execute once:
$ updatewatch completion zsh > "${fpath[1]}/_updatewatch"

# You will need to start a new shell for this setup to take effect.

Fish:

$ updatewatch completion fish | source

# To load completions for each session, execute once:
$ updatewatch completion fish > ~/.config/fish/completions/updatewatch.fish
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish"},
	Args:                  cobra.ExactValidArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var err error
		switch args[0] {
		case "bash":
			err = cmd.Root().GenBashCompletion(os.Stdout)
		case "zsh":
			err = cmd.Root().GenZshCompletion(os.Stdout)
		case "fish":
			err = cmd.Root().GenFishCompletion(os.Stdout, true)
		}
		if err != nil {
			panic(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
