package cli

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "One-way template sync from an Obsidian vault into a project"
	MsgPullShort       = "Pull changed templates from the vault into the project"
	MsgStatusShort     = "Show what a pull would change, without writing anything"
	MsgGenConfigShort  = "Generate a starter configuration file"
	MsgConfigShort     = "Show the effective configuration"
	MsgConfigLong      = "Config prints the effective configuration as TOML: embedded defaults,\nthe project config file, and VAULTPULL_* environment overrides, merged\nin that order."
	MsgVersionShort    = "Print version information"
	MsgVersionLong     = "Print detailed version information including commit hash and build date"
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgCompletionShort = "Generate shell completion script"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun  = "Preview changes without executing them"
	MsgFlagForce   = "Re-copy entries even when the destination is up to date"
	MsgFlagVault   = "Vault root (overrides VAULT_ROOT and the config file)"
	MsgFlagProject = "Project root (overrides PROJECT_ROOT and git discovery)"
	MsgFlagFormat  = "Output format: auto, term, text, json"
	MsgFlagWrite   = "Write config to the project root instead of stdout"

	// Error messages
	MsgErrNoCommand = "no command specified"
)

// Long messages
const (
	MsgRootLong = `vaultpull keeps project templates in sync with their editable copies in
an Obsidian vault. It copies one way only, vault to project: templates
are edited in the vault and pulled from it, never the other way around.

A pull discovers templates by suffix in one vault directory, resolves
any explicitly configured path pairs, and copies whatever is newer than
the deployed copy. Up-to-date files are left alone, so repeated pulls
are safe.`

	MsgPullLong = `Pull copies changed templates from the vault into the project tree.

Two kinds of candidates are considered: files found by the discovery
scan (one vault directory, matched by suffix, non-recursive) and the
explicit source/dest pairs from the config file. A file is copied only
when it is missing from the project or newer in the vault; timestamps
and permission bits are carried over.

Entries are independent. A template missing from the vault or failing
to copy is counted and reported, and the run continues. Only an absent
vault mount aborts the command.`

	MsgPullExample = `  # Pull with the configured discovery and entries
  vaultpull pull

  # Preview without writing
  vaultpull pull --dry-run

  # Re-copy everything, even up-to-date files
  vaultpull pull --force`

	MsgStatusLong = `Status runs the same resolution as pull but never writes: it reports
which templates would be copied, which are up to date, and which are
missing from the vault.`

	MsgStatusExample = `  # Show pending template changes
  vaultpull status

  # Machine-readable status
  vaultpull status --format json`

	MsgGenConfigLong = `Output a starter configuration to stdout or write it to the project
root. The generated file carries the embedded defaults with every value
commented out, ready for selective editing.`

	MsgGenConfigExample = `  vaultpull gen-config        # Output to stdout
  vaultpull gen-config -w     # Write to <project>/.vaultpull.toml`

	MsgConfigExample = `  vaultpull config
  vaultpull config --format json`

	MsgCompletionLong = `To load completions:

Bash:
  $ source <(vaultpull completion bash)
  # To load completions for each session, execute once:
  $ vaultpull completion bash > /etc/bash_completion.d/vaultpull

Zsh:
  $ vaultpull completion zsh > "${fpath[1]}/_vaultpull"
  # You will need to start a new shell for this setup to take effect.

Fish:
  $ vaultpull completion fish | source
  # To load completions for each session, execute once:
  $ vaultpull completion fish > ~/.config/fish/completions/vaultpull.fish

PowerShell:
  PS> vaultpull completion powershell | Out-String | Invoke-Expression
`

	// MsgFallbackWarning is shown on stderr when the project root fell back
	// to the current directory. Takes the directory as its argument.
	MsgFallbackWarning = `Warning: not in a git repository and PROJECT_ROOT not set.
Pulling into the current directory: %s
For better results, either:
  - run from within the project's git repository
  - set PROJECT_ROOT or pass --project

`
)

// MsgUsageTemplate is the cobra usage template with bold section headers.
// It follows cobra's default template, grouped commands included.
const MsgUsageTemplate = `{{boldUpper "Usage:"}}{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

{{boldUpper "Aliases:"}}
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

{{boldUpper "Examples:"}}
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}{{$cmds := .Commands}}{{if eq (len .Groups) 0}}

{{boldUpper "Available Commands:"}}{{range $cmds}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{else}}{{range $group := .Groups}}

{{bold .Title}}{{range $cmds}}{{if (and (eq .GroupID $group.ID) (or .IsAvailableCommand (eq .Name "help")))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if not .AllChildCommandsHaveGroup}}

{{boldUpper "Additional Commands:"}}{{range $cmds}}{{if (and (eq .GroupID "") (or .IsAvailableCommand (eq .Name "help")))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

{{boldUpper "Flags:"}}
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

{{boldUpper "Global Flags:"}}
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`
