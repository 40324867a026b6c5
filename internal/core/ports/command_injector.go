package ports

// CommandInjector hands the chosen command back to the invoking shell.
type CommandInjector interface {
	// Inject places command in the shell's pending input. When run is true
	// the command is submitted as if the user had pressed Enter.
	Inject(command string, run bool) error
}
