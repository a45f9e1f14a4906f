package exitcodes

// Exit codes for au-reset
// Completed and user-aborted runs both exit 0; per-target removal
// failures are reported but never change the exit code
const (
	Success           = 0 // Run completed or was declined at the prompt
	InvalidInvocation = 2 // Bad flags, unreadable config, or rejected archive root
)
