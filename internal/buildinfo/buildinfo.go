package buildinfo

// Version is set at build time via -ldflags.
var Version = "dev"

// Commit is set at build time via -ldflags.
var Commit = "unknown"

// Date is set at build time via -ldflags.
var Date = "unknown"

// Short returns a compact build identifier for UI/logging.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// Name is the program name shown in window titles and version output.
const Name = "cydpanel"

// String returns "name version (commit, date)".
func String() string {
	return Name + " " + Version + " (" + Commit + ", " + Date + ")"
}
