package constant

// runtime.GOOS values the application special-cases.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
	Android = "android"
)
