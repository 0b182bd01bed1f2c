package build

// Set at compile time via -ldflags.
var (
	ShortVersion = "dev"
	GitRef       = ""
)

var LongVersion = func() string {
	if GitRef == "" {
		return ShortVersion
	}

	return ShortVersion + " (" + GitRef + ")"
}()
