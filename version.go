package gopresentation

import "fmt"

// Version information for the GoPPTX library.
const (
	VersionMajor = 0
	VersionMinor = 3
	VersionPatch = 0
)

// Version is the full version string of the GoPPTX library.
var Version = fmt.Sprintf("%d.%d.%d", VersionMajor, VersionMinor, VersionPatch)
