package borrow

// Version information for the borrowcell library.
const (
	// Version is the current library version.
	Version = "0.1.0"

	// VersionMajor is the major version number.
	VersionMajor = 0

	// VersionMinor is the minor version number.
	VersionMinor = 1

	// VersionPatch is the patch version number.
	VersionPatch = 0
)

// Info provides runtime information about the library.
type Info struct {
	// Version is the library version string.
	Version string

	// Discipline names the enforcement model.
	Discipline string
}

// GetInfo returns information about the library.
//
// Example:
//
//	info := borrow.GetInfo()
//	fmt.Printf("borrowcell %s (%s)\n", info.Version, info.Discipline)
func GetInfo() Info {
	return Info{
		Version:    Version,
		Discipline: "runtime borrow checking, single-threaded",
	}
}
