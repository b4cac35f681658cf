package project

import (
	"fmt"
	"regexp"
)

// namePattern restricts project names to alphanumerics, underscores and
// hyphens so the name is safe as a directory name and a CMake project name.
var namePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// supportedStandards are the C++ standards the root CMakeLists accepts.
var supportedStandards = map[int]bool{
	11: true,
	14: true,
	17: true,
	20: true,
	23: true,
}

// ValidateName checks that a project name is non-empty and contains only
// alphanumeric characters, underscores and hyphens.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("project name cannot be empty")
	}
	if !namePattern.MatchString(name) {
		return fmt.Errorf("invalid project name %q: use only alphanumeric characters, underscores, and hyphens", name)
	}
	return nil
}

// ValidateStandard checks that the C++ standard is one CMake understands.
func ValidateStandard(std int) error {
	if !supportedStandards[std] {
		return fmt.Errorf("unsupported C++ standard %d (supported: 11, 14, 17, 20, 23)", std)
	}
	return nil
}
