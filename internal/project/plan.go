// Package project builds the scaffold plan for a new C++ project.
// Planning is pure: it validates the options and renders file content,
// but performs no filesystem I/O. The resulting entry list is handed to
// the scaffold engine for application.
package project

import (
	"github.com/tacogips/cppnew/internal/scaffold"
)

// DefaultStandard is the C++ standard used when none is requested.
const DefaultStandard = 17

// SubDirs is the standard project layout, created in this order.
var SubDirs = []string{"src", "include", "lib", "bin", "tests", "docs"}

// Options configures a project plan.
type Options struct {
	// Name is the project name. Alphanumerics, underscores and hyphens only.
	Name string
	// Standard is the C++ standard for the root CMakeLists (default 17).
	Standard int
	// Policy governs conflicts with files that already exist in the target.
	Policy scaffold.Policy
}

// plannedFile pairs a relative path with its rendered content template.
type plannedFile struct {
	path     string
	template string
	static   bool
}

// generatedFiles lists every generated file in application order. Each
// parent directory appears in SubDirs, so a plan is always topologically
// valid for the engine.
var generatedFiles = []plannedFile{
	{path: ".gitignore", template: gitignoreContent, static: true},
	{path: "README.md", template: readmeTemplate},
	{path: "CMakeLists.txt", template: rootCMakeTemplate},
	{path: "src/CMakeLists.txt", template: srcCMakeContent, static: true},
	{path: "tests/CMakeLists.txt", template: testsCMakeContent, static: true},
	{path: "docs/CMakeLists.txt", template: docsCMakeContent, static: true},
	{path: "src/main.cpp", template: mainCppContent, static: true},
	{path: "include/project_header.h", template: headerContent, static: true},
	{path: "tests/test_main.cpp", template: testMainCppContent, static: true},
}

// Plan validates the options and returns the ordered entry list for a new
// C++ project: the layout directories first, then the generated files.
func Plan(opts Options) ([]scaffold.Entry, error) {
	if err := ValidateName(opts.Name); err != nil {
		return nil, err
	}

	std := opts.Standard
	if std == 0 {
		std = DefaultStandard
	}
	if err := ValidateStandard(std); err != nil {
		return nil, err
	}

	data := templateData{Name: opts.Name, Standard: std}

	entries := make([]scaffold.Entry, 0, len(SubDirs)+len(generatedFiles))
	for _, dir := range SubDirs {
		entries = append(entries, scaffold.Dir(dir))
	}

	for _, f := range generatedFiles {
		content := []byte(f.template)
		if !f.static {
			rendered, err := render(f.path, f.template, data)
			if err != nil {
				return nil, err
			}
			content = rendered
		}
		entries = append(entries, scaffold.File(f.path, content, opts.Policy))
	}

	return entries, nil
}
