package project

import (
	"strings"
	"testing"

	"github.com/tacogips/cppnew/internal/scaffold"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "myproject", false},
		{"with underscore", "my_project", false},
		{"with hyphen", "my-project", false},
		{"with digits", "proj2", false},
		{"mixed case", "MyProject", false},
		{"empty", "", true},
		{"with space", "my project", true},
		{"with slash", "my/project", true},
		{"with dot", "my.project", true},
		{"traversal", "..", true},
		{"unicode", "プロジェクト", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateStandard(t *testing.T) {
	for _, std := range []int{11, 14, 17, 20, 23} {
		if err := ValidateStandard(std); err != nil {
			t.Errorf("ValidateStandard(%d) error = %v", std, err)
		}
	}
	for _, std := range []int{0, 3, 15, 26, 98} {
		if err := ValidateStandard(std); err == nil {
			t.Errorf("ValidateStandard(%d) expected error", std)
		}
	}
}

func TestPlanLayout(t *testing.T) {
	entries, err := Plan(Options{Name: "demo"})
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}

	wantPaths := []string{
		"src", "include", "lib", "bin", "tests", "docs",
		".gitignore", "README.md", "CMakeLists.txt",
		"src/CMakeLists.txt", "tests/CMakeLists.txt", "docs/CMakeLists.txt",
		"src/main.cpp", "include/project_header.h", "tests/test_main.cpp",
	}
	if len(entries) != len(wantPaths) {
		t.Fatalf("Plan() produced %d entries, want %d", len(entries), len(wantPaths))
	}
	for i, want := range wantPaths {
		if entries[i].Path != want {
			t.Errorf("entries[%d].Path = %q, want %q", i, entries[i].Path, want)
		}
	}

	// Directories come first and every file's parent is declared before it.
	declaredDirs := map[string]bool{".": true}
	for _, entry := range entries {
		if entry.Kind == scaffold.KindDir {
			declaredDirs[entry.Path] = true
			continue
		}
		parent := "."
		if idx := strings.LastIndex(entry.Path, "/"); idx >= 0 {
			parent = entry.Path[:idx]
		}
		if !declaredDirs[parent] {
			t.Errorf("file %s declared before its parent directory %s", entry.Path, parent)
		}
	}
}

func TestPlanRendersProjectName(t *testing.T) {
	entries, err := Plan(Options{Name: "widget-engine", Standard: 20})
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}

	byPath := make(map[string]string, len(entries))
	for _, entry := range entries {
		byPath[entry.Path] = string(entry.Content)
	}

	readme := byPath["README.md"]
	if !strings.HasPrefix(readme, "# widget-engine\n") {
		t.Errorf("README.md does not open with the project name:\n%s", readme)
	}

	cmake := byPath["CMakeLists.txt"]
	if !strings.Contains(cmake, "project(widget-engine VERSION 1.0 LANGUAGES CXX)") {
		t.Errorf("root CMakeLists.txt missing project declaration:\n%s", cmake)
	}
	if !strings.Contains(cmake, "set(CMAKE_CXX_STANDARD 20)") {
		t.Errorf("root CMakeLists.txt missing requested standard:\n%s", cmake)
	}
	if strings.Contains(cmake, "{{") {
		t.Errorf("root CMakeLists.txt contains unrendered template markers:\n%s", cmake)
	}
}

func TestPlanDefaultStandard(t *testing.T) {
	entries, err := Plan(Options{Name: "demo"})
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}

	for _, entry := range entries {
		if entry.Path == "CMakeLists.txt" {
			if !strings.Contains(string(entry.Content), "set(CMAKE_CXX_STANDARD 17)") {
				t.Errorf("default standard not applied:\n%s", entry.Content)
			}
			return
		}
	}
	t.Fatal("CMakeLists.txt not found in plan")
}

func TestPlanStaticContent(t *testing.T) {
	entries, err := Plan(Options{Name: "demo"})
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}

	byPath := make(map[string]string, len(entries))
	for _, entry := range entries {
		byPath[entry.Path] = string(entry.Content)
	}

	if !strings.Contains(byPath[".gitignore"], "CMakeCache.txt") {
		t.Error(".gitignore missing CMake section")
	}
	if !strings.Contains(byPath["src/main.cpp"], `std::cout << "Hello, World!"`) {
		t.Error("src/main.cpp missing hello world body")
	}
	if !strings.Contains(byPath["src/CMakeLists.txt"], "add_executable(${PROJECT_NAME} main.cpp)") {
		t.Error("src/CMakeLists.txt missing executable target")
	}
	if !strings.Contains(byPath["tests/CMakeLists.txt"], "enable_testing()") {
		t.Error("tests/CMakeLists.txt missing enable_testing")
	}
	if !strings.Contains(byPath["docs/CMakeLists.txt"], "find_package(Doxygen)") {
		t.Error("docs/CMakeLists.txt missing Doxygen lookup")
	}
	if !strings.Contains(byPath["include/project_header.h"], "#ifndef PROJECT_HEADER_H") {
		t.Error("header missing include guard")
	}
}

func TestPlanRejectsInvalidOptions(t *testing.T) {
	if _, err := Plan(Options{Name: "bad name"}); err == nil {
		t.Error("Plan() with invalid name expected error")
	}
	if _, err := Plan(Options{Name: "demo", Standard: 15}); err == nil {
		t.Error("Plan() with unsupported standard expected error")
	}
}

func TestPlanPolicyPropagates(t *testing.T) {
	entries, err := Plan(Options{Name: "demo", Policy: scaffold.PolicyOverwrite})
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}

	for _, entry := range entries {
		if entry.Kind == scaffold.KindFile && entry.Policy != scaffold.PolicyOverwrite {
			t.Errorf("file %s policy = %s, want overwrite", entry.Path, entry.Policy)
		}
	}
}
