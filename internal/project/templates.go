package project

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/lithammer/dedent"
)

// templateData carries the values substituted into generated file content.
type templateData struct {
	// Name is the project name.
	Name string
	// Standard is the C++ standard (e.g. 17).
	Standard int
}

// tmpl removes the indentation the literals carry for readability here and
// the leading newline after the opening backtick.
func tmpl(text string) string {
	return strings.TrimPrefix(dedent.Dedent(text), "\n")
}

var gitignoreContent = tmpl(`
	# Compiled object files
	*.o
	*.obj
	*.so
	*.a
	*.dll
	*.dylib

	# Executables
	*.exe
	*.out
	*.app

	# Build directories
	build/
	bin/
	lib/

	# IDE files
	.vscode/
	.idea/
	.history/
	*.suo
	*.user
	*.sdf
	*.opensdf
	*.sln.docstates

	# CMake files
	CMakeCache.txt
	CMakeFiles/
	cmake_install.cmake
	Makefile

	# Debug files
	*.dSYM/
	*.pdb
	*.ilk

	# Temporary files
	*.log
	*.tlog
	*.tmp
	*.temp
	*.swp
	*~

	# OS specific files
	.DS_Store
	Thumbs.db
`)

var readmeTemplate = tmpl(`
	# {{.Name}}

	A C++ project.

	## Directory Structure

	- ` + "`src/`" + `: Source files
	- ` + "`include/`" + `: Header files
	- ` + "`lib/`" + `: Libraries
	- ` + "`bin/`" + `: Executable files
	- ` + "`tests/`" + `: Unit tests
	- ` + "`docs/`" + `: Documentation

	## Build Instructions

	[Add build instructions here]

	## License

	[Add license information here]
`)

var rootCMakeTemplate = tmpl(`
	cmake_minimum_required(VERSION 3.10)
	project({{.Name}} VERSION 1.0 LANGUAGES CXX)

	set(CMAKE_CXX_STANDARD {{.Standard}})
	set(CMAKE_CXX_STANDARD_REQUIRED True)

	# Set output directories
	set(CMAKE_RUNTIME_OUTPUT_DIRECTORY ${CMAKE_BINARY_DIR}/bin)
	set(CMAKE_LIBRARY_OUTPUT_DIRECTORY ${CMAKE_BINARY_DIR}/lib)
	set(CMAKE_ARCHIVE_OUTPUT_DIRECTORY ${CMAKE_BINARY_DIR}/lib)

	# Compiler flags
	if (CMAKE_CXX_COMPILER_ID STREQUAL "GNU" OR CMAKE_CXX_COMPILER_ID STREQUAL "Clang")
	    add_compile_options(-Wall -Wextra -Wpedantic)
	elseif (CMAKE_CXX_COMPILER_ID STREQUAL "MSVC")
	    add_compile_options(/W4 /permissive-)
	endif()

	add_subdirectory(src)
	add_subdirectory(tests)
	add_subdirectory(docs)
`)

var srcCMakeContent = tmpl(`
	add_executable(${PROJECT_NAME} main.cpp)
`)

var testsCMakeContent = tmpl(`
	enable_testing()
	add_executable(${PROJECT_NAME}_test test_main.cpp)
	add_test(NAME ${PROJECT_NAME}_test COMMAND ${PROJECT_NAME}_test)
`)

var docsCMakeContent = tmpl(`
	find_package(Doxygen)
	if (DOXYGEN_FOUND)
	    configure_file(Doxyfile.in Doxyfile @ONLY)
	    add_custom_target(doc
	        COMMAND ${DOXYGEN_EXECUTABLE} Doxyfile
	        WORKING_DIRECTORY ${CMAKE_CURRENT_SOURCE_DIR}
	        COMMENT "Generating API documentation with Doxygen"
	        VERBATIM)
	endif()
`)

var mainCppContent = tmpl(`
	#include <iostream>

	int main() {
	    std::cout << "Hello, World!" << std::endl;
	    return 0;
	}
`)

var headerContent = tmpl(`
	#ifndef PROJECT_HEADER_H
	#define PROJECT_HEADER_H

	// Add your header content here

	#endif // PROJECT_HEADER_H
`)

var testMainCppContent = tmpl(`
	#include <iostream>

	int main() {
	    std::cout << "Running tests..." << std::endl;
	    // Add your test code here
	    return 0;
	}
`)

// render executes a file content template with the given data.
func render(name, text string, data templateData) ([]byte, error) {
	t, err := template.New(name).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s template: %w", name, err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render %s template: %w", name, err)
	}
	return buf.Bytes(), nil
}
