//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const binary = "slidedeck"

// Default target when running mage without arguments
var Default = Build

// Build compiles the slidedeck binary
func Build() error {
	fmt.Println("Building", binary)
	return sh.RunV("go", "build", "-o", binary, "./cmd/slidedeck")
}

// Test runs all unit tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Install copies the binary to ~/go/bin
func Install() error {
	mg.Deps(Build)

	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	binDir := filepath.Join(home, "go", "bin")
	if err := os.MkdirAll(binDir, 0755); err != nil {
		return err
	}
	target := filepath.Join(binDir, binary)
	if err := sh.Copy(target, binary); err != nil {
		return err
	}
	return os.Chmod(target, 0755)
}

// Clean removes the binary and generated outputs
func Clean() error {
	for _, path := range []string{binary, "output.pptx", "meta.txt", "summary.txt"} {
		if err := sh.Rm(path); err != nil {
			return err
		}
	}
	return nil
}
