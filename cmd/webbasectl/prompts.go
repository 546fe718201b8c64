package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

func promptLine(label string) (string, error) {
	fmt.Fprintf(os.Stderr, "%s: ", label)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptPassword reads a password twice and verifies both entries
// match.
func promptPassword() (string, error) {
	password, err := promptLine("Password")
	if err != nil {
		return "", err
	}
	confirm, err := promptLine("Password (again)")
	if err != nil {
		return "", err
	}
	if password != confirm {
		return "", fmt.Errorf("passwords do not match")
	}
	if password == "" {
		return "", fmt.Errorf("password must not be empty")
	}
	return password, nil
}
