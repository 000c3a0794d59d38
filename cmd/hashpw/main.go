// Command hashpw prints a bcrypt hash for ORGANIZER_PASSWORD_HASH. The
// password is read from the first line of stdin.
package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/Dosada05/swiss-pairing/services"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		logger.Error("failed to read password from stdin", slog.Any("error", err))
		os.Exit(1)
	}

	hash, err := services.HashPassword(strings.TrimRight(line, "\r\n"))
	if err != nil {
		logger.Error("failed to hash password", slog.Any("error", err))
		os.Exit(1)
	}
	fmt.Println(hash)
}
