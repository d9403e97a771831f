// Package bootstrap seeds the account registry from the legacy
// credential file format: one "username,password" pair per line.
package bootstrap

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/phrazzld/almanac-api/internal/domain"
	"github.com/phrazzld/almanac-api/internal/store"
)

// ErrMalformedLine is returned when a credential line is not exactly a
// "username,password" pair. Usernames and passwords cannot contain
// commas; the format has no escaping.
var ErrMalformedLine = errors.New("malformed credential line")

// LoadAccounts reads the credential file and registers one account per
// line. Blank lines are skipped. A malformed line or a duplicate
// username aborts the load with an error naming the line number;
// accounts registered before the failure stay registered.
func LoadAccounts(
	ctx context.Context,
	path string,
	accounts store.AccountStore,
	logger *slog.Logger,
) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open accounts file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			logger.Warn("failed to close accounts file", "error", err, "path", path)
		}
	}()

	loaded := 0
	lineNo := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		username, password, ok := strings.Cut(line, ",")
		if !ok || username == "" || password == "" || strings.Contains(password, ",") {
			return loaded, fmt.Errorf("%w: line %d", ErrMalformedLine, lineNo)
		}

		account, err := domain.NewAccount(username, password)
		if err != nil {
			return loaded, fmt.Errorf("line %d: %w", lineNo, err)
		}

		if err := accounts.CreateAccount(ctx, account); err != nil {
			return loaded, fmt.Errorf("line %d: %w", lineNo, err)
		}
		loaded++
	}

	if err := scanner.Err(); err != nil {
		return loaded, fmt.Errorf("failed to read accounts file: %w", err)
	}

	logger.Info("accounts bootstrapped", "path", path, "count", loaded)
	return loaded, nil
}
