package vault

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fahmaliyi/pwvault/logger"
)

const maxLineLen = 1 << 20

// RecordStore is the append-only vault file: one "<account> | <token>" line
// per record. There is no update or delete; duplicates are kept.
type RecordStore struct {
	path string
	log  *logger.Logger
}

func NewRecordStore(path string, log *logger.Logger) *RecordStore {
	return &RecordStore{path: path, log: log}
}

func (r *RecordStore) Path() string { return r.path }

// Exists reports whether the vault file is present.
func (r *RecordStore) Exists() (bool, error) {
	_, err := os.Stat(r.path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, os.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("%w: stat vault file: %w", ErrSetup, err)
	}
}

// HasData reports whether the vault file exists and is non-empty.
func (r *RecordStore) HasData() (bool, error) {
	fi, err := os.Stat(r.path)
	switch {
	case err == nil:
		return fi.Size() > 0, nil
	case errors.Is(err, os.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("%w: stat vault file: %w", ErrSetup, err)
	}
}

// Init creates an empty vault file if none exists. Existing content is left
// untouched.
func (r *RecordStore) Init() error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0700); err != nil {
		return fmt.Errorf("%w: create vault dir: %w", ErrSetup, err)
	}

	f, err := os.OpenFile(r.path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
	if errors.Is(err, os.ErrExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: create vault file: %w", ErrSetup, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: create vault file: %w", ErrSetup, err)
	}

	r.log.Info().Str("path", r.path).Msg("vault file initialised")
	return nil
}

// Append writes one record line at the end of the vault file, creating the
// file if needed. The line goes out in a single write.
func (r *RecordStore) Append(account, token string) error {
	if account == "" || strings.ContainsAny(account, "|\r\n") {
		return fmt.Errorf("%w: %q", ErrInvalidAccount, account)
	}
	if token == "" || strings.ContainsAny(token, "|\r\n") {
		return fmt.Errorf("vault: refusing to store malformed token for %q", account)
	}

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("open vault file: %w", err)
	}
	defer f.Close()

	line := account + FieldSeparator + token + "\n"
	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("append record: %w", err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("sync vault file: %w", err)
	}

	r.log.Debug().Str("account", account).Msg("record appended")
	return nil
}

// ReadAll returns every well-formed line in file order. Lines without the
// '|' delimiter are skipped.
func (r *RecordStore) ReadAll() ([]SealedRecord, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("%w: open vault file: %w", ErrSetup, err)
	}
	defer f.Close()

	var records []SealedRecord
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 4096), maxLineLen)
	for n := 1; scanner.Scan(); n++ {
		line := scanner.Text()
		rec, ok := parseLine(line)
		if !ok {
			if strings.TrimSpace(line) != "" {
				r.log.Debug().Int("line", n).Msg("skipping line without delimiter")
			}
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: read vault file: %w", ErrSetup, err)
	}

	return records, nil
}

// parseLine splits at the first '|' so both "name | token" and the older
// "name|token" form are accepted.
func parseLine(line string) (SealedRecord, bool) {
	account, token, ok := strings.Cut(line, "|")
	if !ok {
		return SealedRecord{}, false
	}
	return SealedRecord{
		Account: strings.TrimSpace(account),
		Token:   strings.TrimSpace(token),
	}, true
}

// NormalizeAccount trims name and substitutes DefaultAccount when it is
// empty. Names containing '|' or line breaks are rejected.
func NormalizeAccount(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultAccount, nil
	}
	if strings.ContainsAny(name, "|\r\n") {
		return "", fmt.Errorf("%w: %q must not contain '|' or line breaks", ErrInvalidAccount, name)
	}
	return name, nil
}
