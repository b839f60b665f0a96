package vault

import (
	"errors"
	"fmt"

	"github.com/fahmaliyi/pwvault/logger"
	"github.com/google/uuid"
)

var ErrClosed = errors.New("vault: session closed")

// Session carries the derived key for the lifetime of one run. It is passed
// explicitly to every operation that needs the key.
type Session struct {
	id      string
	key     Key
	records *RecordStore
	log     *logger.Logger
	closed  bool
}

func newSession(key Key, records *RecordStore, log *logger.Logger) *Session {
	id := uuid.NewString()
	return &Session{
		id:      id,
		key:     key,
		records: records,
		log:     log.Child("session", id),
	}
}

func (s *Session) ID() string { return s.id }

// Add seals secret under the session key and appends it to the vault file.
// An empty account name is stored as DefaultAccount.
func (s *Session) Add(account, secret string) (Record, error) {
	if s.closed {
		return Record{}, ErrClosed
	}

	account, err := NormalizeAccount(account)
	if err != nil {
		return Record{}, err
	}
	if secret == "" {
		return Record{}, fmt.Errorf("%w: secret", ErrEmptyInput)
	}

	token, err := Seal(s.key, secret)
	if err != nil {
		return Record{}, fmt.Errorf("seal record: %w", err)
	}
	if err := s.records.Append(account, token); err != nil {
		return Record{}, err
	}

	s.log.Info().Str("account", account).Msg("record added")
	return Record{Account: account, Secret: secret}, nil
}

// List opens every record in file order. Records that fail to open are
// reported inline with DecryptionFailed and do not abort the listing.
func (s *Session) List() ([]Entry, error) {
	if s.closed {
		return nil, ErrClosed
	}

	sealed, err := s.records.ReadAll()
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(sealed))
	for _, rec := range sealed {
		pt, created, err := openToken(s.key, rec.Token)
		if err != nil {
			s.log.Warn().Str("account", rec.Account).Msg("record could not be decrypted")
			entries = append(entries, Entry{
				Account: rec.Account,
				Secret:  DecryptionFailed,
				Err:     fmt.Errorf("%s: %w", rec.Account, err),
			})
			continue
		}
		entries = append(entries, Entry{
			Account: rec.Account,
			Secret:  string(pt),
			Created: created,
		})
		clear(pt)
	}

	return entries, nil
}

// Close wipes the key. The session cannot be used afterwards.
func (s *Session) Close() {
	s.key.Wipe()
	s.closed = true
}
