// Package store keeps all simulator state in memory: created cases with
// their journal entries, uploaded files, async status tokens, and the
// seeded catalog resources. Everything is lost on restart, which is the
// point of a test double.
package store

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/arkivsim/arkivsim/pkg/filter"
	"github.com/arkivsim/arkivsim/pkg/noark"
)

// ErrNotFound is returned when a referenced case does not exist.
var ErrNotFound = errors.New("not found")

// Store is the thread-safe in-memory state of the simulator.
type Store struct {
	mu  sync.RWMutex
	log *slog.Logger

	// now is swapped out in tests to exercise year rollover.
	now func() time.Time

	currentYear int
	caseSeq     int64
	fileSeq     int64

	cases      map[string]*noark.Case
	files      map[int64]*noark.File
	caseTokens map[string]string
	fileTokens map[string]int64

	byPath      map[string]ResourceDefinition
	byName      map[string]ResourceDefinition
	lastUpdated map[string]time.Time
}

// New creates a Store seeded with the catalog resources.
func New(log *slog.Logger) *Store {
	s := &Store{
		log:         log,
		now:         time.Now,
		cases:       make(map[string]*noark.Case),
		files:       make(map[int64]*noark.File),
		caseTokens:  make(map[string]string),
		fileTokens:  make(map[string]int64),
		byPath:      make(map[string]ResourceDefinition),
		byName:      make(map[string]ResourceDefinition),
		lastUpdated: make(map[string]time.Time),
	}
	now := s.now()
	s.currentYear = now.Year()
	for _, def := range seedCatalog() {
		s.byPath[def.Path] = def
		s.byName[def.Name] = def
		s.lastUpdated[def.Path] = now
	}
	return s
}

// CreateCase registers a new case from the request payload and returns the
// case ID together with a status token for async polling. Parsing is
// best-effort: unusable payloads still create a case with default fields.
func (s *Store) CreateCase(body []byte) (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextCaseID()
	token := uuid.NewString()

	c := noark.ParseCase(body)
	if c == nil {
		c = &noark.Case{}
	}
	if strings.TrimSpace(c.Tittel) == "" {
		if title := noark.ExtractTitle(body); title != "" {
			c.Tittel = title
		} else {
			c.Tittel = "POC-sak " + id
		}
	}
	c.MappeID = noark.Ident(id)
	c.SystemID = noark.Ident(id)
	c.AddSelf("/arkiv/noark/sak/" + id)

	s.cases[id] = c
	s.caseTokens[token] = id

	s.log.Info("store action=create-case",
		"caseId", id, "statusId", token, "title", c.Tittel)
	return id, token
}

// AddJournalEntry appends a journal entry to an existing case and returns
// a status token resolving back to the case. Entries are numbered one past
// the current maximum.
func (s *Store) AddJournalEntry(caseID string, body []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.cases[caseID]
	if !ok {
		return "", fmt.Errorf("case %s: %w", caseID, ErrNotFound)
	}

	number := nextJournalNumber(c)
	entry := noark.ParseJournalEntry(body)
	if entry == nil {
		entry = &noark.JournalEntry{}
	}
	entry.JournalPostnummer = number
	if strings.TrimSpace(entry.Tittel) == "" {
		entry.Tittel = fmt.Sprintf("Journalpost %d", number)
	}
	selfHref := fmt.Sprintf("/arkiv/noark/sak/%s/journalpost/%d", caseID, number)
	if entry.Links == nil {
		entry.Links = noark.Links{}
	}
	if !entry.Links.Has("self", selfHref) {
		entry.Links.Add("self", selfHref)
	}
	c.Journalpost = append(c.Journalpost, *entry)

	token := uuid.NewString()
	s.caseTokens[token] = caseID

	s.log.Info("store action=add-journalpost",
		"caseId", caseID, "statusId", token,
		"journalpostNumber", number, "title", entry.Tittel)
	return token, nil
}

// CreateFile registers an uploaded document file and returns its numeric
// ID with a status token. An empty name gets a generated one.
func (s *Store) CreateFile(filename string) (int64, string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.fileSeq++
	id := s.fileSeq
	token := uuid.NewString()

	if filename == "" {
		filename = fmt.Sprintf("file-%d", id)
	}
	s.files[id] = &noark.File{
		SystemID: noark.Ident(strconv.FormatInt(id, 10)),
		Filnavn:  filename,
	}
	s.fileTokens[token] = id

	s.log.Info("store action=create-file",
		"fileId", id, "statusId", token, "fileName", filename)
	return id, token
}

// ResolveCaseToken maps a status token to its case ID.
func (s *Store) ResolveCaseToken(token string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.caseTokens[token]
	return id, ok
}

// ResolveFileToken maps a status token to its file ID.
func (s *Store) ResolveFileToken(token string) (int64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.fileTokens[token]
	return id, ok
}

// GetCase returns a copy of the case with the given ID.
func (s *Store) GetCase(id string) (noark.Case, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.cases[id]
	if !ok {
		return noark.Case{}, false
	}
	return c.Clone(), true
}

// GetJournalEntry returns a copy of one journal entry on a case.
func (s *Store) GetJournalEntry(caseID string, number int64) (noark.JournalEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.cases[caseID]
	if !ok {
		return noark.JournalEntry{}, false
	}
	for _, entry := range c.Journalpost {
		if entry.JournalPostnummer == number {
			return entry.Clone(), true
		}
	}
	return noark.JournalEntry{}, false
}

// GetFile returns a copy of the file with the given ID.
func (s *Store) GetFile(id int64) (noark.File, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f, ok := s.files[id]
	if !ok {
		return noark.File{}, false
	}
	out := *f
	out.Links = f.Links.Clone()
	return out, true
}

// ListCases returns copies of every case, ordered by year then sequence.
func (s *Store) ListCases() []noark.Case {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collectCases(nil)
}

// QueryCases returns copies of the cases matching the filter expression.
// A blank filter matches everything. Unparseable conditions never match,
// so a fully invalid filter yields an empty result.
func (s *Store) QueryCases(expr string) []noark.Case {
	trimmed := strings.TrimSpace(expr)
	if trimmed == "" {
		return s.ListCases()
	}

	conditions := filter.Parse(trimmed)
	if invalid := filter.CountInvalid(conditions); invalid > 0 {
		s.log.Warn("store action=find-cases",
			"filter", trimmed, "invalidConditions", invalid)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collectCases(func(c *noark.Case) bool {
		return filter.Matches(c, conditions)
	})
}

// collectCases gathers matching cases in stable order. Callers hold s.mu.
func (s *Store) collectCases(keep func(*noark.Case) bool) []noark.Case {
	ids := make([]string, 0, len(s.cases))
	for id, c := range s.cases {
		if keep == nil || keep(c) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool {
		yi, si := splitCaseID(ids[i])
		yj, sj := splitCaseID(ids[j])
		if yi != yj {
			return yi < yj
		}
		return si < sj
	})
	out := make([]noark.Case, len(ids))
	for i, id := range ids {
		out[i] = s.cases[id].Clone()
	}
	return out
}

// Catalog returns the seeded entries for a catalog path.
func (s *Store) Catalog(path string) ([]any, bool) {
	def, ok := s.byPath[path]
	if !ok {
		return nil, false
	}
	return def.Items, true
}

// CatalogResources maps every catalog resource name to its serving path.
func (s *Store) CatalogResources() map[string]string {
	out := make(map[string]string, len(s.byName))
	for name, def := range s.byName {
		out[name] = def.Path
	}
	return out
}

// ResolveCatalogPath resolves a resource reference, either a short name or
// an absolute path, to the serving path.
func (s *Store) ResolveCatalogPath(resource string) (string, bool) {
	if strings.HasPrefix(resource, "/") {
		def, ok := s.byPath[resource]
		return def.Path, ok
	}
	def, ok := s.byName[resource]
	return def.Path, ok
}

// KnownPath reports whether the path is a seeded catalog path.
func (s *Store) KnownPath(path string) bool {
	_, ok := s.byPath[path]
	return ok
}

// LastUpdated returns the last-updated time of a catalog path. Unknown
// paths report the current time.
func (s *Store) LastUpdated(path string) time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if t, ok := s.lastUpdated[path]; ok {
		return t
	}
	return s.now()
}

// Touch bumps the last-updated time of a catalog path.
func (s *Store) Touch(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.lastUpdated[path]; ok {
		s.lastUpdated[path] = s.now()
	}
}

// Reset drops all dynamic state and restarts the ID sequences. The seeded
// catalog stays, with its last-updated times refreshed.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.currentYear = s.now().Year()
	s.caseSeq = 0
	s.fileSeq = 0
	s.cases = make(map[string]*noark.Case)
	s.files = make(map[int64]*noark.File)
	s.caseTokens = make(map[string]string)
	s.fileTokens = make(map[string]int64)
	now := s.now()
	for path := range s.lastUpdated {
		s.lastUpdated[path] = now
	}
	s.log.Info("store action=reset")
}

// nextCaseID mints "{year}/{sequence}", restarting the sequence when the
// calendar year changes. Callers hold s.mu.
func (s *Store) nextCaseID() string {
	year := s.now().Year()
	if s.currentYear != year {
		s.currentYear = year
		s.caseSeq = 0
	}
	s.caseSeq++
	return fmt.Sprintf("%d/%d", year, s.caseSeq)
}

func nextJournalNumber(c *noark.Case) int64 {
	var max int64
	for _, entry := range c.Journalpost {
		if entry.JournalPostnummer > max {
			max = entry.JournalPostnummer
		}
	}
	return max + 1
}

func splitCaseID(id string) (int64, int64) {
	year, seq, ok := strings.Cut(id, "/")
	if !ok {
		return 0, 0
	}
	y, _ := strconv.ParseInt(year, 10, 64)
	q, _ := strconv.ParseInt(seq, 10, 64)
	return y, q
}
