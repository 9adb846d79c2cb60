package corpus

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// Corpus is the read-only dataset searched by the retriever. Construction
// validates every record; a Corpus that exists is well-formed.
type Corpus struct {
	entries   []Entry
	templates []Template
	topics    []string // distinct topics in corpus order
}

// New builds a Corpus from entries and templates, rejecting malformed or
// duplicate-ID records. Duplicate topics are permitted and all remain
// searchable.
func New(entries []Entry, templates []Template) (*Corpus, error) {
	seen := make(map[string]bool, len(entries))
	var topics []string
	topicSeen := make(map[string]bool)

	for _, e := range entries {
		if err := e.Validate(); err != nil {
			return nil, err
		}
		if seen[e.ID] {
			return nil, fmt.Errorf("corpus: duplicate entry id %q", e.ID)
		}
		seen[e.ID] = true
		if !topicSeen[e.Topic] {
			topicSeen[e.Topic] = true
			topics = append(topics, e.Topic)
		}
	}

	tseen := make(map[string]bool, len(templates))
	for _, t := range templates {
		if err := t.Validate(); err != nil {
			return nil, err
		}
		if tseen[t.ID] {
			return nil, fmt.Errorf("corpus: duplicate template id %q", t.ID)
		}
		tseen[t.ID] = true
	}

	return &Corpus{entries: entries, templates: templates, topics: topics}, nil
}

// Entries returns every knowledge entry in corpus order.
func (c *Corpus) Entries() []Entry { return c.entries }

// Templates returns every question template.
func (c *Corpus) Templates() []Template { return c.templates }

// Topics returns the distinct topics in corpus order. The session manager
// uses this as the module curriculum.
func (c *Corpus) Topics() []string { return c.topics }

// Len returns the number of knowledge entries.
func (c *Corpus) Len() int { return len(c.entries) }

// EntriesForTopic returns all entries whose topic matches exactly.
func (c *Corpus) EntriesForTopic(topic string) []Entry {
	var out []Entry
	for _, e := range c.entries {
		if e.Topic == topic {
			out = append(out, e)
		}
	}
	return out
}

// TemplatesFor returns templates matching the difficulty, or all templates
// when difficulty is empty.
func (c *Corpus) TemplatesFor(d Difficulty) []Template {
	if d == "" {
		return c.templates
	}
	var out []Template
	for _, t := range c.templates {
		if t.Difficulty == d {
			out = append(out, t)
		}
	}
	return out
}

// corpusFile is the TOML document shape for a corpus file.
type corpusFile struct {
	Entry    []Entry    `toml:"entry"`
	Template []Template `toml:"template"`
}

// LoadFile decodes a single TOML corpus file.
func LoadFile(path string) ([]Entry, []Template, error) {
	var doc corpusFile
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return nil, nil, fmt.Errorf("corpus: decode %s: %w", path, err)
	}
	return doc.Entry, doc.Template, nil
}

// LoadDir loads every *.toml file under dir (sorted by name so corpus order
// is deterministic) and builds a validated Corpus. A missing or empty dir is
// an error: a tutor with nothing to teach must refuse to start.
func LoadDir(dir string) (*Corpus, error) {
	infos, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("corpus: read dir: %w", err)
	}

	var names []string
	for _, fi := range infos {
		if fi.IsDir() || !strings.HasSuffix(fi.Name(), ".toml") {
			continue
		}
		names = append(names, fi.Name())
	}
	sort.Strings(names)

	if len(names) == 0 {
		return nil, fmt.Errorf("corpus: no .toml files in %s", dir)
	}

	var entries []Entry
	var templates []Template
	for _, name := range names {
		es, ts, err := LoadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		entries = append(entries, es...)
		templates = append(templates, ts...)
	}

	return New(entries, templates)
}

// Load returns the corpus at dir, or the built-in dataset when dir is empty.
func Load(dir string) (*Corpus, error) {
	if dir == "" {
		return Builtin()
	}
	return LoadDir(dir)
}
