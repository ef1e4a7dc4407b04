package converter

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"docmill/internal/config"
	"docmill/internal/domain"
	"docmill/internal/domain/services/convert"
)

// Entry declares one converter backend: its public identifier, static
// metadata, a load-time dependency probe, and a factory for instances.
type Entry struct {
	ID    string
	Info  convert.Info
	Probe func() error
	New   func(convert.Options) (convert.DocumentConverter, error)
}

// Directory tracks which converter backends resolved their dependencies at
// startup and selects the best backend for a given file.
//
// Two-phase lifecycle: probes run once during construction, then the
// directory is read-only. Safe for concurrent use without locking since no
// mutation occurs after construction. Instances are never cached; every
// lookup constructs a fresh converter.
type Directory struct {
	entries     map[string]Entry  // only entries whose probe succeeded
	available   []string          // registration order
	unavailable map[string]string // id -> failure reason
	priority    PriorityTable
	logger      *slog.Logger
}

// NewDirectory builds the directory with the built-in backends and the
// embedded priority table. Probe failures are never fatal; a backend that
// fails to resolve is recorded as unavailable and skipped.
func NewDirectory(cfg *config.Config, logger *slog.Logger) (*Directory, error) {
	table, err := LoadPriorityTable()
	if err != nil {
		return nil, err
	}
	return NewDirectoryWithEntries(builtinEntries(cfg), table, logger), nil
}

// NewDirectoryWithEntries builds a directory from an explicit registration
// list. Used by NewDirectory and by tests that simulate availability.
func NewDirectoryWithEntries(entries []Entry, table PriorityTable, logger *slog.Logger) *Directory {
	d := &Directory{
		entries:     make(map[string]Entry, len(entries)),
		unavailable: make(map[string]string),
		priority:    table,
		logger:      logger,
	}

	for _, e := range entries {
		if err := probeEntry(e); err != nil {
			d.unavailable[e.ID] = err.Error()
			logger.Warn("converter not available", "converter", e.ID, "reason", err.Error())
			continue
		}
		d.entries[e.ID] = e
		d.available = append(d.available, e.ID)
		logger.Info("loaded converter", "converter", e.ID)
	}

	return d
}

// probeEntry runs a backend's dependency probe. A panicking probe is
// downgraded to an error so one broken backend cannot take down startup.
func probeEntry(e Entry) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("probe panicked: %v", r)
		}
	}()
	return e.Probe()
}

// Get constructs a converter by identifier, forwarding opts verbatim to the
// backend constructor. Returns ConverterNotFoundError when the identifier is
// unknown or its backend failed to load.
func (d *Directory) Get(id string, opts convert.Options) (convert.DocumentConverter, error) {
	e, ok := d.entries[id]
	if !ok {
		return nil, &domain.ConverterNotFoundError{ID: id, Available: d.AvailableConverters()}
	}
	return e.New(opts)
}

// BestForFile picks the best converter for a file.
//
// Candidates come from the priority table for the file's extension, or from
// every available converter in registration order when the extension is
// unlisted. Each candidate is constructed and asked whether it supports the
// file; any failure along the way (construction error, negative answer,
// panic in the capability check) just moves on to the next candidate. This
// skip-on-failure policy is deliberate best-effort selection, as is the
// final unconditional fallback to the first available converter.
//
// Fails with NoConvertersAvailableError only when nothing loaded at all.
func (d *Directory) BestForFile(path string, opts convert.Options) (convert.DocumentConverter, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")

	candidates, ok := d.priority.ForExtension(ext)
	if !ok {
		candidates = d.available
	}

	for _, id := range candidates {
		e, ok := d.entries[id]
		if !ok {
			continue
		}
		c, err := e.New(opts)
		if err != nil {
			d.logger.Debug("skipping converter candidate",
				"converter", id, "file", filepath.Base(path), "error", err)
			continue
		}
		if supportsFile(c, path) {
			return c, nil
		}
	}

	// Nothing claimed support; hand the file to the first converter that
	// loaded, whatever it thinks of it.
	if len(d.available) > 0 {
		return d.Get(d.available[0], opts)
	}

	return nil, &domain.NoConvertersAvailableError{}
}

// supportsFile runs the capability check under a recover guard. The contract
// says SupportsFile must not panic, but a misbehaving backend is treated as
// "does not support this file" rather than crashing the search.
func supportsFile(c convert.DocumentConverter, path string) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()
	return c.SupportsFile(path)
}

// ConverterInfo pairs a converter identifier with its static metadata.
type ConverterInfo struct {
	ID string `json:"id"`
	convert.Info
}

// AllInfo returns identifier plus static metadata for every available
// converter, in registration order. Pure projection, no construction.
func (d *Directory) AllInfo() []ConverterInfo {
	infos := make([]ConverterInfo, 0, len(d.available))
	for _, id := range d.available {
		infos = append(infos, ConverterInfo{ID: id, Info: d.entries[id].Info})
	}
	return infos
}

// AvailableConverters returns a copy of the available identifiers in
// registration order.
func (d *Directory) AvailableConverters() []string {
	out := make([]string, len(d.available))
	copy(out, d.available)
	return out
}

// UnavailableConverters returns a copy of the identifier to failure-reason
// mapping. Callers may mutate the result freely.
func (d *Directory) UnavailableConverters() map[string]string {
	out := make(map[string]string, len(d.unavailable))
	for id, reason := range d.unavailable {
		out[id] = reason
	}
	return out
}
