package content

import (
	"context"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Store is the content cache and mutation engine. It owns the most recently
// fetched-or-mutated document and exposes reads with static fallback plus
// three mutation operations. Every mutation clones the current document,
// applies the change, swaps the cache synchronously, and persists the full
// document to the remote store as a detached task.
//
// Overlapping local mutations are serialized through the clone-and-swap
// section, so no local edit is ever lost. The detached persists are not
// serialized: their responses may arrive at the store out of order, and the
// last writer wins. That is accepted under the single-admin usage model.
type Store struct {
	client   Client
	fallback Document
	logger   *log.Logger
	now      func() time.Time

	mu  sync.RWMutex
	doc Document
}

// Item is one element of a list field as seen at render time. Index is the
// element's current position, recomputed on every read and never persisted;
// ID is the item's stable synthetic id.
type Item struct {
	Index  int
	ID     string
	Fields Mapping
}

// NewStore builds a store over the given remote client. The fallback
// document serves reads until a document is loaded and covers resolution
// misses afterwards.
func NewStore(client Client, fallback Document) *Store {
	return &Store{
		client:   client,
		fallback: fallback,
		logger:   log.Default(),
		now:      time.Now,
	}
}

// Load fetches the full document from the remote store and populates the
// cache. On failure the cache stays unloaded and reads keep serving the
// static fallback.
func (s *Store) Load(ctx context.Context) error {
	doc, err := s.client.Fetch(ctx)
	if err != nil {
		return err
	}
	s.Replace(doc)
	return nil
}

// Loaded reports whether a document has been fetched or installed.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc != nil
}

// Replace installs doc as the current cached document. The document is
// cloned so the cache never aliases caller-held state.
func (s *Store) Replace(doc Document) {
	clone := doc.Clone()
	s.mu.Lock()
	s.doc = clone
	s.mu.Unlock()
}

// Snapshot returns an independent copy of the cached document, or nil when
// nothing has been loaded.
func (s *Store) Snapshot() Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.Clone()
}

// Translate resolves path against the cached document for lang, falling back
// to the static table on any miss. When both miss, the path itself is
// returned as a scalar: a deliberately loud missing-translation marker.
// Translate never mutates state and is safe with arbitrary paths.
func (s *Store) Translate(lang, path string) Value {
	s.mu.RLock()
	doc := s.doc
	s.mu.RUnlock()

	if doc != nil {
		if tree, ok := doc[lang]; ok {
			if v, found := Resolve(tree, path); found {
				return v
			}
		}
	}
	if tree, ok := s.fallback[lang]; ok {
		if v, found := Resolve(tree, path); found {
			return v
		}
	}
	return Scalar{Val: path}
}

// Text resolves path and renders the result as display text.
func (s *Store) Text(lang, path string) string {
	return Text(s.Translate(lang, path))
}

// Strings resolves a list field of scalar elements as display text.
func (s *Store) Strings(lang, path string) []string {
	seq, ok := s.Translate(lang, path).(Sequence)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(seq))
	for _, elem := range seq {
		out = append(out, Text(elem))
	}
	return out
}

// Items resolves a list field of object items, tagging each with its current
// position and stable id.
func (s *Store) Items(lang, path string) []Item {
	seq, ok := s.Translate(lang, path).(Sequence)
	if !ok {
		return nil
	}
	items := make([]Item, 0, len(seq))
	for i, elem := range seq {
		fields, ok := elem.(Mapping)
		if !ok {
			continue
		}
		id, _ := ItemID(fields)
		items = append(items, Item{Index: i, ID: id, Fields: fields})
	}
	return items
}

// Update sets the value at path in the lang tree. Intermediate mapping keys
// are created on demand; when the second-to-last segment names a list field,
// the last segment addresses an item by id (merged when the new value is a
// mapping, replaced otherwise) or by position. The cache swap is immediate;
// the returned channel settles with the outcome of the detached persist and
// may be ignored.
func (s *Store) Update(lang, path string, value Value) <-chan error {
	s.mu.Lock()
	if s.doc == nil {
		s.mu.Unlock()
		return settled(nil)
	}
	clone := s.doc.Clone()
	applyUpdate(langTree(clone, lang), strings.Split(path, "."), value)
	s.doc = clone
	s.mu.Unlock()
	return s.persist(clone)
}

// Add appends item to the list field at listPath in the lang tree, creating
// intermediate mappings and the list itself as needed. Object items without
// an id are assigned a fresh one; caller-supplied ids are preserved.
func (s *Store) Add(lang, listPath string, item Value) <-chan error {
	s.mu.Lock()
	if s.doc == nil {
		s.mu.Unlock()
		return settled(nil)
	}
	clone := s.doc.Clone()
	s.applyAdd(langTree(clone, lang), strings.Split(listPath, "."), CloneValue(item))
	s.doc = clone
	s.mu.Unlock()
	return s.persist(clone)
}

// Remove deletes the element at the given position from the list field at
// listPath. The index is positional, valid at call time; when the path does
// not resolve to a list the removal is a silent no-op and the otherwise
// unchanged clone is still swapped and persisted.
func (s *Store) Remove(lang, listPath string, index int) <-chan error {
	s.mu.Lock()
	if s.doc == nil {
		s.mu.Unlock()
		return settled(nil)
	}
	clone := s.doc.Clone()
	applyRemove(langTree(clone, lang), strings.Split(listPath, "."), index)
	s.doc = clone
	s.mu.Unlock()
	return s.persist(clone)
}

// persist sends the full document to the remote store from a detached
// goroutine: no timeout, no cancellation, and no rollback of the optimistic
// cache on failure. Failures are logged and reported only through the
// returned channel.
func (s *Store) persist(doc Document) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer close(done)
		err := s.client.Persist(context.Background(), doc)
		if err != nil {
			s.logger.Printf("persist content: %v", err)
		}
		done <- err
	}()
	return done
}

func settled(err error) <-chan error {
	done := make(chan error, 1)
	done <- err
	close(done)
	return done
}

func langTree(doc Document, lang string) Mapping {
	tree, ok := doc[lang]
	if !ok || tree == nil {
		tree = Mapping{}
		doc[lang] = tree
	}
	return tree
}

func applyUpdate(root Mapping, segs []string, value Value) {
	obj := root
	for i := 0; i < len(segs)-1; i++ {
		key := segs[i]
		if seq, ok := obj[key].(Sequence); ok {
			next := segs[i+1]
			if i == len(segs)-2 {
				updateListTarget(seq, next, value)
				return
			}
			if idx, ok := findSequenceIndex(seq, next); ok {
				if item, ok := seq[idx].(Mapping); ok {
					obj = item
					i++
					continue
				}
			}
			// The addressed element is not an object; the edit has nowhere
			// to land and is dropped.
			return
		}
		child, ok := obj[key].(Mapping)
		if !ok {
			if _, exists := obj[key]; exists {
				// A scalar sits in the way; dropping the edit beats
				// destroying existing content.
				return
			}
			child = Mapping{}
			obj[key] = child
		}
		obj = child
	}
	obj[segs[len(segs)-1]] = value
}

// updateListTarget writes the final segment of an update whose parent is a
// list field: id match first (shallow-merging mapping values into the
// existing item), positional index second, anything else dropped.
func updateListTarget(seq Sequence, segment string, value Value) {
	for i, elem := range seq {
		if id, ok := ItemID(elem); ok && id == segment {
			patch, isPatch := value.(Mapping)
			existing, isItem := elem.(Mapping)
			if isPatch && isItem {
				merged := make(Mapping, len(existing)+len(patch))
				for k, v := range existing {
					merged[k] = v
				}
				for k, v := range patch {
					merged[k] = v
				}
				seq[i] = merged
			} else {
				seq[i] = value
			}
			return
		}
	}
	if idx, err := strconv.Atoi(segment); err == nil && idx >= 0 && idx < len(seq) {
		seq[idx] = value
	}
}

func (s *Store) applyAdd(root Mapping, segs []string, item Value) {
	obj := root
	for _, key := range segs[:len(segs)-1] {
		child, ok := obj[key].(Mapping)
		if !ok {
			if _, exists := obj[key]; exists {
				return
			}
			child = Mapping{}
			obj[key] = child
		}
		obj = child
	}
	last := segs[len(segs)-1]
	list, _ := obj[last].(Sequence)
	if fields, ok := item.(Mapping); ok {
		if _, hasID := fields["id"]; !hasID {
			fields["id"] = Scalar{Val: newItemID(s.now(), list)}
		}
	}
	obj[last] = append(list, item)
}

func applyRemove(root Mapping, segs []string, index int) {
	obj := root
	for _, key := range segs[:len(segs)-1] {
		child, ok := obj[key].(Mapping)
		if !ok {
			return
		}
		obj = child
	}
	last := segs[len(segs)-1]
	list, ok := obj[last].(Sequence)
	if !ok || index < 0 || index >= len(list) {
		return
	}
	obj[last] = append(list[:index], list[index+1:]...)
}
