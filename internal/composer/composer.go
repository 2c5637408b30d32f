// Package composer holds the state of one poem-writing session: the working
// configuration, the poem on the canvas and the selected view.
package composer

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"synthink/internal/models"
	"synthink/internal/providers"
	"synthink/internal/records"
	"time"
)

// ErrNoPoem is returned by actions on the current poem when the canvas is empty.
var ErrNoPoem = errors.New("no poem on the canvas")

type Generator interface {
	Generate(ctx context.Context, conf models.PoemConfiguration) (string, error)
}

type Composer struct {
	generator Generator
	store     *records.Store
	logger    providers.Logger
	now       func() time.Time

	loading atomic.Bool

	mu      sync.Mutex
	config  models.PoemConfiguration
	current *models.PoemRecord
	lastErr string
	view    View
}

type Option func(*Composer)

// WithClock replaces time.Now for record timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Composer) { c.now = now }
}

// WithConfiguration sets the starting configuration instead of a random one.
func WithConfiguration(conf models.PoemConfiguration) Option {
	return func(c *Composer) { c.config = conf }
}

func New(generator Generator, store *records.Store, logger providers.Logger, opts ...Option) *Composer {
	c := &Composer{
		generator: generator,
		store:     store,
		logger:    logger,
		now:       time.Now,
		config:    models.Randomize(models.Suggestions, nil),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Composer) Configuration() models.PoemConfiguration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.config
}

func (c *Composer) SetField(f models.Field, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.config.SetField(f, value)
}

// Randomize replaces the configuration with one suggestion per field.
func (c *Composer) Randomize(rng *rand.Rand) models.PoemConfiguration {
	conf := models.Randomize(models.Suggestions, rng)
	c.mu.Lock()
	c.config = conf
	c.mu.Unlock()
	return conf
}

func (c *Composer) Loading() bool {
	return c.loading.Load()
}

// Generate requests a poem for the current configuration. While another call
// is outstanding it returns immediately with accepted=false and no error.
func (c *Composer) Generate(ctx context.Context) (rec *models.PoemRecord, accepted bool, err error) {
	if !c.loading.CompareAndSwap(false, true) {
		return nil, false, nil
	}
	defer c.loading.Store(false)

	c.mu.Lock()
	conf := c.config.Resolve()
	c.lastErr = ""
	c.mu.Unlock()

	text, err := c.generator.Generate(ctx, conf)
	if err != nil {
		c.mu.Lock()
		c.lastErr = err.Error()
		c.mu.Unlock()
		return nil, true, err
	}

	record := models.NewPoemRecord(text, conf, c.now())
	c.mu.Lock()
	c.current = &record
	c.view = ViewCanvas
	c.mu.Unlock()

	if err := c.store.RecordGeneration(record); err != nil {
		c.logger.Errorf(providers.TypeStore, "Cannot record poem %s in history: %s", record.ID, err)
	}
	return &record, true, nil
}

// LastError is the message of the most recent failed generation, cleared when
// a new one starts.
func (c *Composer) LastError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Current returns a copy of the poem on the canvas.
func (c *Composer) Current() (models.PoemRecord, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return models.PoemRecord{}, false
	}
	return *c.current, true
}

// Select puts a stored poem on the canvas and loads its configuration.
func (c *Composer) Select(r models.PoemRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = &r
	c.config = r.Config
	c.lastErr = ""
	c.view = ViewCanvas
}

func (c *Composer) IsCurrentSaved() bool {
	cur, ok := c.Current()
	return ok && c.store.IsSaved(cur.ID)
}

// ToggleCurrentSaved saves or unsaves the poem on the canvas.
func (c *Composer) ToggleCurrentSaved() (bool, error) {
	cur, ok := c.Current()
	if !ok {
		return false, ErrNoPoem
	}
	return c.store.ToggleSaved(cur)
}

// SetCurrentFeedback records feedback for the poem on the canvas and every
// stored copy of it.
func (c *Composer) SetCurrentFeedback(f models.Feedback) error {
	if !f.Valid() {
		return fmt.Errorf("invalid feedback %q", f)
	}
	c.mu.Lock()
	if c.current == nil {
		c.mu.Unlock()
		return ErrNoPoem
	}
	c.current.Feedback = f
	id := c.current.ID
	c.mu.Unlock()

	_, err := c.store.SetFeedback(id, f)
	return err
}

func (c *Composer) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

func (c *Composer) SetView(v View) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view = v
}

// Records lists the collection shown by the current view. The canvas shows
// only the current poem.
func (c *Composer) Records() []models.PoemRecord {
	switch v := c.View(); v {
	case ViewSaved:
		return c.store.Saved()
	case ViewHistory:
		return c.store.History()
	case ViewCanvas:
		if cur, ok := c.Current(); ok {
			return []models.PoemRecord{cur}
		}
		return nil
	default:
		panic(fmt.Sprintf("composer: unhandled view %s", v))
	}
}
